package config

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultConfigPath = "./config/local.yaml"

type Config struct {
	Env        string `yaml:"env" env:"ENV" env-default:"prod"`
	HTTPServer `yaml:"http_server"`
	Storage    Storage `yaml:"storage"`
	Files      Files   `yaml:"files"`

	AdminLogin string `yaml:"admin_login" env:"ADMIN_LOGIN"`
	AdminPass  string `yaml:"admin_pass" env:"ADMIN_PASS"`

	ErrorLog string `yaml:"error_log" env:"ERROR_LOG" env-default:"errors.log"`
	// Скільки БР рендеряться одночасно
	BRWorkers int `yaml:"br_workers" env:"BR_WORKERS" env-default:"4"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout     time.Duration `yaml:"timeout" env:"HTTP_TIMEOUT" env-default:"30s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
}

type Storage struct {
	// sqlite | mysql
	Driver     string `yaml:"driver" env:"STORAGE_DRIVER" env-default:"sqlite"`
	Path       string `yaml:"path" env:"STORAGE_PATH" env-default:"app.db"`
	DBUser     string `yaml:"db_user" env:"DB_USER"`
	DBPassword string `yaml:"db_password" env:"DB_PASSWORD"`
	DBHost     string `yaml:"db_host" env:"DB_HOST" env-default:"localhost"`
	DBPort     int    `yaml:"db_port" env:"DB_PORT" env-default:"3306"`
	DBName     string `yaml:"db_name" env:"DB_NAME" env-default:"alvares"`
}

type Files struct {
	Tabel       string `yaml:"tabel" env:"TABEL_FILE" env-default:"Табель_Багатомісячний.xlsx"`
	SourceDir   string `yaml:"source_dir" env:"SOURCE_DIR" env-default:"."`
	Template    string `yaml:"template" env:"BR_TEMPLATE" env-default:"templates/rozp_template.docx"`
	BR4ShB      string `yaml:"br_4shb" env:"BR_4SHB_FILE" env-default:"BR_4ShB.xlsx"`
	OutputDir   string `yaml:"output_dir" env:"OUTPUT_DIR" env-default:"output"`
	FrontendDir string `yaml:"frontend_dir" env:"FRONTEND_DIR" env-default:"./frontend-dist"`
}

func MustConfig() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}

	return cfg
}

// Load читає .env (якщо є), потім yaml з CONFIG_PATH, а без файлу - лише змінні оточення.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = defaultConfigPath
	}

	var cfg Config

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
