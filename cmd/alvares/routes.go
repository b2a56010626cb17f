package main

import (
	"log/slog"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getbr "alvares/http-server/br/get"
	savebr "alvares/http-server/br/save"
	generate_excel "alvares/http-server/generate-report/generate-excel"
	getmonths "alvares/http-server/months/get"
	savemonths "alvares/http-server/months/save"
	getpersonnel "alvares/http-server/personnel/get"
	savepersonnel "alvares/http-server/personnel/save"
	uppersonnel "alvares/http-server/personnel/update"
	getroles "alvares/http-server/roles/get"
	"alvares/http-server/tabel/fill"
	"alvares/internal/config"
	"alvares/internal/middleware/auth"
	generate_excel2 "alvares/internal/service/generate-excel"
	"alvares/internal/service/reconcile"
	"alvares/internal/service/roles"
	"alvares/internal/service/roster"
)

type services struct {
	fill   *reconcile.FillService
	roles  *roles.Service
	excel  *generate_excel2.GenerateExcelService
	roster *roster.Service
}

func routes(cfg config.Config, log *slog.Logger, svc services) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// місяці табеля
	router.Get("/api/months", getmonths.GetMonths(log, svc.fill))

	// звіти
	router.Get("/api/reports/excel", generate_excel.GenerateReportExcel(log, svc.excel))

	// ролі та особовий склад
	router.Get("/api/roles", getroles.GetRoles(log, svc.roles))
	router.Get("/api/personnel", getpersonnel.GetPersonnel(log, svc.roles))

	// БР
	router.Get("/api/br/number", getbr.GetBRNumber(log))
	router.Get("/api/br/composition", getbr.GetComposition(log, svc.roster))

	// Все, що змінює файли або БД
	router.Group(func(r chi.Router) {
		r.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

		r.Post("/api/months", savemonths.AddMonth(log, svc.fill))
		r.Post("/api/tabel/fill", fill.FillTabel(log, svc.fill))
		r.Post("/api/reports", generate_excel.GenerateReports(log, svc.excel))
		r.Post("/api/personnel/import", savepersonnel.ImportPersonnel(log, svc.roles))
		r.Post("/api/personnel/auto-assign", savepersonnel.AutoAssignRoles(log, svc.roles))
		r.Put("/api/personnel/role", uppersonnel.SetRole(log, svc.roles))
		r.Post("/api/br/generate", savebr.GenerateBR(log, svc.roster))
	})

	frontendDir := cfg.Files.FrontendDir
	if _, err := os.Stat(frontendDir); os.IsNotExist(err) {
		log.Warn("frontend dir not found, serving API only", slog.String("path", frontendDir))
		return router
	}

	fileServer := http.FileServer(http.Dir(frontendDir))

	router.Handle("/assets/*", fileServer)
	router.Handle("/js/*", fileServer)
	router.Handle("/css/*", fileServer)
	router.Handle("/img/*", fileServer)

	// SPA fallback: будь-який інший шлях -> index.html
	router.HandleFunc("/*", func(w http.ResponseWriter, r *http.Request) {
		path := filepath.Join(frontendDir, filepath.Clean("/"+r.URL.Path))
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			http.ServeFile(w, r, path)
			return
		}
		http.ServeFile(w, r, filepath.Join(frontendDir, "index.html"))
	})

	return router
}
