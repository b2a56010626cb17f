package constants

// Шапка відомостей
const (
	ReportTitle    = "ВІДОМІСТЬ"
	ReportSubtitle = "про участь військовослужбовців 12ШР 4ШБ у бойових діях"
	// ReportHeaderRow - рядок заголовків таблиці, дані з наступного
	ReportHeaderRow = 7
)

var DGVHeaders = []string{
	"№ п/п",
	"Військове звання",
	"Прізвище ім'я по батькові",
	"Період участі",
	"Кількість днів",
	"Категорія нарахувань",
	"Примітка",
}

var ConfirmationHeaders = []string{
	"№ п/п",
	"Військове звання",
	"Прізвище ім'я по батькові",
	"Період участі",
	"Підстава, № розпорядження, дата",
	"Категорія нарахувань",
	"Примітка",
}

// Ширини колонок A..G
var ReportColumnWidths = []float64{8, 20, 30, 25, 12, 20, 15}

// Підпис під підтвердженням
var ConfirmationSignature = []string{
	"Командир 12 штурмової роти 4 штурмового батальйону",
	"капітан _________________ Євген КРАСНИЙ",
}

// Ширини колонок таблиці підтвердження у Word, twips (разом = ширина тексту A4)
var ConfirmationColumnTwips = []int{600, 1400, 2300, 1700, 2200, 1100, 906}
