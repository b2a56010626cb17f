package constants

// MonthNames - назви місяців у назвах аркушів ("Січень_2026").
var MonthNames = [12]string{
	"Січень", "Лютий", "Березень", "Квітень", "Травень", "Червень",
	"Липень", "Серпень", "Вересень", "Жовтень", "Листопад", "Грудень",
}

// MonthNumbers - lower-case назва -> номер місяця.
var MonthNumbers = map[string]int{
	"січень":   1,
	"лютий":    2,
	"березень": 3,
	"квітень":  4,
	"травень":  5,
	"червень":  6,
	"липень":   7,
	"серпень":  8,
	"вересень": 9,
	"жовтень":  10,
	"листопад": 11,
	"грудень":  12,
}
