package constants

// Багатомісячний табель, аркуш місяця
const (
	TabelHeaderLabel   = "ПІБ"
	TabelHeaderScanEnd = 19 // рядки 1..19
	TabelDataStartRow  = 9

	TabelColPosition = 4  // D
	TabelColRank     = 5  // E
	TabelColPib      = 6  // F
	TabelBaseColumn  = 6  // день N -> колонка 6+N (G = 1 число)
	TabelColLastDay  = 37 // AK, 31 число
	TabelColNote     = 38 // AL
)

// Місячний файл-джерело з аркушами категорій
const (
	SourceDataStartRow = 2
	SourceColSoldier   = 2 // B: звання ПІБ, посада
	SourceColStart     = 3 // C
	SourceColEnd       = 4 // D
	SourceColPib       = 6 // F: ПІБ окремо (не завжди є)
)

const (
	SourceSheet100 = "100к"
	SourceSheet30  = "30к"
	SourceSheet0   = "0к"
)
