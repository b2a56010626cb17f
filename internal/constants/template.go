package constants

// Плейсхолдери шаблону БР (крім ролей, див. RolePlaceholders)
const (
	PlaceholderBR4ShB        = "{{бр}}"
	PlaceholderBRDate        = "{{дата_бр}}"
	PlaceholderExecutionDate = "<<Дата_виконання>>"
	PlaceholderDayNumber     = "<<№*>>"
	PlaceholderFromDate      = "<<від 01.01.2026 р.>>"
	PlaceholderAckList       = "{{ACK_LIST}}"
)

// EmptyValue підставляється замість порожньої ролі або відсутнього номера.
const EmptyValue = "—"

// Рядок аркуша доведення: звання | підпис | Ім'я ПРІЗВИЩЕ
const (
	AckSignatureLine = "____________________"
	AckTabCenter     = 4500
	AckTabRight      = 9600
)
