package constants

// Позначки в табелі (після trim + lower-case)
const (
	MarkFull           = "100"
	MarkPositionalFull = "роп"
	MarkSupport        = "30"
	MarkExempt         = "н/п"
)

var (
	FullMarks = map[string]bool{
		"100": true,
	}

	PositionalFullMarks = map[string]bool{
		"роп": true,
	}

	SupportMarks = map[string]bool{
		"30": true,
	}

	ExemptMarks = map[string]bool{
		"0":   true,
		"н-п": true,
		"н/п": true,
	}
)

// NoPaymentPhrase у примітці прибирає бійця з ДГВ.
const NoPaymentPhrase = "не виплачувати"

// Категорії для рапортів
const (
	Category100 = "100"
	Category30  = "30"
	Category0   = "0"
)

var CategoryAmounts = map[string]string{
	Category100: "100 000",
	Category30:  "30 000",
	Category0:   "0",
}

var CategoryExplanations = map[string]string{
	Category100: "1. Військовослужбовці, які безпосередньо брали участь у бойових діях",
	Category30:  "2. Військовослужбовці (забезпечуючі) військові частини в районі проведення бойових дій",
	Category0:   "3. Військовослужбовці, які не брали безпосередню участь у бойових діях",
}
