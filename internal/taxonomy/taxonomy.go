package taxonomy

// CategoryOther is the sentinel bucket for records without a usable category.
const CategoryOther = "other"

var ExpenseCategories = []string{
	"food",
	"transport",
	"home",
	"entertainment",
	"health",
	"shopping",
	"services",
	"education",
	CategoryOther,
}

var IncomeCategories = []string{
	"salary",
	"freelance",
	"investment",
	"gift",
	CategoryOther,
}

func IsExpenseCategory(c string) bool {
	return contains(ExpenseCategories, c)
}

func IsIncomeCategory(c string) bool {
	return contains(IncomeCategories, c)
}

// Normalize maps a missing or unknown category onto the sentinel bucket.
func Normalize(c string) string {
	if c == "" {
		return CategoryOther
	}
	if contains(ExpenseCategories, c) || contains(IncomeCategories, c) {
		return c
	}
	return CategoryOther
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
