package enum

// ExpenseCategory splits expenses into the three back-office ledgers.
type ExpenseCategory string

const (
	ExpenseCategoryFinancial         ExpenseCategory = "financial"
	ExpenseCategoryLogistics         ExpenseCategory = "logistics"
	ExpenseCategorySalesDistribution ExpenseCategory = "sales_distribution"
)

func (c ExpenseCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is one of the known categories.
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryFinancial, ExpenseCategoryLogistics, ExpenseCategorySalesDistribution:
		return true
	}
	return false
}

// ExpenseCategoryFromPath maps a URL path segment to a category.
// The dashboard uses "sales-distribution" in paths.
func ExpenseCategoryFromPath(segment string) (ExpenseCategory, bool) {
	switch segment {
	case "financial":
		return ExpenseCategoryFinancial, true
	case "logistics":
		return ExpenseCategoryLogistics, true
	case "sales-distribution":
		return ExpenseCategorySalesDistribution, true
	}
	return "", false
}
