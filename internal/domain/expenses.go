package domain

import "github.com/shopspring/decimal"

// ExpenseCategory identifies one of the fixed recurring expense categories.
type ExpenseCategory string

const (
	CategoryRent          ExpenseCategory = "rent"
	CategoryElectricity   ExpenseCategory = "electricity"
	CategoryWater         ExpenseCategory = "water"
	CategoryPhone         ExpenseCategory = "phone"
	CategoryWifi          ExpenseCategory = "wifi"
	CategoryGroceries     ExpenseCategory = "groceries"
	CategoryHomeInsurance ExpenseCategory = "homeInsurance"
	CategoryAutoInsurance ExpenseCategory = "autoInsurance"
	CategoryCarPayment    ExpenseCategory = "carPayment"
	CategoryEntertainment ExpenseCategory = "entertainment"
	CategoryMiscellaneous ExpenseCategory = "miscellaneous"
)

// Categories lists every expense category in presentation order.
var Categories = []ExpenseCategory{
	CategoryRent,
	CategoryElectricity,
	CategoryWater,
	CategoryPhone,
	CategoryWifi,
	CategoryGroceries,
	CategoryHomeInsurance,
	CategoryAutoInsurance,
	CategoryCarPayment,
	CategoryEntertainment,
	CategoryMiscellaneous,
}

var categoryLabels = map[ExpenseCategory]string{
	CategoryRent:          "Rent/Mortgage",
	CategoryElectricity:   "Electricity",
	CategoryWater:         "Water",
	CategoryPhone:         "Phone",
	CategoryWifi:          "WiFi/Internet",
	CategoryGroceries:     "Groceries",
	CategoryHomeInsurance: "Home Insurance",
	CategoryAutoInsurance: "Auto Insurance",
	CategoryCarPayment:    "Car Payment",
	CategoryEntertainment: "Entertainment",
	CategoryMiscellaneous: "Miscellaneous/Subscriptions",
}

// Label returns the display label for the category, or the raw id when the
// category is not one of the fixed set.
func (c ExpenseCategory) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return string(c)
}

// ExpenseSet maps each fixed category to a non-negative monthly amount.
// Unset categories are zero.
type ExpenseSet map[ExpenseCategory]decimal.Decimal

// NewExpenseSet returns a set with every category present at zero.
func NewExpenseSet() ExpenseSet {
	set := make(ExpenseSet, len(Categories))
	for _, c := range Categories {
		set[c] = decimal.Zero
	}
	return set
}

// Amount returns the monthly amount for a category, clamped to zero for
// unset or negative entries.
func (s ExpenseSet) Amount(c ExpenseCategory) decimal.Decimal {
	amount, ok := s[c]
	if !ok || amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}

// Total sums all category amounts.
func (s ExpenseSet) Total() decimal.Decimal {
	total := decimal.Zero
	for _, c := range Categories {
		total = total.Add(s.Amount(c))
	}
	return total
}

// Clone returns an independent copy covering every fixed category.
func (s ExpenseSet) Clone() ExpenseSet {
	out := make(ExpenseSet, len(Categories))
	for _, c := range Categories {
		out[c] = s.Amount(c)
	}
	return out
}
