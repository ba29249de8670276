package expense

// CategoryGroup is one catalog section in display order.
type CategoryGroup struct {
	Category string   `json:"category"`
	Items    []string `json:"items"`
}

// DefaultCatalog lists the tracked expense categories and their items.
func DefaultCatalog() []CategoryGroup {
	return []CategoryGroup{
		{Category: "Housing", Items: []string{"Rent/Mortgage", "Utilities", "Insurance", "Maintenance"}},
		{Category: "Transportation", Items: []string{"Car Payment", "Gas", "Insurance", "Maintenance", "Public Transit"}},
		{Category: "Food", Items: []string{"Groceries", "Dining Out", "Delivery"}},
		{Category: "Healthcare", Items: []string{"Insurance", "Medications", "Doctor Visits"}},
		{Category: "Entertainment", Items: []string{"Streaming Services", "Hobbies", "Events"}},
		{Category: "Personal", Items: []string{"Clothing", "Personal Care", "Gym"}},
		{Category: "Debt", Items: []string{"Credit Cards", "Student Loans", "Personal Loans"}},
		{Category: "Savings", Items: []string{"Emergency Fund", "Investment", "Other Savings"}},
		{Category: "Other", Items: []string{"Gifts", "Miscellaneous"}},
	}
}
