package domain

// Category is an explicit taxonomy record. Whether a sub-category selector
// applies is a capability of the record, not a string match against the name.
type Category struct {
	CategoryID         string          `json:"categoryID"`
	Name               string          `json:"name"`
	Kind               TransactionType `json:"kind"`
	AdminOnly          bool            `json:"adminOnly"` // Visible to ADMIN/MANAGER only when picking
	NeedsSubcategory   bool            `json:"needsSubcategory"`
	SubcategoryOptions []string        `json:"subcategoryOptions,omitempty"`
	IsCustom           bool            `json:"isCustom,omitempty"`
}

// HasSubcategory reports whether name is one of the category's options.
func (c Category) HasSubcategory(name string) bool {
	for _, opt := range c.SubcategoryOptions {
		if opt == name {
			return true
		}
	}
	return false
}

var conveyanceSubcategories = []string{"Bus", "Rickshaw", "CNG", "Train", "Fuel", "Ride Share"}

var adminAssetSubcategories = []string{"Personal", "Household", "Investment", "Donation", "Other"}

// SeedCategories returns the fixed taxonomy a fresh installation starts with.
func SeedCategories() []Category {
	return []Category{
		{CategoryID: "cat_conveyance", Name: "Conveyance", Kind: Expense, NeedsSubcategory: true, SubcategoryOptions: conveyanceSubcategories},
		{CategoryID: "cat_requisition", Name: RequisitionCategory, Kind: Expense},
		{CategoryID: "cat_office", Name: "Office Supplies", Kind: Expense},
		{CategoryID: "cat_utilities", Name: "Utilities", Kind: Expense},
		{CategoryID: "cat_food", Name: "Food", Kind: Expense},
		{CategoryID: "cat_entertainment", Name: "Entertainment", Kind: Expense},
		{CategoryID: "cat_maintenance", Name: "Maintenance", Kind: Expense},
		{CategoryID: "cat_family", Name: "Family", Kind: Expense, AdminOnly: true, NeedsSubcategory: true, SubcategoryOptions: adminAssetSubcategories},
		{CategoryID: "cat_marjan", Name: "Marjan", Kind: Expense, AdminOnly: true, NeedsSubcategory: true, SubcategoryOptions: adminAssetSubcategories},
		{CategoryID: "cat_admin_own", Name: "Admin Own", Kind: Expense, AdminOnly: true, NeedsSubcategory: true, SubcategoryOptions: adminAssetSubcategories},
		{CategoryID: "cat_sales", Name: "Sales", Kind: Income},
		{CategoryID: "cat_service", Name: "Service", Kind: Income},
		{CategoryID: "cat_other_income", Name: "Other Income", Kind: Income},
	}
}
