package enums

import "fmt"

// ProductCategory represents the canonical product categories on the menu.
type ProductCategory string

const (
	ProductCategoryCoffee    ProductCategory = "coffee"
	ProductCategoryTea       ProductCategory = "tea"
	ProductCategoryPastry    ProductCategory = "pastry"
	ProductCategorySandwich  ProductCategory = "sandwich"
	ProductCategoryBeverage  ProductCategory = "beverage"
	ProductCategoryAccessory ProductCategory = "accessory"
)

var validProductCategories = []ProductCategory{
	ProductCategoryCoffee,
	ProductCategoryTea,
	ProductCategoryPastry,
	ProductCategorySandwich,
	ProductCategoryBeverage,
	ProductCategoryAccessory,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
