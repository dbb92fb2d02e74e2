// Package policy is the access-control gate for product writes: a
// data-driven table mapping each role to the product fields it may
// touch. The decision is pure; enforcement happens in the service
// layer, which overwrites disallowed fields with stored values.
package policy

import "go-inventory-tracker/internal/model"

// Field names a writable product attribute.
type Field string

const (
	FieldName     Field = "name"
	FieldSKU      Field = "sku"
	FieldCategory Field = "category"
	FieldPrice    Field = "price"
	FieldQuantity Field = "quantity"
	FieldMinStock Field = "min_stock"
	FieldSupplier Field = "supplier"
)

// FieldSet is the set of product fields a role may write.
type FieldSet map[Field]bool

func (s FieldSet) Allows(f Field) bool { return s[f] }

// writableFields is the per-role allow-list. Staff may only adjust
// stock levels; everything else is admin territory.
var writableFields = map[string]FieldSet{
	model.RoleAdmin: {
		FieldName:     true,
		FieldSKU:      true,
		FieldCategory: true,
		FieldPrice:    true,
		FieldQuantity: true,
		FieldMinStock: true,
		FieldSupplier: true,
	},
	model.RoleStaff: {
		FieldQuantity: true,
		FieldMinStock: true,
	},
}

// WritableFields returns the allow-list for role. Unknown roles get an
// empty set, which denies every field.
func WritableFields(role string) FieldSet {
	return writableFields[role]
}
