package policy

import (
	"testing"

	"go-inventory-tracker/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAdminMayWriteEveryField(t *testing.T) {
	allowed := WritableFields(model.RoleAdmin)

	for _, f := range []Field{FieldName, FieldSKU, FieldCategory, FieldPrice, FieldQuantity, FieldMinStock, FieldSupplier} {
		assert.True(t, allowed.Allows(f), "admin should be allowed to write %s", f)
	}
}

func TestStaffIsLimitedToStockFields(t *testing.T) {
	allowed := WritableFields(model.RoleStaff)

	assert.True(t, allowed.Allows(FieldQuantity))
	assert.True(t, allowed.Allows(FieldMinStock))

	for _, f := range []Field{FieldName, FieldSKU, FieldCategory, FieldPrice, FieldSupplier} {
		assert.False(t, allowed.Allows(f), "staff must not be allowed to write %s", f)
	}
}

func TestUnknownRoleGetsNothing(t *testing.T) {
	allowed := WritableFields("intern")
	assert.Empty(t, allowed)
	assert.False(t, allowed.Allows(FieldQuantity))
}
