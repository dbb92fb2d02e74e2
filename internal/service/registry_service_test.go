package service

import (
	"testing"

	"go-inventory-tracker/internal/apperr"
	"go-inventory-tracker/internal/audit"
	"go-inventory-tracker/internal/repository"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRegistryFixture(t *testing.T) (RegistryService, ProductService) {
	t.Helper()
	db := setupTestDB(t)
	productRepo := repository.NewProductRepo(db)
	recorder := audit.NewRecorder(repository.NewStockLogRepo(db), zerolog.Nop())
	registry := NewRegistryService(repository.NewCategoryRepo(db), repository.NewSupplierRepo(db), productRepo)
	products := NewProductService(productRepo, recorder, nil)
	return registry, products
}

func TestAddCategoryRejectsDuplicates(t *testing.T) {
	registry, _ := newRegistryFixture(t)

	_, err := registry.AddCategory("Electronics")
	require.NoError(t, err)

	_, err = registry.AddCategory("Electronics")
	require.Error(t, err)
	assert.Equal(t, apperr.DuplicateKey, apperr.KindOf(err))
	assert.Equal(t, "Category already exists", err.Error())
}

func TestDeleteCategoryBlockedWhileReferenced(t *testing.T) {
	registry, products := newRegistryFixture(t)

	category, err := registry.AddCategory("Electronics")
	require.NoError(t, err)

	for _, sku := range []string{"E-1", "E-2"} {
		_, err := products.Create(createReq("Gadget "+sku, sku, 10.00, 1), adminActor)
		require.NoError(t, err)
	}

	err = registry.DeleteCategory(category.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.InUse, apperr.KindOf(err))
	assert.Equal(t, `Cannot delete category: "Electronics" is in use by 2 product(s).`, err.Error())

	// Still listed.
	categories, err := registry.ListCategories()
	require.NoError(t, err)
	assert.Len(t, categories, 1)
}

func TestDeleteUnreferencedCategory(t *testing.T) {
	registry, _ := newRegistryFixture(t)

	category, err := registry.AddCategory("Seasonal")
	require.NoError(t, err)
	require.NoError(t, registry.DeleteCategory(category.ID))

	err = registry.DeleteCategory(category.ID)
	assert.Equal(t, apperr.NotFound, apperr.KindOf(err))
}

func TestSupplierGuardCountsReferences(t *testing.T) {
	registry, products := newRegistryFixture(t)

	supplier, err := registry.AddSupplier("TechCorp")
	require.NoError(t, err)

	req := createReq("Gadget", "G-1", 10.00, 1)
	req.Supplier = "TechCorp"
	_, err = products.Create(req, adminActor)
	require.NoError(t, err)

	err = registry.DeleteSupplier(supplier.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.InUse, apperr.KindOf(err))
	assert.Equal(t, `Cannot delete supplier: "TechCorp" is in use by 1 product(s).`, err.Error())
}

func TestRegistriesListSortedByName(t *testing.T) {
	registry, _ := newRegistryFixture(t)

	for _, name := range []string{"Office", "Electronics", "Clothing"} {
		_, err := registry.AddCategory(name)
		require.NoError(t, err)
	}

	categories, err := registry.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, "Clothing", categories[0].Name)
	assert.Equal(t, "Electronics", categories[1].Name)
	assert.Equal(t, "Office", categories[2].Name)
}
