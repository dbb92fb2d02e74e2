package service

import (
	"go-inventory-tracker/internal/apperr"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/repository"
)

// RegistryService manages the two reference registries. Deletes are
// guarded by a best-effort count of referencing products; uniqueness
// of names is enforced by the storage layer's unique indexes.
type RegistryService interface {
	ListCategories() ([]model.Category, error)
	AddCategory(name string) (*model.Category, error)
	DeleteCategory(id uint) error

	ListSuppliers() ([]model.Supplier, error)
	AddSupplier(name string) (*model.Supplier, error)
	DeleteSupplier(id uint) error
}

type registryService struct {
	categories repository.CategoryRepository
	suppliers  repository.SupplierRepository
	products   repository.ProductRepository
}

func NewRegistryService(
	categories repository.CategoryRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
) RegistryService {
	return &registryService{categories: categories, suppliers: suppliers, products: products}
}

func (s *registryService) ListCategories() ([]model.Category, error) {
	return s.categories.FindAll()
}

func (s *registryService) AddCategory(name string) (*model.Category, error) {
	if name == "" {
		return nil, apperr.New(apperr.Validation, "Category name required")
	}
	category := &model.Category{Name: name}
	if err := s.categories.Create(category); err != nil {
		return nil, translateDuplicate(err, "Category already exists")
	}
	return category, nil
}

func (s *registryService) DeleteCategory(id uint) error {
	category, err := s.categories.FindByID(id)
	if err != nil {
		return translateNotFound(err, "Category not found")
	}

	count, err := s.products.CountByCategory(category.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.NewInUse("category", category.Name, count)
	}

	return s.categories.Delete(id)
}

func (s *registryService) ListSuppliers() ([]model.Supplier, error) {
	return s.suppliers.FindAll()
}

func (s *registryService) AddSupplier(name string) (*model.Supplier, error) {
	if name == "" {
		return nil, apperr.New(apperr.Validation, "Supplier name required")
	}
	supplier := &model.Supplier{Name: name}
	if err := s.suppliers.Create(supplier); err != nil {
		return nil, translateDuplicate(err, "Supplier already exists")
	}
	return supplier, nil
}

func (s *registryService) DeleteSupplier(id uint) error {
	supplier, err := s.suppliers.FindByID(id)
	if err != nil {
		return translateNotFound(err, "Supplier not found")
	}

	count, err := s.products.CountBySupplier(supplier.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return apperr.NewInUse("supplier", supplier.Name, count)
	}

	return s.suppliers.Delete(id)
}
