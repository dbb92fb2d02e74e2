package service

import (
	"go-inventory-tracker/internal/apperr"
	"go-inventory-tracker/internal/audit"
	"go-inventory-tracker/internal/model"
	"go-inventory-tracker/internal/policy"
	"go-inventory-tracker/internal/repository"
	"go-inventory-tracker/internal/ws"
	"go-inventory-tracker/pkg/validator"

	"github.com/shopspring/decimal"
)

// Actor is the authenticated identity performing a write.
type Actor struct {
	ID       uint
	Username string
	Role     string
}

// CreateProductRequest uses pointers for price and quantity so that an
// explicit zero is distinguishable from an absent field.
type CreateProductRequest struct {
	Name     string   `json:"name" validate:"required"`
	SKU      string   `json:"sku" validate:"required"`
	Category string   `json:"category" validate:"required"`
	Price    *float64 `json:"price" validate:"required,gte=0"`
	Quantity *int     `json:"quantity" validate:"required,gte=0"`
	MinStock int      `json:"minStock" validate:"gte=0"`
	Supplier string   `json:"supplier"`
}

// UpdateProductRequest carries the full submitted field set; the
// policy table decides which of them actually apply for the actor's
// role. Fields outside the allow-list keep their stored values.
type UpdateProductRequest struct {
	Name     string  `json:"name"`
	SKU      string  `json:"sku"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
	Quantity int     `json:"quantity"`
	MinStock int     `json:"minStock"`
	Supplier string  `json:"supplier"`
}

// ProductPage is the paginated list response shape.
type ProductPage struct {
	Products      []model.ProductResponse `json:"products"`
	TotalPages    int64                   `json:"totalPages"`
	CurrentPage   int                     `json:"currentPage"`
	TotalProducts int64                   `json:"totalProducts"`
}

type ProductService interface {
	Create(req *CreateProductRequest, actor Actor) (*model.Product, error)
	Update(id uint, req *UpdateProductRequest, actor Actor) (*model.Product, error)
	Delete(id uint, actor Actor) error
	Get(id uint) (*model.ProductResponse, error)
	List(filters repository.ProductFilters, page, limit int) (*ProductPage, error)
	Export() ([]model.Product, error)
}

type productService struct {
	products repository.ProductRepository
	audit    audit.Recorder
	hub      *ws.Hub
}

func NewProductService(products repository.ProductRepository, recorder audit.Recorder, hub *ws.Hub) ProductService {
	return &productService{products: products, audit: recorder, hub: hub}
}

func (s *productService) Create(req *CreateProductRequest, actor Actor) (*model.Product, error) {
	if msg := validator.FirstError(req); msg != "" {
		return nil, apperr.New(apperr.Validation, msg)
	}

	product := &model.Product{
		Name:     req.Name,
		SKU:      req.SKU,
		Category: req.Category,
		Price:    decimal.NewFromFloat(*req.Price),
		Quantity: *req.Quantity,
		MinStock: req.MinStock,
		Supplier: req.Supplier,
	}

	if err := s.products.Create(product); err != nil {
		return nil, translateDuplicate(err, "SKU already exists")
	}

	s.audit.Record(product.ID, product.Name, 0, product.Quantity, model.ReasonProductCreated, actor.Username)
	s.publish("product_created", product.ID, product.Name, 0, product.Quantity, actor.Username)

	return product, nil
}

func (s *productService) Update(id uint, req *UpdateProductRequest, actor Actor) (*model.Product, error) {
	existing, err := s.products.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, "Product not found")
	}

	allowed := policy.WritableFields(actor.Role)
	if len(allowed) == 0 {
		return nil, apperr.New(apperr.Forbidden, "Forbidden: You do not have permission to perform this action.")
	}

	oldQuantity := existing.Quantity

	if allowed.Allows(policy.FieldName) {
		existing.Name = req.Name
	}
	if allowed.Allows(policy.FieldSKU) {
		existing.SKU = req.SKU
	}
	if allowed.Allows(policy.FieldCategory) {
		existing.Category = req.Category
	}
	if allowed.Allows(policy.FieldPrice) {
		existing.Price = decimal.NewFromFloat(req.Price)
	}
	if allowed.Allows(policy.FieldQuantity) {
		existing.Quantity = req.Quantity
	}
	if allowed.Allows(policy.FieldMinStock) {
		existing.MinStock = req.MinStock
	}
	if allowed.Allows(policy.FieldSupplier) {
		existing.Supplier = req.Supplier
	}

	if err := s.products.Update(existing); err != nil {
		return nil, translateDuplicate(err, "SKU already exists")
	}

	// One log entry per actual quantity transition. The effective name
	// is whatever the narrowed write left in place: the submitted name
	// for admin, the stored name for staff.
	if existing.Quantity != oldQuantity {
		s.audit.Record(existing.ID, existing.Name, oldQuantity, existing.Quantity, model.ReasonStockUpdate, actor.Username)
		s.publish("stock_updated", existing.ID, existing.Name, oldQuantity, existing.Quantity, actor.Username)
	}

	return existing, nil
}

func (s *productService) Delete(id uint, actor Actor) error {
	existing, err := s.products.FindByID(id)
	if err != nil {
		return translateNotFound(err, "Product not found")
	}

	if err := s.products.Delete(id); err != nil {
		return err
	}

	s.audit.Record(existing.ID, existing.Name, existing.Quantity, 0, model.ReasonProductDeleted, actor.Username)
	s.publish("product_deleted", existing.ID, existing.Name, existing.Quantity, 0, actor.Username)

	return nil
}

func (s *productService) Get(id uint) (*model.ProductResponse, error) {
	product, err := s.products.FindByID(id)
	if err != nil {
		return nil, translateNotFound(err, "Product not found")
	}
	resp := product.ToResponse()
	return &resp, nil
}

func (s *productService) List(filters repository.ProductFilters, page, limit int) (*ProductPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 20
	}

	products, total, err := s.products.FindPage(filters, page, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]model.ProductResponse, len(products))
	for i := range products {
		responses[i] = products[i].ToResponse()
	}

	totalPages := total / int64(limit)
	if total%int64(limit) != 0 {
		totalPages++
	}

	return &ProductPage{
		Products:      responses,
		TotalPages:    totalPages,
		CurrentPage:   page,
		TotalProducts: total,
	}, nil
}

func (s *productService) Export() ([]model.Product, error) {
	return s.products.FindAllByName()
}

func (s *productService) publish(action string, id uint, name string, oldQty, newQty int, actor string) {
	if s.hub == nil {
		return
	}
	go s.hub.Publish(ws.StockEvent{
		Action:      action,
		ProductID:   id,
		ProductName: name,
		OldQuantity: oldQty,
		NewQuantity: newQty,
		Actor:       actor,
	})
}
