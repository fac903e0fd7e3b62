package store

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/markshop/markshop/internal/domain"
)

// ErrProductNotFound is returned when a product id does not exist.
var ErrProductNotFound = errors.New("product not found")

// ProductFields carries the attributes for a new product. Zero values
// of the optional fields are the storefront defaults (category
// Electronics, discount 0, is_sale false).
type ProductFields struct {
	Name     string
	Price    float64
	ImageURL string
	Category string
	Discount float64
	IsSale   bool
}

// ProductPatch is a partial update. Only non-nil fields overwrite the
// stored attribute; the id is never patched.
type ProductPatch struct {
	Name     *string
	Price    *float64
	ImageURL *string
	Category *string
	Discount *float64
	IsSale   *bool
}

// ProductRepository handles database operations for catalog products.
type ProductRepository interface {
	// ListAll retrieves every product in primary-key order
	ListAll(ctx context.Context) ([]domain.Product, error)

	// Get retrieves a product by ID
	Get(ctx context.Context, id int64) (*domain.Product, error)

	// Insert creates a new product, assigning its id and applying
	// defaults for omitted optional fields
	Insert(ctx context.Context, fields ProductFields) (*domain.Product, error)

	// Update applies a partial update to an existing product
	Update(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error)

	// Delete removes a product by ID
	Delete(ctx context.Context, id int64) error

	// Count returns the number of stored products
	Count(ctx context.Context) (int64, error)
}

type gormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a gorm-backed product repository.
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &gormProductRepository{db: db}
}

func (r *gormProductRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&products).Error; err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	return products, nil
}

func (r *gormProductRepository) Get(ctx context.Context, id int64) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "query product")
	}
	return &p, nil
}

func (r *gormProductRepository) Insert(ctx context.Context, fields ProductFields) (*domain.Product, error) {
	if fields.Category == "" {
		fields.Category = domain.CategoryElectronics
	}
	p := domain.Product{
		Name:     fields.Name,
		Price:    fields.Price,
		ImageURL: fields.ImageURL,
		Category: fields.Category,
		Discount: fields.Discount,
		IsSale:   fields.IsSale,
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&p).Error
	})
	if err != nil {
		return nil, errors.Wrap(err, "create product")
	}
	return &p, nil
}

func (r *gormProductRepository) Update(ctx context.Context, id int64, patch ProductPatch) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ?", id).First(&p).Error; err != nil {
			return err
		}
		if patch.Name != nil {
			p.Name = *patch.Name
		}
		if patch.Price != nil {
			p.Price = *patch.Price
		}
		if patch.ImageURL != nil {
			p.ImageURL = *patch.ImageURL
		}
		if patch.Category != nil {
			p.Category = *patch.Category
		}
		if patch.Discount != nil {
			p.Discount = *patch.Discount
		}
		if patch.IsSale != nil {
			p.IsSale = *patch.IsSale
		}
		return tx.Save(&p).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "update product")
	}
	return &p, nil
}

func (r *gormProductRepository) Delete(ctx context.Context, id int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("id = ?", id).Delete(&domain.Product{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrProductNotFound
		}
		return nil
	})
	if errors.Is(err, ErrProductNotFound) {
		return ErrProductNotFound
	}
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	return nil
}

func (r *gormProductRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Product{}).Count(&total).Error; err != nil {
		return 0, errors.Wrap(err, "count products")
	}
	return total, nil
}
