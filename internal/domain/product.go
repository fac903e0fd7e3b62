package domain

import "gorm.io/gorm"

// Product categories conventionally used by the storefront. The column
// is a plain string, the set is not enforced.
const (
	CategoryElectronics = "Electronics"
	CategoryComputers   = "Computers"
	CategoryCameras     = "Cameras"
)

// Product represents a catalog item with a base price, a percentage
// discount and a sale badge flag.
type Product struct {
	ID       int64   `gorm:"primaryKey;autoIncrement" json:"id" form:"id"`
	Name     string  `gorm:"size:120;not null" json:"name" form:"name"`
	Price    float64 `gorm:"not null" json:"price" form:"price"`
	ImageURL string  `gorm:"column:image_url;size:500;not null" json:"image_url" form:"image_url"`
	Category string  `gorm:"size:50;default:Electronics" json:"category" form:"category"`
	Discount float64 `gorm:"default:0" json:"discount" form:"discount"`
	IsSale   bool    `gorm:"default:false" json:"is_sale" form:"is_sale"`

	// DiscountedPrice is derived on read and never stored.
	DiscountedPrice float64 `gorm:"-" json:"discounted_price"`
}

// TableName Specify table name
func (Product) TableName() string {
	return "product"
}

// GetDiscountedPrice computes price * (1 - discount/100). Discounts are
// not clamped, a discount over 100 yields a negative price.
func (p *Product) GetDiscountedPrice() float64 {
	return p.Price * (1 - p.Discount/100)
}

func (p *Product) AfterFind(tx *gorm.DB) error {
	p.DiscountedPrice = p.GetDiscountedPrice()
	return nil
}

func (p *Product) AfterSave(tx *gorm.DB) error {
	p.DiscountedPrice = p.GetDiscountedPrice()
	return nil
}
