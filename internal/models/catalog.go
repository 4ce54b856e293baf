// internal/models/catalog.go
package models

import "time"

type Category struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100;not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}

type Product struct {
	ID          uint    `json:"id" gorm:"primaryKey"`
	Name        string  `json:"name" gorm:"size:100;not null;index"`
	Description string  `json:"description" gorm:"type:text"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	// Legacy single-URL image, kept for products created before the
	// per-product image collection existed.
	Image      string    `json:"image" gorm:"size:500"`
	CategoryID uint      `json:"category" gorm:"not null;index"`
	// No column default: gorm drops zero-valued fields that carry one,
	// which would turn an explicit in_stock=false into true. The service
	// layer applies the default instead.
	InStock    bool      `json:"in_stock"`
	Featured   bool      `json:"featured" gorm:"default:false;index"`
	Discount   float64   `json:"discount" gorm:"default:0.82"`
	Size       string    `json:"size,omitempty" gorm:"size:100"`
	Flavour    string    `json:"flavour,omitempty" gorm:"size:100"`
	CreatedAt  time.Time `json:"created_at"`

	// Relationships
	Category Category       `json:"-" gorm:"foreignKey:CategoryID"`
	Images   []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

type ProductImage struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ProductID uint   `json:"product_id" gorm:"not null;index"`
	Image     string `json:"image" gorm:"size:500;not null"`
	IsPrimary bool   `json:"is_primary" gorm:"default:false"`
	AltText   string `json:"alt_text" gorm:"size:255"`
	// "order" is reserved in SQL, hence the explicit column name.
	Order     uint      `json:"order" gorm:"column:display_order;default:0"`
	CreatedAt time.Time `json:"created_at"`
}
