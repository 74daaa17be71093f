package products

import "time"

// Product is one catalog record as the record store keeps it.
type Product struct {
	ID          string    `json:"id" gorm:"primaryKey;type:char(36)"`
	Name        string    `json:"name" gorm:"type:varchar(255);not null"`
	Description string    `json:"description" gorm:"type:text"`
	Price       float64   `json:"price" gorm:"type:decimal(12,2);not null;default:0"`
	ImageURL    string    `json:"image_url" gorm:"column:image_url;type:varchar(1024)"`
	Category    string    `json:"category" gorm:"type:varchar(64);index:ix_products_category"`
	CreatedAt   time.Time `json:"created_at" gorm:"type:datetime(3);not null;index:ix_products_created_at"`
}

func (Product) TableName() string { return "products" }

// Fields are the editable parts of a product. Update replaces all of them.
type Fields struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    string  `json:"image_url"`
	Category    string  `json:"category"`
}

func (p Product) Fields() Fields {
	return Fields{
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
	}
}

// Bucket returns the display category the product is grouped under.
func (p Product) Bucket() Category { return ParseCategory(p.Category) }
