package models

import "time"

// Product represents the products table
type Product struct {
	ID          string    `gorm:"primaryKey;type:varchar(30);column:id" json:"id"`
	Name        string    `gorm:"type:varchar(300);not null;index" json:"name"`
	Brand       *string   `gorm:"type:varchar(150);index" json:"brand,omitempty"`
	Category    *string   `gorm:"type:varchar(100);index" json:"category,omitempty"`
	Description *string   `gorm:"type:text" json:"description,omitempty"`
	ImageURL    *string   `gorm:"column:image_url;type:varchar(500)" json:"imageUrl,omitempty"`
	ScrapedAt   time.Time `gorm:"autoCreateTime" json:"scrapedAt"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// EntityID returns the stable identifier of the row
func (p Product) EntityID() string {
	return p.ID
}
