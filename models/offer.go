package models

import "time"

// Offer represents the offers table
// DiscountPercentage is computed by the scraper at ingestion time and is
// treated by the read side as an opaque stored field, never recomputed.
type Offer struct {
	ID                 string     `gorm:"primaryKey;type:varchar(30);column:id" json:"id"`
	RetailerID         string     `gorm:"type:varchar(30);not null;index" json:"retailerId"`
	FlyerID            *string    `gorm:"type:varchar(30);index" json:"flyerId,omitempty"`
	ProductID          *string    `gorm:"type:varchar(30);index" json:"productId,omitempty"`
	ProductName        string     `gorm:"type:varchar(300);not null;index" json:"productName"`
	Brand              *string    `gorm:"type:varchar(150)" json:"brand,omitempty"`
	Category           *string    `gorm:"type:varchar(100);index" json:"category,omitempty"`
	CurrentPrice       float64    `gorm:"not null;check:current_price >= 0" json:"currentPrice"`
	OldPrice           *float64   `json:"oldPrice,omitempty"`
	DiscountPercentage *float64   `gorm:"index" json:"discountPercentage,omitempty"`
	UnitPrice          *string    `gorm:"type:varchar(100)" json:"unitPrice,omitempty"`
	URL                string     `gorm:"type:varchar(500);not null;unique" json:"url"`
	ImageURL           *string    `gorm:"column:image_url;type:varchar(500)" json:"imageUrl,omitempty"`
	ValidFrom          *time.Time `json:"validFrom,omitempty"`
	ValidUntil         *time.Time `gorm:"index" json:"validUntil,omitempty"`
	Description        *string    `gorm:"type:text" json:"description,omitempty"`
	ScrapedAt          time.Time  `gorm:"autoCreateTime" json:"scrapedAt"`
}

// TableName specifies the table name for Offer
func (Offer) TableName() string {
	return "offers"
}

// EntityID returns the stable identifier of the row
func (o Offer) EntityID() string {
	return o.ID
}
