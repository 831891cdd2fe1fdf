package models

import "time"

// Store represents the stores table (physical retailer locations)
type Store struct {
	ID           string    `gorm:"primaryKey;type:varchar(30);column:id" json:"id"`
	RetailerID   string    `gorm:"type:varchar(30);not null;index;uniqueIndex:store_retailer_address" json:"retailerId"`
	Address      string    `gorm:"type:varchar(300);not null;uniqueIndex:store_retailer_address" json:"address"`
	City         string    `gorm:"type:varchar(150);not null;index" json:"city"`
	PostalCode   string    `gorm:"type:varchar(20);not null;index" json:"postalCode"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	Phone        *string   `gorm:"type:varchar(50)" json:"phone,omitempty"`
	OpeningHours *string   `gorm:"type:text" json:"openingHours,omitempty"`
	ScrapedAt    time.Time `gorm:"autoCreateTime" json:"scrapedAt"`
}

// TableName specifies the table name for Store
func (Store) TableName() string {
	return "stores"
}

// EntityID returns the stable identifier of the row
func (s Store) EntityID() string {
	return s.ID
}
