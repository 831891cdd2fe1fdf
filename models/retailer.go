package models

import "time"

// Retailer represents the retailers table
type Retailer struct {
	ID        string    `gorm:"primaryKey;type:varchar(30);column:id" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null;unique" json:"name"`
	Category  string    `gorm:"type:varchar(100);not null;index" json:"category"`
	LogoURL   *string   `gorm:"column:logo_url;type:varchar(500)" json:"logoUrl,omitempty"`
	ScrapedAt time.Time `gorm:"autoCreateTime" json:"scrapedAt"`
}

// TableName specifies the table name for Retailer
func (Retailer) TableName() string {
	return "retailers"
}

// EntityID returns the stable identifier of the row
func (r Retailer) EntityID() string {
	return r.ID
}
