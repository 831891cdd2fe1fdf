package models

import "time"

// Flyer represents the flyers table
// Ingestion guarantees ValidUntil >= ValidFrom.
type Flyer struct {
	ID           string    `gorm:"primaryKey;type:varchar(30);column:id" json:"id"`
	RetailerID   string    `gorm:"type:varchar(30);not null;index" json:"retailerId"`
	Title        string    `gorm:"type:varchar(300);not null" json:"title"`
	Pages        int       `gorm:"not null" json:"pages"`
	ValidFrom    time.Time `gorm:"not null;index" json:"validFrom"`
	ValidUntil   time.Time `gorm:"not null;index" json:"validUntil"`
	URL          string    `gorm:"type:varchar(500);not null;unique" json:"url"`
	PdfURL       *string   `gorm:"column:pdf_url;type:varchar(500)" json:"pdfUrl,omitempty"`
	ThumbnailURL *string   `gorm:"column:thumbnail_url;type:varchar(500)" json:"thumbnailUrl,omitempty"`
	ScrapedAt    time.Time `gorm:"autoCreateTime" json:"scrapedAt"`
}

// TableName specifies the table name for Flyer
func (Flyer) TableName() string {
	return "flyers"
}

// EntityID returns the stable identifier of the row
func (f Flyer) EntityID() string {
	return f.ID
}
