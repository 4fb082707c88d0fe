// Package model holds the GORM persistence models mirroring the PostgreSQL schema.
package model

import (
	"time"

	"github.com/google/uuid"
)

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	Price       float64   `gorm:"type:numeric(10,2);not null"`
	Stock       int       `gorm:"not null;default:0"`
	Image       string    `gorm:"type:varchar(512)"`
	Category    string    `gorm:"type:varchar(100);index"`
	Organic     bool      `gorm:"not null;default:false"`
	Unit        string    `gorm:"type:varchar(50)"`
	Discount    *float64  `gorm:"type:numeric(5,2)"`
	Featured    bool      `gorm:"not null;default:false"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
