package model

import (
	"time"

	"github.com/google/uuid"
)

// OrderModel mirrors the 'orders' table. Shipping address columns are
// embedded so an order keeps its destination even if the profile changes.
type OrderModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index"`
	Status        string    `gorm:"type:varchar(20);not null;index"`
	Subtotal      float64   `gorm:"type:numeric(10,2);not null"`
	Tax           float64   `gorm:"type:numeric(10,2);not null"`
	ShippingCost  float64   `gorm:"type:numeric(10,2);not null"`
	Total         float64   `gorm:"type:numeric(10,2);not null"`
	Street        string    `gorm:"type:varchar(255)"`
	City          string    `gorm:"type:varchar(100)"`
	State         string    `gorm:"type:varchar(100)"`
	ZipCode       string    `gorm:"type:varchar(20)"`
	Country       string    `gorm:"type:varchar(100)"`
	PaymentMethod string    `gorm:"type:varchar(20);not null"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table. Name and Price snapshot
// the product at checkout time.
type OrderItemModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	OrderID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID `gorm:"type:uuid;not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Quantity  int       `gorm:"not null"`
	Price     float64   `gorm:"type:numeric(10,2);not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}
