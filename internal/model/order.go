package model

import "time"

// Order groups purchased lines for a user.
type Order struct {
	ID        uint          `json:"id" gorm:"primaryKey"`
	UserID    uint          `json:"userId" gorm:"not null;index"`
	Date      time.Time     `json:"date"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
	Lines     []OrderDetail `json:"lines,omitempty" gorm:"foreignKey:OrderID"`
}

// OrderDetail references a product; its foreign key is what blocks
// deletion of products with sales history.
type OrderDetail struct {
	ID        uint    `json:"id" gorm:"primaryKey"`
	OrderID   uint    `json:"orderId" gorm:"not null;index"`
	ProductID uint    `json:"productId" gorm:"not null;index"`
	Product   Product `json:"-" gorm:"foreignKey:ProductID;constraint:OnDelete:RESTRICT"`
	Quantity  float64 `json:"quantity" gorm:"not null"`
}
