package models

import (
	"time"

	"gorm.io/datatypes"
)

// OrderStatus represents all possible states of a marketplace order
type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusAccepted  OrderStatus = "accepted"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
)

// Order is created atomically from a cart. ChefID is the selling chef's
// user ID. Subtotal and item prices are snapshotted server-side at
// placement time and immutable thereafter.
type Order struct {
	ID               uint                 `json:"id" gorm:"primaryKey"`
	CustomerID       uint                 `json:"customer_id" gorm:"not null;index"`
	Customer         User                 `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	ChefID           uint                 `json:"chef_id" gorm:"not null;index"`
	Status           OrderStatus          `json:"status" gorm:"not null;default:'pending'"`
	Subtotal         float64              `json:"subtotal"`
	DeliveryAddress  string               `json:"delivery_address" gorm:"not null"`
	Phone            string               `json:"phone"`
	PaymentMethod    string               `json:"payment_method" gorm:"not null;default:'cash_on_delivery'"`
	PaymentStatus    string               `json:"payment_status" gorm:"not null;default:'pending'"`
	PaymentReference string               `json:"payment_reference"`
	Items            []OrderItem          `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	StatusHistory    []OrderStatusHistory `json:"status_history,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt        time.Time            `json:"created_at"`
	UpdatedAt        time.Time            `json:"updated_at"`
}

type OrderItem struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	OrderID        uint           `json:"order_id" gorm:"not null"`
	DishID         uint           `json:"dish_id" gorm:"not null"`
	Name           string         `json:"name"`                  // snapshot name
	Price          float64        `json:"price" gorm:"not null"` // snapshot unit price, addons included
	Quantity       int            `json:"quantity" gorm:"not null"`
	SelectedAddons datatypes.JSON `json:"selected_addons,omitempty"`
}

// OrderStatusHistory tracks every status change — audit trail
type OrderStatusHistory struct {
	ID         uint        `json:"id" gorm:"primaryKey"`
	OrderID    uint        `json:"order_id" gorm:"not null"`
	FromStatus OrderStatus `json:"from_status"`
	ToStatus   OrderStatus `json:"to_status" gorm:"not null"`
	ChangedBy  uint        `json:"changed_by"` // user ID who triggered the transition
	Note       string      `json:"note"`
	CreatedAt  time.Time   `json:"created_at"`
}
