package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID                  string    `gorm:"type:uuid;primaryKey" json:"id"`
	OrderCode           string    `gorm:"column:order_id;size:20;index" json:"orderCode"` // DDMMYYQQT, display code only
	FullName            string    `gorm:"not null" json:"fullName"`
	Phone               string    `gorm:"size:11;not null;index" json:"phone"`
	Email               *string   `json:"email,omitempty"`
	Address             string    `gorm:"not null" json:"address"`
	Quantity            int       `gorm:"not null" json:"quantity"`
	Price               int       `gorm:"not null" json:"price"`
	DeliveryCharge      int       `gorm:"not null" json:"deliveryCharge"`
	Total               int       `gorm:"not null" json:"total"`
	PaymentMethod       string    `gorm:"not null" json:"paymentMethod"` // cod, bkash
	PaymentStatus       string    `gorm:"not null;default:unpaid" json:"paymentStatus"`
	CustomerType        string    `gorm:"size:1;not null" json:"customerType"` // N, R
	Status              string    `gorm:"not null;default:pending;index" json:"status"`
	SpecialInstructions *string   `json:"specialInstructions,omitempty"`
	CreatedAt           time.Time `json:"createdAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}

type SubmitOrderInput struct {
	Name                string `json:"name" validate:"required"`
	Phone               string `json:"phone" validate:"required"`
	Email               string `json:"email"`
	Address             string `json:"address" validate:"required"`
	Quantity            int    `json:"quantity" validate:"required,gt=0"`
	PaymentMethod       string `json:"paymentMethod" validate:"required"`
	SpecialInstructions string `json:"specialInstructions"`
}

type OrderFilter struct {
	Pagination
	Status *string `json:"status" query:"status"`
	Search *string `json:"search" query:"search"`
}

type UpdateOrderStatusInput struct {
	Status string `json:"status" validate:"required"`
}

type UpdatePaymentStatusInput struct {
	PaymentStatus string `json:"paymentStatus" validate:"required"`
}

type DeleteOrderInput struct {
	Confirm bool `json:"confirm"`
}

type PhoneCheckInput struct {
	Phone string `json:"phone" validate:"required"`
}

// TodayStats covers orders created since local midnight
type TodayStats struct {
	TotalOrders   int64 `json:"totalOrders"`
	TotalRevenue  int64 `json:"totalRevenue"`
	BkashOrders   int64 `json:"bkashOrders"`
	CodOrders     int64 `json:"codOrders"`
	PendingOrders int64 `json:"pendingOrders"`
	UnpaidBkash   int64 `json:"unpaidBkash"`
}
