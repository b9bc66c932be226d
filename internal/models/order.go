package models

import (
	"errors"
	"time"
)

const OrderCollection = "order"

const (
	StatusPending        = "Pending"
	StatusConfirmed      = "Confirmed"
	StatusReadyForPickup = "Ready for Pickup"
	StatusDelivered      = "Delivered"
)

var (
	ErrUnsupportedPayment = errors.New("unsupported payment method")
	ErrInvalidStatus      = errors.New("invalid status")
)

// PaymentMethods is the whitelist enforced at order creation.
var PaymentMethods = []string{"Cash on Delivery", "Card on Delivery"}

// OrderStatuses lists every reachable order state. Transitions are not
// restricted to forward-only; any of the four labels is a valid target.
var OrderStatuses = []string{
	StatusPending,
	StatusConfirmed,
	StatusReadyForPickup,
	StatusDelivered,
}

// OrderItem is one line of an order. quantity applies to grocery lines and
// weight_kg to butcher lines; the schema leaves both optional, so a
// malformed line may carry neither or both. item_id is not checked against
// the catalog and subtotal is trusted from the caller, matching the
// upstream contract.
type OrderItem struct {
	Type      string   `json:"type" bson:"type" binding:"required,oneof=butcher grocery"`
	ItemID    string   `json:"item_id" bson:"item_id" binding:"required"`
	Title     string   `json:"title" bson:"title" binding:"required"`
	UnitPrice *float64 `json:"unit_price" bson:"unit_price" binding:"required,gte=0"`
	Quantity  *int     `json:"quantity" bson:"quantity" binding:"omitempty,gte=1"`
	WeightKg  *float64 `json:"weight_kg" bson:"weight_kg" binding:"omitempty,gte=0.1"`
	Subtotal  *float64 `json:"subtotal" bson:"subtotal" binding:"required,gte=0"`
}

// Order as submitted and stored. total is trusted from the caller, not
// recomputed from the items. The items field must be present but may be
// empty. Status is server-controlled: forced to Pending at creation and
// only changed through the admin transition endpoint.
type Order struct {
	CustomerName  string      `json:"customer_name" bson:"customer_name" binding:"required"`
	Phone         string      `json:"phone" bson:"phone" binding:"required"`
	Address       string      `json:"address" bson:"address" binding:"required"`
	PaymentMethod string      `json:"payment_method" bson:"payment_method" binding:"required"`
	Status        string      `json:"status" bson:"status"`
	Items         []OrderItem `json:"items" bson:"items" binding:"required,dive"`
	Total         *float64    `json:"total" bson:"total" binding:"required,gte=0"`
	CreatedAt     time.Time   `json:"-" bson:"created_at"`
}

func ValidPaymentMethod(method string) bool {
	for _, m := range PaymentMethods {
		if method == m {
			return true
		}
	}
	return false
}

func ValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if status == s {
			return true
		}
	}
	return false
}
