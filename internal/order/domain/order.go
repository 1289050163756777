package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderItem is a cart line frozen into the order: name, image and price are
// the snapshots the cart carried, product holds the catalog reference.
type OrderItem struct {
	Name    string  `bson:"name" json:"name"`
	Qty     int     `bson:"qty" json:"qty"`
	Image   string  `bson:"image" json:"image"`
	Price   float64 `bson:"price" json:"price"`
	Product string  `bson:"product" json:"product"`
}

type ShippingAddress struct {
	Address    string `bson:"address" json:"address"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postalCode"`
	Country    string `bson:"country" json:"country"`
}

// Order is the document stored per submission. Paid/delivered default to
// false; no further lifecycle is modeled.
type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	OrderItems      []OrderItem        `bson:"order_items" json:"orderItems"`
	ShippingAddress ShippingAddress    `bson:"shipping_address" json:"shippingAddress"`
	PaymentMethod   string             `bson:"payment_method" json:"paymentMethod"`
	ItemsPrice      float64            `bson:"items_price" json:"itemsPrice"`
	TaxPrice        float64            `bson:"tax_price" json:"taxPrice"`
	ShippingPrice   float64            `bson:"shipping_price" json:"shippingPrice"`
	TotalPrice      float64            `bson:"total_price" json:"totalPrice"`
	IsPaid          bool               `bson:"is_paid" json:"isPaid"`
	IsDelivered     bool               `bson:"is_delivered" json:"isDelivered"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}
