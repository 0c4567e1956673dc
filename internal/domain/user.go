package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultCountry is forced onto every stored address. Shipping outside
// of it is not supported, so callers cannot set or change the field.
const DefaultCountry = "India"

// OrderStatus enumerates the lifecycle states of an order. Orders are
// created as StatusPlaced; no endpoint in this service transitions them.
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "Placed"
	StatusShipped   OrderStatus = "Shipped"
	StatusDelivered OrderStatus = "Delivered"
	StatusCancelled OrderStatus = "Cancelled"
)

// ValidStatus reports whether s is a known order status.
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusPlaced, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// User is one registered account. Wishlist, cart, addresses and orders
// live embedded in the user document; they have no existence outside it.
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Email       string             `bson:"email" json:"email"`
	PhoneNumber string             `bson:"phoneNumber" json:"phoneNumber"`
	Wishlist    []string           `bson:"wishlist" json:"wishlist"`
	Cart        []CartItem         `bson:"cart" json:"cart"`
	Addresses   []Address          `bson:"addresses" json:"addresses"`
	Orders      []Order            `bson:"orders" json:"orders"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// CartItem is one line of a cart. A cart holds at most one line per bookId.
type CartItem struct {
	BookID   string `bson:"bookId" json:"bookId"`
	Quantity int    `bson:"quantity" json:"quantity"`
}

// Address is a saved shipping address. ID is assigned on insert.
type Address struct {
	ID          string `bson:"_id,omitempty" json:"_id,omitempty"`
	HouseNumber string `bson:"houseNumber" json:"houseNumber"`
	Street      string `bson:"street" json:"street"`
	City        string `bson:"city" json:"city"`
	State       string `bson:"state" json:"state"`
	Pincode     string `bson:"pincode" json:"pincode"`
	Country     string `bson:"country" json:"country"`
}

// OrderItem is a priced line inside a placed order.
type OrderItem struct {
	BookID   string  `bson:"bookId" json:"bookId"`
	Quantity int     `bson:"quantity" json:"quantity"`
	Price    float64 `bson:"price" json:"price"`
}

// Order snapshots a purchase at the time it was placed. The address is a
// denormalized copy; later edits to the saved address do not touch it.
type Order struct {
	ID          string      `bson:"_id" json:"_id"`
	Items       []OrderItem `bson:"items" json:"items"`
	TotalItems  int         `bson:"totalItems" json:"totalItems"`
	TotalAmount float64     `bson:"totalAmount" json:"totalAmount"`
	Date        time.Time   `bson:"date" json:"date"`
	Status      OrderStatus `bson:"status" json:"status"`
	Address     Address     `bson:"address" json:"address"`
}
