package model

import "time"

// OrderStatus describes the delivery/payment lifecycle of an order.
type OrderStatus string

const (
	OrderStatusNew             OrderStatus = "new"
	OrderStatusInProgress      OrderStatus = "in_progress"
	OrderStatusDeliveredUnpaid OrderStatus = "delivered_unpaid"
	OrderStatusDeliveredPaid   OrderStatus = "delivered_paid"
	OrderStatusUndeliveredPaid OrderStatus = "undelivered_paid"
)

// IsValid reports whether the status is one of the known lifecycle values.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusNew, OrderStatusInProgress, OrderStatusDeliveredUnpaid,
		OrderStatusDeliveredPaid, OrderStatusUndeliveredPaid:
		return true
	}
	return false
}

// Deletable reports whether an order in this status may still be removed.
func (s OrderStatus) Deletable() bool {
	return s == OrderStatusNew || s == OrderStatusInProgress
}

// Order is a customer order with its line entries. Entries are immutable once
// the order exists; status is the only mutable field.
type Order struct {
	ID           int64
	CustomerName string
	Contact      string
	Notes        string
	ClientID     *int64
	Status       OrderStatus
	CreatedAt    time.Time
	Entries      []OrderEntry
}

// OrderEntry is one order line. Name, quantity type and unit price are copied
// from the catalog item at order time so the entry stays historically accurate
// after catalog edits. Quantity is in canonical units.
type OrderEntry struct {
	ID           int64
	OrderID      int64
	ItemID       int64
	Name         string
	QuantityType QuantityType
	UnitPrice    float64
	Quantity     float64
	Comment      string
}

// OrderFinancials aggregates the derived money amounts of one order.
type OrderFinancials struct {
	ProductTotal float64
	TransportFee float64
	GrandTotal   float64
}
