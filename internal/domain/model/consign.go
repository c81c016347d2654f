package model

import "time"

// ConsignType is a kind of returnable container (crate, jar, churn).
type ConsignType struct {
	ID        int64
	Label     string
	CreatedAt time.Time
}

// ConsignMovement is one signed entry of the deposit ledger: positive quantity
// assigns containers to a client, negative records their return. The log is
// append-only; rows are only ever removed by cascading client/type deletion.
type ConsignMovement struct {
	ID        int64
	ClientID  int64
	TypeID    int64
	Quantity  int64
	Note      *string
	CreatedAt time.Time
}

// ConsignTotal is the net outstanding quantity for one (client, type) pair,
// derived by folding the movement log. Pairs with a net of zero are dropped.
type ConsignTotal struct {
	ClientID int64
	TypeID   int64
	Quantity int64
}

// ConsignItemInput is a caller-supplied (type, quantity) pair of an assign or
// return transaction before sanitizing.
type ConsignItemInput struct {
	TypeID   int64
	Quantity float64
}

// ConsignItem is a sanitized transaction line: whole units, positive quantity,
// unique type within the transaction.
type ConsignItem struct {
	TypeID   int64
	Quantity int64
}
