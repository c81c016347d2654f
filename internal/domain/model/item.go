package model

import "time"

// QuantityType describes how a catalog item is quantified and priced.
type QuantityType string

const (
	QuantityPiece   QuantityType = "piece"
	QuantityKg      QuantityType = "kg"
	QuantityHecto   QuantityType = "100g"
	QuantityHalfKg  QuantityType = "500g"
)

// CheeseItem is a catalog product. Price applies to one canonical unit of the
// item's quantity type. Multiple and Step are optional per-item overrides.
type CheeseItem struct {
	ID             int64
	Name           string
	Price          float64
	QuantityType   QuantityType
	Multiple       *float64
	Step           *float64
	CommentEnabled bool
	CreatedAt      time.Time
}
