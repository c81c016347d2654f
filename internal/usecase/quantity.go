package usecase

import (
	"fmt"
	"math"

	"github.com/AlexisMGL/HappyCheese/internal/config"
	domainErrors "github.com/AlexisMGL/HappyCheese/internal/domain/errors"
	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

// QuantityRules holds the business constants of display/canonical quantity
// conversion. Weight-based items are entered in kilograms and stored in the
// item's pricing unit, so the kg factor is the weight of one canonical unit.
type QuantityRules struct {
	KgFactors         map[model.QuantityType]float64
	MultipleTolerance float64
}

// DefaultQuantityRules returns the stock dairy configuration.
func DefaultQuantityRules() QuantityRules {
	return QuantityRules{
		KgFactors: map[model.QuantityType]float64{
			model.QuantityPiece:  1,
			model.QuantityKg:     1,
			model.QuantityHecto:  0.1,
			model.QuantityHalfKg: 0.5,
		},
		MultipleTolerance: 1e-4,
	}
}

// QuantityRulesFromConfig assembles the converter configuration from loaded
// constants.
func QuantityRulesFromConfig(c *config.Config) QuantityRules {
	rules := DefaultQuantityRules()
	rules.MultipleTolerance = c.MultipleTolerance
	rules.KgFactors[model.QuantityHecto] = c.KgFactorHecto
	rules.KgFactors[model.QuantityHalfKg] = c.KgFactorHalfKg
	return rules
}

func (r QuantityRules) factor(qt model.QuantityType) float64 {
	return r.KgFactors[qt]
}

// ToUnitQuantity converts a user-entered display quantity to canonical units.
// Pieces pass through unchanged; weight types divide by the kg factor.
func (r QuantityRules) ToUnitQuantity(qt model.QuantityType, display float64) float64 {
	if math.IsNaN(display) || math.IsInf(display, 0) || display == 0 {
		return 0
	}
	if qt == model.QuantityPiece {
		return display
	}
	f := r.factor(qt)
	if f <= 0 {
		return display
	}
	return display / f
}

// ToDisplayQuantity is the inverse of ToUnitQuantity.
func (r QuantityRules) ToDisplayQuantity(qt model.QuantityType, unit float64) float64 {
	if math.IsNaN(unit) || math.IsInf(unit, 0) || unit == 0 {
		return 0
	}
	if qt == model.QuantityPiece {
		return unit
	}
	f := r.factor(qt)
	if f <= 0 {
		return unit
	}
	return unit * f
}

// ValidateMultiple checks the item's multiple-of constraint against a display
// quantity. The check runs in canonical space since the display factor can be
// fractional.
func (r QuantityRules) ValidateMultiple(item model.CheeseItem, display float64) error {
	if item.Multiple == nil || *item.Multiple <= 0 || display == 0 {
		return nil
	}
	unit := r.ToUnitQuantity(item.QuantityType, display)
	ratio := unit / *item.Multiple
	if math.Abs(ratio-math.Round(ratio)) <= r.MultipleTolerance {
		return nil
	}
	return fmt.Errorf("%w: quantity must be a multiple of %g %s",
		domainErrors.ErrInvalidQuantity, *item.Multiple, unitLabel(item.QuantityType))
}

// InputStep returns the UI increment for the item: its own step when positive,
// otherwise the quantity type's default (one canonical unit in kilograms).
func (r QuantityRules) InputStep(item model.CheeseItem) float64 {
	if item.Step != nil && *item.Step > 0 {
		return *item.Step
	}
	if item.QuantityType == model.QuantityPiece {
		return 1
	}
	if f := r.factor(item.QuantityType); f > 0 {
		return f
	}
	return 1
}

func unitLabel(qt model.QuantityType) string {
	switch qt {
	case model.QuantityPiece:
		return "piece(s)"
	default:
		return "kg"
	}
}
