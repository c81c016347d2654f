package usecase

import (
	"math"
	"sort"

	domainErrors "github.com/AlexisMGL/HappyCheese/internal/domain/errors"
	"github.com/AlexisMGL/HappyCheese/internal/domain/model"
)

type consignKey struct {
	clientID int64
	typeID   int64
}

// BuildConsignTotals folds the full movement log into net outstanding
// balances per (client, type) pair. Pairs summing to zero are dropped. This
// is the authoritative computation; the store's incrementally maintained
// cache must always agree with it.
func BuildConsignTotals(movements []model.ConsignMovement) []model.ConsignTotal {
	sums := make(map[consignKey]int64, len(movements))
	for _, m := range movements {
		sums[consignKey{m.ClientID, m.TypeID}] += m.Quantity
	}

	totals := make([]model.ConsignTotal, 0, len(sums))
	for k, q := range sums {
		if q == 0 {
			continue
		}
		totals = append(totals, model.ConsignTotal{ClientID: k.clientID, TypeID: k.typeID, Quantity: q})
	}
	sort.Slice(totals, func(i, j int) bool {
		if totals[i].ClientID != totals[j].ClientID {
			return totals[i].ClientID < totals[j].ClientID
		}
		return totals[i].TypeID < totals[j].TypeID
	})
	return totals
}

// SanitizeConsignItems normalizes the lines of one deposit transaction.
// Entries with a missing type or a non-positive/non-finite quantity are
// dropped, quantities are floored to whole containers, and duplicate types
// are merged by summation in first-occurrence order.
func SanitizeConsignItems(items []model.ConsignItemInput) []model.ConsignItem {
	index := make(map[int64]int, len(items))
	out := make([]model.ConsignItem, 0, len(items))
	for _, it := range items {
		if it.TypeID <= 0 {
			continue
		}
		if math.IsNaN(it.Quantity) || math.IsInf(it.Quantity, 0) {
			continue
		}
		qty := int64(math.Floor(it.Quantity))
		if qty <= 0 {
			continue
		}
		if i, ok := index[it.TypeID]; ok {
			out[i].Quantity += qty
			continue
		}
		index[it.TypeID] = len(out)
		out = append(out, model.ConsignItem{TypeID: it.TypeID, Quantity: qty})
	}
	return out
}

// OutstandingConsigns returns the current net balance for one (client, type)
// pair, zero when the pair is absent.
func OutstandingConsigns(totals []model.ConsignTotal, clientID, typeID int64) int64 {
	for _, t := range totals {
		if t.ClientID == clientID && t.TypeID == typeID {
			return t.Quantity
		}
	}
	return 0
}

// ValidateConsignReturn rejects a return transaction when any line asks back
// more containers than the client currently holds. The whole transaction
// fails; nothing is partially applied.
func ValidateConsignReturn(totals []model.ConsignTotal, clientID int64, items []model.ConsignItem) error {
	for _, it := range items {
		if it.Quantity > OutstandingConsigns(totals, clientID, it.TypeID) {
			return domainErrors.ErrExceedsOutstanding
		}
	}
	return nil
}

// ApplyConsignDelta returns a new totals slice with each sanitized item
// applied as quantity×multiplier for the given client. Pairs reaching zero
// are removed. Negative results are kept as-is: they signal ledger
// inconsistency and must stay visible.
func ApplyConsignDelta(totals []model.ConsignTotal, clientID int64, items []model.ConsignItem, multiplier int64) []model.ConsignTotal {
	next := make([]model.ConsignTotal, len(totals))
	copy(next, totals)

	for _, it := range items {
		delta := it.Quantity * multiplier
		found := false
		for i := range next {
			if next[i].ClientID == clientID && next[i].TypeID == it.TypeID {
				next[i].Quantity += delta
				found = true
				break
			}
		}
		if !found {
			next = append(next, model.ConsignTotal{ClientID: clientID, TypeID: it.TypeID, Quantity: delta})
		}
	}

	filtered := next[:0]
	for _, t := range next {
		if t.Quantity != 0 {
			filtered = append(filtered, t)
		}
	}
	return filtered
}
