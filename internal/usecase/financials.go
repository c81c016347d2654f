package usecase

import "github.com/AlexisMGL/HappyCheese/internal/domain/model"

// ComputeOrderFinancials derives the money amounts of an order from its line
// entries. Entry quantities are already canonical so no conversion applies.
// The transport fee is flat per distinct line, regardless of quantity.
func ComputeOrderFinancials(order model.Order, feePerLine float64) model.OrderFinancials {
	var productTotal float64
	for _, e := range order.Entries {
		productTotal += e.Quantity * e.UnitPrice
	}
	fee := feePerLine * float64(len(order.Entries))
	return model.OrderFinancials{
		ProductTotal: productTotal,
		TransportFee: fee,
		GrandTotal:   productTotal + fee,
	}
}
