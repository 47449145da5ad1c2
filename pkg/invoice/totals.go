package invoice

import (
	"fitcoach-backend/domain"
	"fitcoach-backend/entities"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// buildItems parses the request lines and computes each line amount rounded
// to two places.
func buildItems(invoiceID uuid.UUID, req []domain.InvoiceItemRequest) ([]*entities.InvoiceItem, error) {
	if len(req) == 0 {
		return nil, domain.ErrInvoiceNoItems
	}
	items := make([]*entities.InvoiceItem, 0, len(req))
	for i, line := range req {
		quantity, err := decimal.NewFromString(line.Quantity)
		if err != nil || !quantity.IsPositive() {
			return nil, domain.ErrInvalidAmount
		}
		unitPrice, err := decimal.NewFromString(line.UnitPrice)
		if err != nil || unitPrice.IsNegative() {
			return nil, domain.ErrInvalidAmount
		}
		items = append(items, &entities.InvoiceItem{
			ID:          uuid.New(),
			InvoiceID:   invoiceID,
			Description: line.Description,
			Quantity:    quantity.Round(2),
			UnitPrice:   unitPrice.Round(2),
			Amount:      quantity.Mul(unitPrice).Round(2),
			Position:    i,
		})
	}
	return items, nil
}

// applyTotals sets subtotal, VAT amount and total from the items.
func applyTotals(invoice *entities.Invoice, items []*entities.InvoiceItem) {
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.Amount)
	}
	invoice.Subtotal = subtotal
	invoice.VATAmount = subtotal.Mul(invoice.VATPercent).Div(hundred).Round(2)
	invoice.Total = subtotal.Add(invoice.VATAmount)
}

func parsePercent(raw string, fallback decimal.Decimal) (decimal.Decimal, error) {
	if raw == "" {
		return fallback, nil
	}
	pct, err := decimal.NewFromString(raw)
	if err != nil || pct.IsNegative() || pct.GreaterThan(hundred) {
		return decimal.Zero, domain.ErrInvalidPercent
	}
	return pct, nil
}

var statusTransitions = map[string][]string{
	domain.InvoiceStatusDraft:     {domain.InvoiceStatusSent, domain.InvoiceStatusCancelled},
	domain.InvoiceStatusSent:      {domain.InvoiceStatusPaid, domain.InvoiceStatusCancelled, domain.InvoiceStatusDraft},
	domain.InvoiceStatusPaid:      {domain.InvoiceStatusSent},
	domain.InvoiceStatusCancelled: {domain.InvoiceStatusDraft},
}

func canTransition(from, to string) bool {
	if from == to {
		return true
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
