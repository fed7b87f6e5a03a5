package tinkoff

import (
	"fmt"

	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"
)

// itemNameMaxWidth is the widest item name the gateway accepts, measured in
// display columns (a CJK character counts as two).
const itemNameMaxWidth = 64

// minorUnits converts an amount in major currency units to minor units
// (kopecks), rounding halves away from zero: 19.995 becomes 2000.
func minorUnits(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}

// validateInit checks that every required field of the payment and of every
// line item is set. It runs before any conversion or network I/O.
func validateInit(req PaymentRequest, items []LineItem) error {
	switch {
	case req.OrderID == "":
		return &ValidationError{Field: "OrderID"}
	case !req.Amount.Valid:
		return &ValidationError{Field: "Amount"}
	case req.Language == "":
		return &ValidationError{Field: "Language"}
	case req.Description == "":
		return &ValidationError{Field: "Description"}
	case req.Email == "":
		return &ValidationError{Field: "Email"}
	case req.Phone == "":
		return &ValidationError{Field: "Phone"}
	case req.Name == "":
		return &ValidationError{Field: "Name"}
	case req.Taxation == "":
		return &ValidationError{Field: "Taxation"}
	}

	if len(items) == 0 {
		return ErrNoItems
	}
	for i, item := range items {
		switch {
		case item.Name == "":
			return &ValidationError{Field: fmt.Sprintf("Items[%d].Name", i)}
		case !item.Price.Valid:
			return &ValidationError{Field: fmt.Sprintf("Items[%d].Price", i)}
		case item.Quantity == 0:
			return &ValidationError{Field: fmt.Sprintf("Items[%d].Quantity", i)}
		case item.Tax == "":
			return &ValidationError{Field: fmt.Sprintf("Items[%d].Tax", i)}
		}
	}
	return nil
}

// initParams assembles the Init request body from a validated payment and
// its line items. Amounts are converted to minor units here; item names are
// truncated to the gateway's limit. The receipt and customer blocks are
// nested objects and therefore never participate in the request token.
func initParams(req PaymentRequest, items []LineItem) map[string]any {
	receiptItems := make([]map[string]any, 0, len(items))
	for _, item := range items {
		qty := decimal.NewFromInt(item.Quantity)
		receiptItems = append(receiptItems, map[string]any{
			"Name":     runewidth.Truncate(item.Name, itemNameMaxWidth, ""),
			"Price":    minorUnits(item.Price.Decimal),
			"Quantity": item.Quantity,
			"Amount":   minorUnits(item.Price.Decimal.Mul(qty)),
			"Tax":      item.Tax,
		})
	}

	return map[string]any{
		"OrderId":     req.OrderID,
		"Amount":      minorUnits(req.Amount.Decimal),
		"Language":    req.Language,
		"Description": req.Description,
		"DATA": map[string]any{
			"Email": req.Email,
			"Phone": req.Phone,
			"Name":  req.Name,
		},
		"Receipt": map[string]any{
			"Email":    req.Email,
			"Phone":    req.Phone,
			"Taxation": req.Taxation,
			"Items":    receiptItems,
		},
	}
}
