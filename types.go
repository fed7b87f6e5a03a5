package tinkoff

import "github.com/shopspring/decimal"

// PaymentRequest describes a payment to initiate. All fields are required.
//
// Amount is in major currency units (rubles, not kopecks) and is converted
// to minor units before transmission. It is a NullDecimal so that an
// explicit zero amount can be told apart from an amount that was never set;
// only the latter is a validation failure.
type PaymentRequest struct {
	// OrderID is the merchant-side order identifier.
	OrderID string

	// Amount is the payment total in major currency units.
	Amount decimal.NullDecimal

	// Language is the payment form language code (e.g. "ru", "en").
	Language string

	// Description is the order description shown on the payment form.
	Description string

	// Email is the customer's email address.
	Email string

	// Phone is the customer's phone number.
	Phone string

	// Name is the customer's name.
	Name string

	// Taxation is the merchant's tax scheme identifier (see Taxation* constants).
	Taxation string
}

// LineItem is a single receipt line. All fields are required.
type LineItem struct {
	// Name is the item name. Names wider than 64 display columns are
	// truncated before transmission; the gateway rejects longer ones.
	Name string

	// Price is the unit price in major currency units.
	Price decimal.NullDecimal

	// Quantity is the number of units.
	Quantity int64

	// Tax is the VAT rate identifier for this item (see Tax* constants).
	Tax string
}

// Payment is the gateway's view of a payment, as returned by Init.
// Any field the gateway omitted is left empty.
type Payment struct {
	// ID is the gateway-assigned payment identifier, used for
	// GetState, Confirm and Cancel.
	ID string

	// URL is the payment form URL to redirect the customer to.
	URL string

	// Status is the current payment status (see Status* constants).
	Status string
}

// Tax scheme identifiers accepted in PaymentRequest.Taxation.
const (
	TaxationOSN              = "osn"
	TaxationUSNIncome        = "usn_income"
	TaxationUSNIncomeOutcome = "usn_income_outcome"
	TaxationENVD             = "envd"
	TaxationESN              = "esn"
	TaxationPatent           = "patent"
)

// VAT rate identifiers accepted in LineItem.Tax.
const (
	TaxNone   = "none"
	TaxVAT0   = "vat0"
	TaxVAT10  = "vat10"
	TaxVAT20  = "vat20"
	TaxVAT110 = "vat110"
	TaxVAT120 = "vat120"
)

// Payment statuses reported by the gateway.
const (
	StatusNew             = "NEW"
	StatusFormShowed      = "FORM_SHOWED"
	StatusAuthorizing     = "AUTHORIZING"
	StatusAuthorized      = "AUTHORIZED"
	StatusAuthFail        = "AUTH_FAIL"
	StatusRejected        = "REJECTED"
	StatusConfirmed       = "CONFIRMED"
	StatusRefunding       = "REFUNDING"
	StatusPartialRefunded = "PARTIAL_REFUNDED"
	StatusRefunded        = "REFUNDED"
	StatusCanceled        = "CANCELED"
	StatusDeadlineExpired = "DEADLINE_EXPIRED"
)
