package domain

import "time"

type InvoiceStatus string

const (
	InvoiceOpen    InvoiceStatus = "open"
	InvoicePaid    InvoiceStatus = "paid"
	InvoicePastDue InvoiceStatus = "past_due"
)

// Invoice amounts are integer cents.
type Invoice struct {
	ID       string        `json:"id"`
	Number   string        `json:"number"`
	Amount   int64         `json:"amount"`
	Status   InvoiceStatus `json:"status"`
	IssuedAt time.Time     `json:"issued_at"`
	DueAt    time.Time     `json:"due_at"`
	PaidAt   *time.Time    `json:"paid_at,omitempty"`
}

type PaymentStatus string

const (
	PaymentSucceeded PaymentStatus = "succeeded"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type Payment struct {
	ID            string        `json:"id"`
	Amount        int64         `json:"amount"`
	Date          time.Time     `json:"date"`
	MethodBrand   string        `json:"method_brand"`
	MethodLast4   string        `json:"method_last4"`
	Status        PaymentStatus `json:"status"`
	InvoiceID     string        `json:"invoice_id,omitempty"`
	InvoiceNumber string        `json:"invoice_number,omitempty"`
}

// PaymentMethod is a stored card stub; no provider integration exists. At
// most one method is the default, maintained by the billing service.
type PaymentMethod struct {
	ID        string `json:"id"`
	Brand     string `json:"brand"`
	Last4     string `json:"last4"`
	ExpMonth  int    `json:"exp_month"`
	ExpYear   int    `json:"exp_year"`
	IsDefault bool   `json:"is_default"`
}
