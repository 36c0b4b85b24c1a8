package domain

import (
	"context"
	"errors"
)

type AddPaymentMethodRequest struct {
	Brand       string
	Last4       string
	ExpMonth    int
	ExpYear     int
	MakeDefault bool
}

type Service interface {
	ListInvoices(context.Context) ([]Invoice, error)
	ListPayments(context.Context) ([]Payment, error)
	ListPaymentMethods(context.Context) ([]PaymentMethod, error)
	AddPaymentMethod(context.Context, AddPaymentMethodRequest) (PaymentMethod, error)
	SetDefaultPaymentMethod(ctx context.Context, id string) (PaymentMethod, error)
	RemovePaymentMethod(ctx context.Context, id string) error
}

var (
	ErrInvalidCard           = errors.New("invalid_card")
	ErrPaymentMethodNotFound = errors.New("payment_method_not_found")
)
