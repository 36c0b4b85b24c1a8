package service

import (
	"context"
	"sort"
	"strings"

	"github.com/hirelane/hirelane/internal/billing/domain"
	"github.com/hirelane/hirelane/internal/clock"
	"github.com/hirelane/hirelane/internal/ident"
	"github.com/hirelane/hirelane/internal/store"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

type Params struct {
	fx.In

	Log   *zap.Logger
	Store *store.Store
	Clock clock.Clock
	GenID *ident.Generator
}

type Service struct {
	log   *zap.Logger
	store *store.Store
	clock clock.Clock
	genID *ident.Generator
}

func New(p Params) domain.Service {
	return &Service{
		log:   p.Log.Named("billing.service"),
		store: p.Store,
		clock: p.Clock,
		genID: p.GenID,
	}
}

func (s *Service) ListInvoices(ctx context.Context) ([]domain.Invoice, error) {
	var invoices []domain.Invoice
	if err := s.store.View(func(st *store.State) error {
		invoices = make([]domain.Invoice, 0, len(st.Invoices))
		for _, inv := range st.Invoices {
			invoices = append(invoices, *inv)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	sort.SliceStable(invoices, func(i, j int) bool {
		return invoices[i].IssuedAt.After(invoices[j].IssuedAt)
	})
	return invoices, nil
}

func (s *Service) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	var payments []domain.Payment
	if err := s.store.View(func(st *store.State) error {
		payments = make([]domain.Payment, 0, len(st.Payments))
		for _, p := range st.Payments {
			payments = append(payments, *p)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].Date.After(payments[j].Date)
	})
	return payments, nil
}

func (s *Service) ListPaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	var methods []domain.PaymentMethod
	if err := s.store.View(func(st *store.State) error {
		methods = make([]domain.PaymentMethod, 0, len(st.PaymentMethods))
		for _, pm := range st.PaymentMethods {
			methods = append(methods, *pm)
		}
		return nil
	}); err != nil {
		return nil, err
	}

	// Default card first, insertion order otherwise.
	sort.SliceStable(methods, func(i, j int) bool {
		return methods[i].IsDefault && !methods[j].IsDefault
	})
	return methods, nil
}

func (s *Service) AddPaymentMethod(ctx context.Context, req domain.AddPaymentMethodRequest) (domain.PaymentMethod, error) {
	brand := strings.TrimSpace(req.Brand)
	last4 := strings.TrimSpace(req.Last4)
	if brand == "" || len(last4) != 4 {
		return domain.PaymentMethod{}, domain.ErrInvalidCard
	}
	if req.ExpMonth < 1 || req.ExpMonth > 12 || req.ExpYear <= 0 {
		return domain.PaymentMethod{}, domain.ErrInvalidCard
	}

	method := &domain.PaymentMethod{
		ID:       s.genID.New("pm"),
		Brand:    brand,
		Last4:    last4,
		ExpMonth: req.ExpMonth,
		ExpYear:  req.ExpYear,
	}

	if err := s.store.Update(func(st *store.State) error {
		st.PaymentMethods = append([]*domain.PaymentMethod{method}, st.PaymentMethods...)
		if req.MakeDefault {
			for _, pm := range st.PaymentMethods {
				pm.IsDefault = pm.ID == method.ID
			}
		}
		return nil
	}); err != nil {
		return domain.PaymentMethod{}, err
	}

	s.log.Info("payment method added",
		zap.String("payment_method_id", method.ID),
		zap.Bool("default", method.IsDefault),
	)
	return *method, nil
}

func (s *Service) SetDefaultPaymentMethod(ctx context.Context, id string) (domain.PaymentMethod, error) {
	var updated domain.PaymentMethod
	if err := s.store.Update(func(st *store.State) error {
		target := st.FindPaymentMethod(id)
		if target == nil {
			return domain.ErrPaymentMethodNotFound
		}
		for _, pm := range st.PaymentMethods {
			pm.IsDefault = pm.ID == id
		}
		updated = *target
		return nil
	}); err != nil {
		return domain.PaymentMethod{}, err
	}

	s.log.Info("default payment method changed", zap.String("payment_method_id", id))
	return updated, nil
}

func (s *Service) RemovePaymentMethod(ctx context.Context, id string) error {
	if err := s.store.Update(func(st *store.State) error {
		idx := -1
		for i, pm := range st.PaymentMethods {
			if pm.ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return domain.ErrPaymentMethodNotFound
		}

		wasDefault := st.PaymentMethods[idx].IsDefault
		st.PaymentMethods = append(st.PaymentMethods[:idx], st.PaymentMethods[idx+1:]...)

		// Removing the default promotes the head of the remaining list so
		// the workspace never ends up without a default card.
		if wasDefault && len(st.PaymentMethods) > 0 {
			st.PaymentMethods[0].IsDefault = true
		}
		return nil
	}); err != nil {
		return err
	}

	s.log.Info("payment method removed", zap.String("payment_method_id", id))
	return nil
}
