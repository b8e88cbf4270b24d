package invoice

import (
	"context"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	ListInvoices(ctx context.Context) ([]*Invoice, error)
	GetInvoice(ctx context.Context, id int64) (*Invoice, error)
	CreateInvoice(ctx context.Context, inv *Invoice) error
	UpdateInvoice(ctx context.Context, inv *Invoice) error
	DeleteInvoice(ctx context.Context, id int64) error
}

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

type CreateParams struct {
	CompCode string
	Amt      float64
}

type UpdateParams struct {
	Amt  float64
	Paid bool
}

func (s *Service) List(ctx context.Context) ([]*Invoice, error) {
	return s.repo.ListInvoices(ctx)
}

// Get returns the invoice joined with its owning company summary.
func (s *Service) Get(ctx context.Context, id int64) (*Invoice, error) {
	return s.repo.GetInvoice(ctx, id)
}

// Create inserts an unpaid invoice dated today.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Invoice, error) {
	inv := &Invoice{
		CompCode: params.CompCode,
		Amt:      params.Amt,
	}
	if err := s.repo.CreateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

// Update overwrites the amount and applies the payment state transition:
// paying an unpaid invoice stamps paid_date with today, re-sending paid=true
// for an already-paid invoice leaves paid_date untouched, and paid=false
// always clears it.
func (s *Service) Update(ctx context.Context, id int64, params UpdateParams) (*Invoice, error) {
	inv, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}

	inv.Amt = params.Amt

	switch {
	case params.Paid && inv.Paid:
		// Already paid, keep the original paid_date.
	case params.Paid:
		today := dateOf(s.now())
		inv.PaidDate = &today
	default:
		inv.PaidDate = nil
	}

	inv.Paid = params.Paid

	if err := s.repo.UpdateInvoice(ctx, inv); err != nil {
		return nil, err
	}

	return inv, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.DeleteInvoice(ctx, id)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
