package invoice

import (
	"time"

	"github.com/MrJamesThe3rd/biztime/internal/apperror"
)

var (
	ErrNotFound        = apperror.NotFound("invoice not found")
	ErrCompanyNotFound = apperror.NotFound("company not found")
)

// Invoice represents a billing invoice owned by a company.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      float64
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time // Non-nil iff Paid
	Company  *Company   // Loaded on Get
}

// Company is the owning company summary attached to a fetched invoice.
type Company struct {
	Code        string
	Name        string
	Description *string
}
