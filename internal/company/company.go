package company

import (
	"time"

	"github.com/MrJamesThe3rd/biztime/internal/apperror"
)

var (
	ErrNotFound = apperror.NotFound("company not found")
	ErrExists   = apperror.Conflict("company code already exists")
)

// Company represents a company identified by a short code.
type Company struct {
	Code        string
	Name        string
	Description *string
	Invoices    []*Invoice // Loaded on Get
	Industries  []string   // Industry display names, loaded on Get
}

// Invoice is an invoice row belonging to a company.
type Invoice struct {
	ID       int64
	CompCode string
	Amt      float64
	Paid     bool
	AddDate  time.Time
	PaidDate *time.Time
}
