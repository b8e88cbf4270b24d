package company

import (
	"time"

	"github.com/MrJamesThe3rd/biztime/internal/company"
)

type listEnvelope struct {
	Companies []companyResponse `json:"companies"`
}

type envelope struct {
	Company any `json:"company"`
}

type deletedEnvelope struct {
	Status string `json:"status"`
}

type companyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

type companyDetailResponse struct {
	Code        string            `json:"code"`
	Name        string            `json:"name"`
	Description *string           `json:"description"`
	Invoices    []invoiceResponse `json:"invoices"`
	Industries  []string          `json:"industries"`
}

type invoiceResponse struct {
	ID       int64   `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

func toResponse(c *company.Company) companyResponse {
	return companyResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
	}
}

func toResponseList(companies []*company.Company) []companyResponse {
	resp := make([]companyResponse, len(companies))
	for i, c := range companies {
		resp[i] = toResponse(c)
	}

	return resp
}

func toDetailResponse(c *company.Company) companyDetailResponse {
	invoices := make([]invoiceResponse, len(c.Invoices))
	for i, inv := range c.Invoices {
		invoices[i] = invoiceResponse{
			ID:       inv.ID,
			CompCode: inv.CompCode,
			Amt:      inv.Amt,
			Paid:     inv.Paid,
			AddDate:  inv.AddDate.Format(time.DateOnly),
			PaidDate: formatDate(inv.PaidDate),
		}
	}

	industries := c.Industries
	if industries == nil {
		industries = []string{}
	}

	return companyDetailResponse{
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		Invoices:    invoices,
		Industries:  industries,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(time.DateOnly)

	return &s
}
