package invoice

import (
	"time"

	"github.com/MrJamesThe3rd/biztime/internal/invoice"
)

type listEnvelope struct {
	Invoices []invoiceResponse `json:"invoices"`
}

type envelope struct {
	Invoice any `json:"invoice"`
}

type deletedEnvelope struct {
	Status string `json:"status"`
}

type invoiceResponse struct {
	ID       int64   `json:"id"`
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
	Paid     bool    `json:"paid"`
	AddDate  string  `json:"add_date"`
	PaidDate *string `json:"paid_date"`
}

type invoiceDetailResponse struct {
	ID       int64           `json:"id"`
	Amt      float64         `json:"amt"`
	Paid     bool            `json:"paid"`
	AddDate  string          `json:"add_date"`
	PaidDate *string         `json:"paid_date"`
	Company  companyResponse `json:"company"`
}

type companyResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

func toResponse(inv *invoice.Invoice) invoiceResponse {
	return invoiceResponse{
		ID:       inv.ID,
		CompCode: inv.CompCode,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(time.DateOnly),
		PaidDate: formatDate(inv.PaidDate),
	}
}

func toResponseList(invoices []*invoice.Invoice) []invoiceResponse {
	resp := make([]invoiceResponse, len(invoices))
	for i, inv := range invoices {
		resp[i] = toResponse(inv)
	}

	return resp
}

func toDetailResponse(inv *invoice.Invoice) invoiceDetailResponse {
	resp := invoiceDetailResponse{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate.Format(time.DateOnly),
		PaidDate: formatDate(inv.PaidDate),
	}

	if inv.Company != nil {
		resp.Company = companyResponse{
			Code:        inv.Company.Code,
			Name:        inv.Company.Name,
			Description: inv.Company.Description,
		}
	}

	return resp
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}

	s := t.Format(time.DateOnly)

	return &s
}
