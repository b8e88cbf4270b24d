package invoice

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/biztime/internal/apperror"
	"github.com/MrJamesThe3rd/biztime/internal/http/respond"
	"github.com/MrJamesThe3rd/biztime/internal/invoice"
)

type Handler struct {
	svc *invoice.Service
}

func NewHandler(svc *invoice.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Get("/{id}", h.get)
	r.Patch("/{id}", h.update)
	r.Delete("/{id}", h.delete)
}

func invoiceID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, apperror.BadRequest("invalid invoice id")
	}

	return id, nil
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, listEnvelope{Invoices: toResponseList(invoices)})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	inv, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, envelope{Invoice: toDetailResponse(inv)})
}

type createInvoiceRequest struct {
	CompCode string  `json:"comp_code"`
	Amt      float64 `json:"amt"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperror.BadRequest("invalid request body"))
		return
	}

	if req.CompCode == "" {
		respond.Error(w, apperror.BadRequest("comp_code is required"))
		return
	}

	inv, err := h.svc.Create(r.Context(), invoice.CreateParams{
		CompCode: req.CompCode,
		Amt:      req.Amt,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, envelope{Invoice: toResponse(inv)})
}

type updateInvoiceRequest struct {
	Amt  float64 `json:"amt"`
	Paid bool    `json:"paid"`
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	var req updateInvoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperror.BadRequest("invalid request body"))
		return
	}

	inv, err := h.svc.Update(r.Context(), id, invoice.UpdateParams{
		Amt:  req.Amt,
		Paid: req.Paid,
	})
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, envelope{Invoice: toResponse(inv)})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		respond.Error(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, deletedEnvelope{Status: "deleted"})
}
