package industry

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/biztime/internal/apperror"
	"github.com/MrJamesThe3rd/biztime/internal/http/respond"
	"github.com/MrJamesThe3rd/biztime/internal/industry"
)

type Handler struct {
	svc *industry.Service
}

func NewHandler(svc *industry.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Post("/companies", h.associate)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	industries, err := h.svc.List(r.Context())
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, listEnvelope{Industries: toResponseList(industries)})
}

type createIndustryRequest struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createIndustryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperror.BadRequest("invalid request body"))
		return
	}

	if req.Code == "" || req.Industry == "" {
		respond.Error(w, apperror.BadRequest("code and industry are required"))
		return
	}

	ind, err := h.svc.Create(r.Context(), req.Code, req.Industry)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, envelope{Industry: toResponse(ind)})
}

type associateRequest struct {
	CompCode string `json:"comp_code"`
	IndCode  string `json:"ind_code"`
}

func (h *Handler) associate(w http.ResponseWriter, r *http.Request) {
	var req associateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, apperror.BadRequest("invalid request body"))
		return
	}

	if req.CompCode == "" || req.IndCode == "" {
		respond.Error(w, apperror.BadRequest("comp_code and ind_code are required"))
		return
	}

	assoc, err := h.svc.Associate(r.Context(), req.CompCode, req.IndCode)
	if err != nil {
		respond.Error(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, associationEnvelope{
		CompanyIndustry: associationResponse{
			CompCode: assoc.CompCode,
			IndCode:  assoc.IndCode,
		},
	})
}
