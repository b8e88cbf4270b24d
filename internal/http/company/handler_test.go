package company_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/biztime/internal/company"
	companyHandler "github.com/MrJamesThe3rd/biztime/internal/http/company"
)

// Mock Repository
type mockRepo struct {
	listCompaniesFunc func(ctx context.Context) ([]*company.Company, error)
	getCompanyFunc    func(ctx context.Context, code string) (*company.Company, error)
	createCompanyFunc func(ctx context.Context, c *company.Company) error
	updateCompanyFunc func(ctx context.Context, c *company.Company) error
	deleteCompanyFunc func(ctx context.Context, code string) error
}

func (m *mockRepo) ListCompanies(ctx context.Context) ([]*company.Company, error) {
	if m.listCompaniesFunc != nil {
		return m.listCompaniesFunc(ctx)
	}

	return nil, nil
}

func (m *mockRepo) GetCompany(ctx context.Context, code string) (*company.Company, error) {
	if m.getCompanyFunc != nil {
		return m.getCompanyFunc(ctx, code)
	}

	return nil, company.ErrNotFound
}

func (m *mockRepo) CreateCompany(ctx context.Context, c *company.Company) error {
	if m.createCompanyFunc != nil {
		return m.createCompanyFunc(ctx, c)
	}

	return nil
}

func (m *mockRepo) UpdateCompany(ctx context.Context, c *company.Company) error {
	if m.updateCompanyFunc != nil {
		return m.updateCompanyFunc(ctx, c)
	}

	return nil
}

func (m *mockRepo) DeleteCompany(ctx context.Context, code string) error {
	if m.deleteCompanyFunc != nil {
		return m.deleteCompanyFunc(ctx, code)
	}

	return nil
}

func newRouter(repo company.Repository) http.Handler {
	router := chi.NewRouter()
	companyHandler.NewHandler(company.NewService(repo)).Routes(router)

	return router
}

func TestHandler_List(t *testing.T) {
	desc := "Great movies"
	router := newRouter(&mockRepo{
		listCompaniesFunc: func(ctx context.Context) ([]*company.Company, error) {
			return []*company.Company{
				{Code: "hbo", Name: "hbo", Description: &desc},
				{Code: "ibm", Name: "IBM"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"companies": [
		{"code":"hbo","name":"hbo","description":"Great movies"},
		{"code":"ibm","name":"IBM","description":null}
	]}`, rec.Body.String())
}

func TestHandler_Get(t *testing.T) {
	router := newRouter(&mockRepo{
		getCompanyFunc: func(ctx context.Context, code string) (*company.Company, error) {
			require.Equal(t, "hbo", code)
			return &company.Company{
				Code:       "hbo",
				Name:       "hbo",
				Invoices:   []*company.Invoice{},
				Industries: []string{"Media"},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/hbo", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"company": {
		"code":"hbo","name":"hbo","description":null,
		"invoices":[],"industries":["Media"]
	}}`, rec.Body.String())
}

func TestHandler_Get_NotFound(t *testing.T) {
	router := newRouter(&mockRepo{})

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"error":{"message":"company not found","status":404}}`, rec.Body.String())
}

func TestHandler_Create(t *testing.T) {
	router := newRouter(&mockRepo{})

	body := `{"code":"hbo","name":"hbo","description":"Great movies"}`
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"company":{"code":"hbo","name":"hbo","description":"Great movies"}}`, rec.Body.String())
}

func TestHandler_Create_MissingFields(t *testing.T) {
	router := newRouter(&mockRepo{})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"description":"no code"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var body struct {
		Error struct {
			Status int `json:"status"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusBadRequest, body.Error.Status)
}

func TestHandler_Create_Duplicate(t *testing.T) {
	router := newRouter(&mockRepo{
		createCompanyFunc: func(ctx context.Context, c *company.Company) error {
			return company.ErrExists
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"code":"hbo","name":"hbo"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestHandler_Update(t *testing.T) {
	router := newRouter(&mockRepo{})

	req := httptest.NewRequest(http.MethodPatch, "/hbo", strings.NewReader(`{"name":"HBO Max","description":"Streaming"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"company":{"code":"hbo","name":"HBO Max","description":"Streaming"}}`, rec.Body.String())
}

func TestHandler_Update_NotFound(t *testing.T) {
	router := newRouter(&mockRepo{
		updateCompanyFunc: func(ctx context.Context, c *company.Company) error {
			return company.ErrNotFound
		},
	})

	req := httptest.NewRequest(http.MethodPatch, "/nope", strings.NewReader(`{"name":"x"}`))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_Delete(t *testing.T) {
	deleted := map[string]bool{}
	router := newRouter(&mockRepo{
		deleteCompanyFunc: func(ctx context.Context, code string) error {
			if deleted[code] {
				return company.ErrNotFound
			}
			deleted[code] = true
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodDelete, "/hbo", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, rec.Body.String())

	// Deleting again is a 404, never a 200.
	req = httptest.NewRequest(http.MethodDelete, "/hbo", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
