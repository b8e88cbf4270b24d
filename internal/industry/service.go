package industry

import (
	"context"
)

type Repository interface {
	ListIndustries(ctx context.Context) ([]*Industry, error)
	CreateIndustry(ctx context.Context, ind *Industry) error
	CreateAssociation(ctx context.Context, assoc *CompanyIndustry) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]*Industry, error) {
	return s.repo.ListIndustries(ctx)
}

func (s *Service) Create(ctx context.Context, code, name string) (*Industry, error) {
	ind := &Industry{Code: code, Industry: name}
	if err := s.repo.CreateIndustry(ctx, ind); err != nil {
		return nil, err
	}

	return ind, nil
}

// Associate links a company to an industry.
func (s *Service) Associate(ctx context.Context, compCode, indCode string) (*CompanyIndustry, error) {
	assoc := &CompanyIndustry{CompCode: compCode, IndCode: indCode}
	if err := s.repo.CreateAssociation(ctx, assoc); err != nil {
		return nil, err
	}

	return assoc, nil
}
