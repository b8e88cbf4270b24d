package industry

import "github.com/MrJamesThe3rd/biztime/internal/apperror"

var (
	ErrExists            = apperror.Conflict("industry code already exists")
	ErrCompanyNotFound   = apperror.NotFound("company not found")
	ErrIndustryNotFound  = apperror.NotFound("industry not found")
	ErrAlreadyAssociated = apperror.Conflict("company already associated with industry")
)

// Industry represents an industry category companies can belong to.
type Industry struct {
	Code     string
	Industry string
}

// CompanyIndustry is the association between a company and an industry. It
// has no identity beyond the pair.
type CompanyIndustry struct {
	CompCode string
	IndCode  string
}
