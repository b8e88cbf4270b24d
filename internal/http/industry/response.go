package industry

import "github.com/MrJamesThe3rd/biztime/internal/industry"

type listEnvelope struct {
	Industries []industryResponse `json:"industries"`
}

type envelope struct {
	Industry industryResponse `json:"industry"`
}

type associationEnvelope struct {
	CompanyIndustry associationResponse `json:"company_industry"`
}

type industryResponse struct {
	Code     string `json:"code"`
	Industry string `json:"industry"`
}

type associationResponse struct {
	CompCode string `json:"comp_code"`
	IndCode  string `json:"ind_code"`
}

func toResponse(ind *industry.Industry) industryResponse {
	return industryResponse{
		Code:     ind.Code,
		Industry: ind.Industry,
	}
}

func toResponseList(industries []*industry.Industry) []industryResponse {
	resp := make([]industryResponse, len(industries))
	for i, ind := range industries {
		resp[i] = toResponse(ind)
	}

	return resp
}
