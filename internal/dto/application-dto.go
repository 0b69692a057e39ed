package dto

import (
	"time"

	"github.com/WorkNestHQ/job_service/internal/domain"
)

type ApplyRequest struct {
	CoverLetter    string     `json:"coverLetter,omitempty" validate:"omitempty,max=2000"`
	ExpectedSalary *int64     `json:"expectedSalary,omitempty" validate:"omitempty,min=0"`
	AvailableFrom  *time.Time `json:"availableFrom,omitempty"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required"`
	Notes  string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

const (
	AppSortNewest  = "newest"
	AppSortOldest  = "oldest"
	AppSortStatus  = "status"
	AppSortCompany = "company"
)

type ApplicationListQuery struct {
	Status string `query:"status"`
	Search string `query:"search"`
	Sort   string `query:"sort"`
	Page   int    `query:"page"`
	Limit  int    `query:"limit"`
}

type ApplicationListResponse struct {
	Applications []domain.Application `json:"applications"`
	Pagination   Pagination           `json:"pagination"`
}
