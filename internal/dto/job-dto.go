package dto

import (
	"time"

	"github.com/WorkNestHQ/job_service/internal/domain"
)

type SalaryInput struct {
	Min      int64  `json:"min" validate:"min=0"`
	Max      int64  `json:"max" validate:"min=0"`
	Currency string `json:"currency" validate:"omitempty,oneof=USD BDT EUR GBP"`
}

type CreateJobRequest struct {
	Title           string       `json:"title" validate:"required,max=200"`
	Company         string       `json:"company" validate:"required"`
	CompanyID       uint         `json:"companyId" validate:"required"`
	CompanyLogo     string       `json:"companyLogo,omitempty"`
	Location        string       `json:"location" validate:"required"`
	Type            string       `json:"type" validate:"required,oneof=full-time part-time contract internship"`
	Category        string       `json:"category" validate:"required,oneof=skilled non-skilled deferred-hire"`
	Salary          *SalaryInput `json:"salary" validate:"required"`
	IsRemote        bool         `json:"isRemote"`
	ExperienceLevel string       `json:"experienceLevel" validate:"required,oneof=entry mid senior"`
	Description     string       `json:"description" validate:"required,max=5000"`
	Requirements    []string     `json:"requirements,omitempty"`
	Benefits        []string     `json:"benefits,omitempty"`
	Skills          []string     `json:"skills,omitempty"`

	TrainingProvided    bool `json:"trainingProvided"`
	DeferredStartMonths int  `json:"deferredStartMonths,omitempty" validate:"omitempty,min=1,max=24"`

	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// UpdateJobRequest is a partial update; nil fields are left untouched.
type UpdateJobRequest struct {
	Title           *string      `json:"title,omitempty" validate:"omitempty,max=200"`
	Company         *string      `json:"company,omitempty"`
	CompanyLogo     *string      `json:"companyLogo,omitempty"`
	Location        *string      `json:"location,omitempty"`
	Type            *string      `json:"type,omitempty" validate:"omitempty,oneof=full-time part-time contract internship"`
	Category        *string      `json:"category,omitempty" validate:"omitempty,oneof=skilled non-skilled deferred-hire"`
	Salary          *SalaryInput `json:"salary,omitempty"`
	IsRemote        *bool        `json:"isRemote,omitempty"`
	ExperienceLevel *string      `json:"experienceLevel,omitempty" validate:"omitempty,oneof=entry mid senior"`
	Description     *string      `json:"description,omitempty" validate:"omitempty,max=5000"`
	Requirements    *[]string    `json:"requirements,omitempty"`
	Benefits        *[]string    `json:"benefits,omitempty"`
	Skills          *[]string    `json:"skills,omitempty"`

	TrainingProvided    *bool `json:"trainingProvided,omitempty"`
	DeferredStartMonths *int  `json:"deferredStartMonths,omitempty" validate:"omitempty,min=1,max=24"`

	Status    *string    `json:"status,omitempty" validate:"omitempty,oneof=active paused closed"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

const (
	SortNewest     = "newest"
	SortOldest     = "oldest"
	SortSalaryHigh = "salary-high"
	SortSalaryLow  = "salary-low"
)

// JobListQuery is the explicit filter set for the public listing. Empty (or
// "all") fields mean "no filter on that dimension".
type JobListQuery struct {
	Search          string `query:"search"`
	Location        string `query:"location"`
	Type            string `query:"type"`
	Category        string `query:"category"`
	ExperienceLevel string `query:"experienceLevel"`
	SortBy          string `query:"sortBy"`
	Page            int    `query:"page"`
	Limit           int    `query:"limit"`
}

type JobListResponse struct {
	Jobs       []domain.Job `json:"jobs"`
	Pagination Pagination   `json:"pagination"`
}
