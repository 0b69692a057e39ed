package domain

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	JobStatusActive = "active"
	JobStatusPaused = "paused"
	JobStatusClosed = "closed"
)

const (
	JobTypeFullTime   = "full-time"
	JobTypePartTime   = "part-time"
	JobTypeContract   = "contract"
	JobTypeInternship = "internship"
)

const (
	CategorySkilled      = "skilled"
	CategoryNonSkilled   = "non-skilled"
	CategoryDeferredHire = "deferred-hire"
)

const (
	ExperienceEntry  = "entry"
	ExperienceMid    = "mid"
	ExperienceSenior = "senior"
)

// DefaultJobLifetime is how long a posting stays visible when the employer
// does not supply an explicit expiry.
const DefaultJobLifetime = 30 * 24 * time.Hour

type Salary struct {
	Min      int64  `gorm:"not null" json:"min"`
	Max      int64  `gorm:"not null" json:"max"`
	Currency string `gorm:"type:varchar(10);not null;default:USD" json:"currency"`
}

type Job struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null;index" json:"company"`
	CompanyID   uint   `gorm:"not null;index" json:"companyId"`
	CompanyLogo string `json:"companyLogo,omitempty"`
	Location    string `gorm:"not null;index" json:"location"`

	Type            string `gorm:"type:varchar(20);not null" json:"type"`
	Category        string `gorm:"type:varchar(20);not null;index" json:"category"`
	Salary          Salary `gorm:"embedded;embeddedPrefix:salary_" json:"salary"`
	IsRemote        bool   `gorm:"not null;default:false" json:"isRemote"`
	ExperienceLevel string `gorm:"type:varchar(10);not null" json:"experienceLevel"`

	Description  string         `gorm:"type:text;not null" json:"description"`
	Requirements pq.StringArray `gorm:"type:text[]" json:"requirements,omitempty"`
	Benefits     pq.StringArray `gorm:"type:text[]" json:"benefits,omitempty"`
	Skills       pq.StringArray `gorm:"type:text[]" json:"skills,omitempty"`

	// Category-specific fields: trainingProvided applies to non-skilled
	// postings, deferredStartMonths (1..24) to deferred-hire ones.
	TrainingProvided    bool `gorm:"not null;default:false" json:"trainingProvided"`
	DeferredStartMonths int  `json:"deferredStartMonths,omitempty"`

	Status            string    `gorm:"type:varchar(20);not null;default:active;index:idx_jobs_status_posted" json:"status"`
	ApplicationsCount int64     `gorm:"not null;default:0" json:"applicationsCount"`
	ViewsCount        int64     `gorm:"not null;default:0" json:"viewsCount"`
	PostedAt          time.Time `gorm:"not null;index:idx_jobs_status_posted" json:"postedAt"`
	ExpiresAt         time.Time `gorm:"not null" json:"expiresAt"`
	gorm.Model        `json:"-"`
}

func ValidJobType(t string) bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeInternship:
		return true
	}
	return false
}

func ValidJobCategory(c string) bool {
	switch c {
	case CategorySkilled, CategoryNonSkilled, CategoryDeferredHire:
		return true
	}
	return false
}

func ValidExperienceLevel(l string) bool {
	switch l {
	case ExperienceEntry, ExperienceMid, ExperienceSenior:
		return true
	}
	return false
}

func ValidJobStatus(s string) bool {
	switch s {
	case JobStatusActive, JobStatusPaused, JobStatusClosed:
		return true
	}
	return false
}
