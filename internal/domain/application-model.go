package domain

import (
	"time"

	"gorm.io/gorm"
)

// Application is one seeker's application to one job. The compound unique
// index on (job_id, applicant_id) is what guarantees at most one application
// per pair, even under concurrent submits.
type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	JobID uint `gorm:"not null;uniqueIndex:idx_applications_job_applicant" json:"jobId"`
	Job   *Job `gorm:"foreignKey:JobID" json:"job,omitempty"`

	ApplicantID uint  `gorm:"not null;uniqueIndex:idx_applications_job_applicant" json:"applicantId"`
	Applicant   *User `gorm:"foreignKey:ApplicantID" json:"-"`

	// Denormalized from the job at creation time so employer-side queries
	// never need the join.
	EmployerID uint `gorm:"not null;index" json:"employerId"`

	Status         string         `gorm:"type:varchar(20);not null;default:pending" json:"status"`
	CoverLetter    string         `gorm:"type:text" json:"coverLetter,omitempty"`
	ExpectedSalary *int64         `json:"expectedSalary,omitempty"`
	AvailableFrom  *time.Time     `json:"availableFrom,omitempty"`
	AppliedAt      time.Time      `gorm:"not null;index" json:"appliedAt"`
	StatusHistory  []StatusChange `gorm:"foreignKey:ApplicationID" json:"statusHistory,omitempty"`
	gorm.Model     `json:"-"`
}

// StatusChange is one append-only entry in an application's status history.
type StatusChange struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	ApplicationID uint      `gorm:"not null;index" json:"-"`
	Status        string    `gorm:"type:varchar(20);not null" json:"status"`
	ActorID       uint      `gorm:"not null" json:"actorId"`
	Notes         string    `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}
