package repository

import (
	"time"

	"github.com/WorkNestHQ/job_service/internal/domain"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"gorm.io/gorm"
)

type JobRepository interface {
	CreateJob(job *domain.Job) (*domain.Job, error)
	FindJobById(jobID uint) (*domain.Job, error)
	// FindOwnedJob resolves a job only when it belongs to employerID.
	// A miss and a not-owned job are indistinguishable to the caller.
	FindOwnedJob(jobID, employerID uint) (*domain.Job, error)
	SaveJob(job *domain.Job) error
	DeleteOwnedJob(jobID, employerID uint) error
	IncrementViews(jobID uint) error
	ListJobs(q dto.JobListQuery) ([]domain.Job, int64, error)
}

type jobRepository struct {
	db *gorm.DB
}

func NewJobRepository(db *gorm.DB) JobRepository {
	return &jobRepository{db: db}
}

func (r *jobRepository) CreateJob(job *domain.Job) (*domain.Job, error) {
	if err := r.db.Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) FindJobById(jobID uint) (*domain.Job, error) {
	job := &domain.Job{}
	if err := r.db.First(job, jobID).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) FindOwnedJob(jobID, employerID uint) (*domain.Job, error) {
	job := &domain.Job{}
	if err := r.db.Where("id = ? AND company_id = ?", jobID, employerID).First(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (r *jobRepository) SaveJob(job *domain.Job) error {
	return r.db.Save(job).Error
}

func (r *jobRepository) DeleteOwnedJob(jobID, employerID uint) error {
	res := r.db.Where("id = ? AND company_id = ?", jobID, employerID).Delete(&domain.Job{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *jobRepository) IncrementViews(jobID uint) error {
	return r.db.Model(&domain.Job{}).
		Where("id = ?", jobID).
		UpdateColumn("views_count", gorm.Expr("views_count + 1")).Error
}

func (r *jobRepository) ListJobs(q dto.JobListQuery) ([]domain.Job, int64, error) {
	page, limit := dto.NormalizePage(q.Page, q.Limit)

	now := time.Now()

	var total int64
	if err := applyJobFilters(r.db.Model(&domain.Job{}), q, now).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobs []domain.Job
	err := applyJobFilters(r.db.Model(&domain.Job{}), q, now).
		Order(jobSortClause(q.SortBy)).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&jobs).Error
	if err != nil {
		return nil, 0, err
	}

	return jobs, total, nil
}

// applyJobFilters folds only the populated filter dimensions onto the query.
// Listings are always restricted to live postings: active status and an
// expiry still in the future.
func applyJobFilters(tx *gorm.DB, q dto.JobListQuery, now time.Time) *gorm.DB {
	tx = tx.Where("status = ?", domain.JobStatusActive).
		Where("expires_at > ?", now)

	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where(
			"title ILIKE ? OR company ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern,
		)
	}
	if q.Location != "" {
		tx = tx.Where("location ILIKE ?", "%"+q.Location+"%")
	}
	if q.Type != "" && q.Type != "all" {
		tx = tx.Where("type = ?", q.Type)
	}
	if q.Category != "" && q.Category != "all" {
		tx = tx.Where("category = ?", q.Category)
	}
	if q.ExperienceLevel != "" && q.ExperienceLevel != "all" {
		tx = tx.Where("experience_level = ?", q.ExperienceLevel)
	}

	return tx
}

// jobSortClause maps a sort key to its ORDER BY clause. The id tie-break
// keeps pages stable when the primary key compares equal.
func jobSortClause(sortBy string) string {
	switch sortBy {
	case dto.SortOldest:
		return "posted_at ASC, id ASC"
	case dto.SortSalaryHigh:
		return "salary_max DESC, id ASC"
	case dto.SortSalaryLow:
		return "salary_min ASC, id ASC"
	default: // newest
		return "posted_at DESC, id ASC"
	}
}
