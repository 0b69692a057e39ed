package repository

import (
	"github.com/WorkNestHQ/job_service/internal/domain"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"gorm.io/gorm"
)

type ApplicationRepository interface {
	// CreateApplication inserts the application, seeds its status history and
	// bumps the job's applications counter in one transaction. The compound
	// unique index makes a concurrent duplicate fail the whole transaction,
	// so the counter never moves for a losing insert.
	CreateApplication(app *domain.Application) (*domain.Application, error)
	FindByJobAndApplicant(jobID, applicantID uint) (*domain.Application, error)
	FindApplicationById(appID uint) (*domain.Application, error)
	AppendStatusChange(app *domain.Application, change *domain.StatusChange) error
	ListByApplicant(applicantID uint, q dto.ApplicationListQuery) ([]domain.Application, int64, error)
}

type applicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

func (r *applicationRepository) CreateApplication(app *domain.Application) (*domain.Application, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(app).Error; err != nil {
			return err
		}

		seed := &domain.StatusChange{
			ApplicationID: app.ID,
			Status:        app.Status,
			ActorID:       app.ApplicantID,
		}
		if err := tx.Create(seed).Error; err != nil {
			return err
		}
		app.StatusHistory = append(app.StatusHistory, *seed)

		return tx.Model(&domain.Job{}).
			Where("id = ?", app.JobID).
			UpdateColumn("applications_count", gorm.Expr("applications_count + 1")).Error
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) FindByJobAndApplicant(jobID, applicantID uint) (*domain.Application, error) {
	app := &domain.Application{}
	err := r.db.Preload("Job").
		Where("job_id = ? AND applicant_id = ?", jobID, applicantID).
		First(app).Error
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (r *applicationRepository) FindApplicationById(appID uint) (*domain.Application, error) {
	app := &domain.Application{}
	err := r.db.Preload("Job").
		Preload("StatusHistory", func(db *gorm.DB) *gorm.DB {
			return db.Order("status_changes.created_at ASC, status_changes.id ASC")
		}).
		First(app, appID).Error
	if err != nil {
		return nil, err
	}
	return app, nil
}

// AppendStatusChange persists a new application status together with its
// history entry. History rows are append-only; the current status is the
// only column that gets overwritten.
func (r *applicationRepository) AppendStatusChange(app *domain.Application, change *domain.StatusChange) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.Application{}).
			Where("id = ?", app.ID).
			Update("status", app.Status).Error; err != nil {
			return err
		}
		return tx.Create(change).Error
	})
}

func (r *applicationRepository) ListByApplicant(applicantID uint, q dto.ApplicationListQuery) ([]domain.Application, int64, error) {
	page, limit := dto.NormalizePage(q.Page, q.Limit)

	var total int64
	if err := r.applicantQuery(applicantID, q).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var apps []domain.Application
	err := r.applicantQuery(applicantID, q).
		Preload("Job").
		Order(applicationSortClause(q.Sort)).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&apps).Error
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

func (r *applicationRepository) applicantQuery(applicantID uint, q dto.ApplicationListQuery) *gorm.DB {
	tx := r.db.Model(&domain.Application{}).
		Joins("JOIN jobs ON jobs.id = applications.job_id").
		Where("applications.applicant_id = ?", applicantID)

	if q.Status != "" && q.Status != "all" {
		tx = tx.Where("applications.status = ?", q.Status)
	}
	if q.Search != "" {
		pattern := "%" + q.Search + "%"
		tx = tx.Where("jobs.title ILIKE ? OR jobs.company ILIKE ?", pattern, pattern)
	}

	return tx
}

func applicationSortClause(sort string) string {
	switch sort {
	case dto.AppSortOldest:
		return "applications.applied_at ASC, applications.id ASC"
	case dto.AppSortStatus:
		return "applications.status ASC, applications.applied_at DESC, applications.id ASC"
	case dto.AppSortCompany:
		return "jobs.company ASC, applications.id ASC"
	default: // newest
		return "applications.applied_at DESC, applications.id ASC"
	}
}
