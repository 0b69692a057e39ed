package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/WorkNestHQ/job_service/internal/domain"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"github.com/WorkNestHQ/job_service/internal/helper"
	"github.com/WorkNestHQ/job_service/internal/interfaces"
	"github.com/WorkNestHQ/job_service/internal/repository"
	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(jobID uint, caller dto.AuthClaims, input dto.ApplyRequest) (*domain.Application, error)
	GetForJob(jobID, applicantID uint) (*domain.Application, error)
	ListForApplicant(applicantID uint, q dto.ApplicationListQuery) (*dto.ApplicationListResponse, error)
	UpdateStatus(appID uint, caller dto.AuthClaims, input dto.UpdateApplicationStatusRequest) (*domain.Application, error)
}

type applicationService struct {
	repo     repository.ApplicationRepository
	jobRepo  repository.JobRepository
	producer interfaces.ProducerHandler
}

func NewApplicationService(
	repo repository.ApplicationRepository,
	jobRepo repository.JobRepository,
	producer interfaces.ProducerHandler,
) ApplicationService {
	return &applicationService{
		repo:     repo,
		jobRepo:  jobRepo,
		producer: producer,
	}
}

// Apply runs the precondition chain in a fixed order: seeker role, job
// exists, job still active, no prior application. The read-check on the pair
// is advisory; the compound unique index decides the race.
func (s *applicationService) Apply(jobID uint, caller dto.AuthClaims, input dto.ApplyRequest) (*domain.Application, error) {
	if caller.Role != domain.RoleSeeker {
		return nil, ErrSeekerOnly
	}

	job, err := s.jobRepo.FindJobById(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if job.Status != domain.JobStatusActive {
		return nil, ErrJobClosed
	}

	existing, err := s.repo.FindByJobAndApplicant(jobID, caller.UserID)
	if err == nil && existing != nil && existing.ID != 0 {
		return nil, ErrAlreadyApplied
	}

	app := &domain.Application{
		JobID:          jobID,
		ApplicantID:    caller.UserID,
		EmployerID:     job.CompanyID,
		Status:         domain.StatusPending,
		CoverLetter:    strings.TrimSpace(input.CoverLetter),
		ExpectedSalary: input.ExpectedSalary,
		AvailableFrom:  input.AvailableFrom,
		AppliedAt:      time.Now(),
	}

	created, err := s.repo.CreateApplication(app)
	if err != nil {
		if helper.IsDuplicateApplication(err) {
			return nil, ErrAlreadyApplied
		}
		return nil, err
	}
	created.Job = job

	s.publishSubmitted(created, job)

	return created, nil
}

func (s *applicationService) GetForJob(jobID, applicantID uint) (*domain.Application, error) {
	app, err := s.repo.FindByJobAndApplicant(jobID, applicantID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return app, nil
}

func (s *applicationService) ListForApplicant(applicantID uint, q dto.ApplicationListQuery) (*dto.ApplicationListResponse, error) {
	apps, total, err := s.repo.ListByApplicant(applicantID, q)
	if err != nil {
		return nil, err
	}

	page, limit := dto.NormalizePage(q.Page, q.Limit)
	return &dto.ApplicationListResponse{
		Applications: apps,
		Pagination:   dto.NewPagination(page, limit, total),
	}, nil
}

// UpdateStatus lets the owning employer move an application through the
// pipeline and the applicant withdraw it. Every accepted change is appended
// to the status history; history entries are never rewritten.
func (s *applicationService) UpdateStatus(appID uint, caller dto.AuthClaims, input dto.UpdateApplicationStatusRequest) (*domain.Application, error) {
	newStatus, err := domain.ParseApplicationStatus(input.Status)
	if err != nil {
		return nil, ErrBadTransition
	}

	app, err := s.repo.FindApplicationById(appID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}

	switch {
	case caller.UserID == app.EmployerID && newStatus != domain.StatusWithdrawn:
		// employer owns every transition except withdrawal
	case caller.UserID == app.ApplicantID && newStatus == domain.StatusWithdrawn:
		// applicants may only withdraw
	default:
		return nil, ErrNotAllowed
	}

	if !domain.TransitionAllowed(app.Status, newStatus) {
		return nil, ErrBadTransition
	}

	oldStatus := app.Status
	app.Status = newStatus

	change := &domain.StatusChange{
		ApplicationID: app.ID,
		Status:        newStatus,
		ActorID:       caller.UserID,
		Notes:         strings.TrimSpace(input.Notes),
	}
	if err := s.repo.AppendStatusChange(app, change); err != nil {
		return nil, err
	}
	app.StatusHistory = append(app.StatusHistory, *change)

	s.publishStatusChanged(app, oldStatus)

	return app, nil
}

func (s *applicationService) publishSubmitted(app *domain.Application, job *domain.Job) {
	payload, err := json.Marshal(dto.ApplicationSubmittedEvent{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		JobTitle:      job.Title,
		ApplicantID:   app.ApplicantID,
		EmployerID:    app.EmployerID,
	})
	if err != nil {
		return
	}
	key := []byte(fmt.Sprintf("application.submitted:%d", app.ID))
	if err := s.producer.PublishMessage(key, payload); err != nil {
		log.Printf("publish application.submitted error: %v", err)
	}
}

func (s *applicationService) publishStatusChanged(app *domain.Application, oldStatus string) {
	payload, err := json.Marshal(dto.ApplicationStatusChangedEvent{
		ApplicationID: app.ID,
		JobID:         app.JobID,
		ApplicantID:   app.ApplicantID,
		OldStatus:     oldStatus,
		NewStatus:     app.Status,
	})
	if err != nil {
		return
	}
	key := []byte(fmt.Sprintf("application.status_changed:%d", app.ID))
	if err := s.producer.PublishMessage(key, payload); err != nil {
		log.Printf("publish application.status_changed error: %v", err)
	}
}
