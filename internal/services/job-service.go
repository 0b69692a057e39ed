package services

import (
	"errors"
	"time"

	"github.com/WorkNestHQ/job_service/internal/domain"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"github.com/WorkNestHQ/job_service/internal/repository"
	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(input dto.CreateJobRequest) (*domain.Job, error)
	GetJob(jobID uint) (*domain.Job, error)
	UpdateJob(jobID, employerID uint, input dto.UpdateJobRequest) (*domain.Job, error)
	DeleteJob(jobID, employerID uint) error
	ListJobs(q dto.JobListQuery) (*dto.JobListResponse, error)
}

type jobService struct {
	repo repository.JobRepository
}

func NewJobService(repo repository.JobRepository) JobService {
	return &jobService{repo: repo}
}

func (s *jobService) CreateJob(input dto.CreateJobRequest) (*domain.Job, error) {
	now := time.Now()

	job := &domain.Job{
		Title:       input.Title,
		Company:     input.Company,
		CompanyID:   input.CompanyID,
		CompanyLogo: input.CompanyLogo,
		Location:    input.Location,
		Type:        input.Type,
		Category:    input.Category,
		Salary: domain.Salary{
			Min:      input.Salary.Min,
			Max:      input.Salary.Max,
			Currency: input.Salary.Currency,
		},
		IsRemote:            input.IsRemote,
		ExperienceLevel:     input.ExperienceLevel,
		Description:         input.Description,
		Requirements:        input.Requirements,
		Benefits:            input.Benefits,
		Skills:              input.Skills,
		TrainingProvided:    input.Category == domain.CategoryNonSkilled && input.TrainingProvided,
		DeferredStartMonths: 0,
		Status:              domain.JobStatusActive,
		ApplicationsCount:   0,
		ViewsCount:          0,
		PostedAt:            now,
		ExpiresAt:           now.Add(domain.DefaultJobLifetime),
	}

	if input.Category == domain.CategoryDeferredHire {
		job.DeferredStartMonths = input.DeferredStartMonths
	}
	if job.Salary.Currency == "" {
		job.Salary.Currency = "USD"
	}
	if input.ExpiresAt != nil {
		job.ExpiresAt = *input.ExpiresAt
	}

	return s.repo.CreateJob(job)
}

// GetJob returns the posting and bumps its view counter. The increment is
// unthrottled: every detail fetch counts, including repeats from one client.
func (s *jobService) GetJob(jobID uint) (*domain.Job, error) {
	job, err := s.repo.FindJobById(jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	if err := s.repo.IncrementViews(jobID); err != nil {
		return nil, err
	}
	job.ViewsCount++

	return job, nil
}

func (s *jobService) UpdateJob(jobID, employerID uint, input dto.UpdateJobRequest) (*domain.Job, error) {
	job, err := s.repo.FindOwnedJob(jobID, employerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}

	applyJobUpdate(job, input)

	if err := s.repo.SaveJob(job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) DeleteJob(jobID, employerID uint) error {
	err := s.repo.DeleteOwnedJob(jobID, employerID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrJobNotFound
	}
	return err
}

func (s *jobService) ListJobs(q dto.JobListQuery) (*dto.JobListResponse, error) {
	jobs, total, err := s.repo.ListJobs(q)
	if err != nil {
		return nil, err
	}

	page, limit := dto.NormalizePage(q.Page, q.Limit)
	return &dto.JobListResponse{
		Jobs:       jobs,
		Pagination: dto.NewPagination(page, limit, total),
	}, nil
}

func applyJobUpdate(job *domain.Job, input dto.UpdateJobRequest) {
	if input.Title != nil {
		job.Title = *input.Title
	}
	if input.Company != nil {
		job.Company = *input.Company
	}
	if input.CompanyLogo != nil {
		job.CompanyLogo = *input.CompanyLogo
	}
	if input.Location != nil {
		job.Location = *input.Location
	}
	if input.Type != nil {
		job.Type = *input.Type
	}
	if input.Category != nil {
		job.Category = *input.Category
	}
	if input.Salary != nil {
		job.Salary = domain.Salary{
			Min:      input.Salary.Min,
			Max:      input.Salary.Max,
			Currency: input.Salary.Currency,
		}
		if job.Salary.Currency == "" {
			job.Salary.Currency = "USD"
		}
	}
	if input.IsRemote != nil {
		job.IsRemote = *input.IsRemote
	}
	if input.ExperienceLevel != nil {
		job.ExperienceLevel = *input.ExperienceLevel
	}
	if input.Description != nil {
		job.Description = *input.Description
	}
	if input.Requirements != nil {
		job.Requirements = *input.Requirements
	}
	if input.Benefits != nil {
		job.Benefits = *input.Benefits
	}
	if input.Skills != nil {
		job.Skills = *input.Skills
	}
	if input.TrainingProvided != nil {
		job.TrainingProvided = *input.TrainingProvided
	}
	if input.DeferredStartMonths != nil {
		job.DeferredStartMonths = *input.DeferredStartMonths
	}
	if input.Status != nil {
		job.Status = *input.Status
	}
	if input.ExpiresAt != nil {
		job.ExpiresAt = *input.ExpiresAt
	}
}
