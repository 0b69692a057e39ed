package services

import (
	"sort"
	"strings"
	"time"

	"github.com/WorkNestHQ/job_service/internal/domain"
	"github.com/WorkNestHQ/job_service/internal/dto"
	"gorm.io/gorm"
)

// In-memory repositories mirroring the storage contract: gorm.ErrRecordNotFound
// on misses, compound uniqueness on (job, applicant), counter moves only with
// a successful insert.

type fakeUserRepo struct {
	nextID uint
	users  map[uint]*domain.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{nextID: 1, users: map[uint]*domain.User{}}
}

func (r *fakeUserRepo) CreateUser(user *domain.User) (*domain.User, error) {
	user.ID = r.nextID
	r.nextID++
	cp := *user
	r.users[user.ID] = &cp
	return user, nil
}

func (r *fakeUserRepo) FindUserByEmail(email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) FindUserById(userID uint) (*domain.User, error) {
	u, ok := r.users[userID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) SaveUser(user *domain.User) error {
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

type fakeJobRepo struct {
	nextID uint
	jobs   map[uint]*domain.Job
}

func newFakeJobRepo() *fakeJobRepo {
	return &fakeJobRepo{nextID: 1, jobs: map[uint]*domain.Job{}}
}

func (r *fakeJobRepo) CreateJob(job *domain.Job) (*domain.Job, error) {
	job.ID = r.nextID
	r.nextID++
	cp := *job
	r.jobs[job.ID] = &cp
	return job, nil
}

func (r *fakeJobRepo) FindJobById(jobID uint) (*domain.Job, error) {
	j, ok := r.jobs[jobID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) FindOwnedJob(jobID, employerID uint) (*domain.Job, error) {
	j, ok := r.jobs[jobID]
	if !ok || j.CompanyID != employerID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *j
	return &cp, nil
}

func (r *fakeJobRepo) SaveJob(job *domain.Job) error {
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *fakeJobRepo) DeleteOwnedJob(jobID, employerID uint) error {
	j, ok := r.jobs[jobID]
	if !ok || j.CompanyID != employerID {
		return gorm.ErrRecordNotFound
	}
	delete(r.jobs, jobID)
	return nil
}

func (r *fakeJobRepo) IncrementViews(jobID uint) error {
	j, ok := r.jobs[jobID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	j.ViewsCount++
	return nil
}

func (r *fakeJobRepo) ListJobs(q dto.JobListQuery) ([]domain.Job, int64, error) {
	now := time.Now()
	var matched []domain.Job
	for _, j := range r.jobs {
		if j.Status != domain.JobStatusActive || !j.ExpiresAt.After(now) {
			continue
		}
		if q.Search != "" {
			s := strings.ToLower(q.Search)
			if !strings.Contains(strings.ToLower(j.Title), s) &&
				!strings.Contains(strings.ToLower(j.Company), s) &&
				!strings.Contains(strings.ToLower(j.Description), s) {
				continue
			}
		}
		if q.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(q.Location)) {
			continue
		}
		if q.Type != "" && q.Type != "all" && j.Type != q.Type {
			continue
		}
		if q.Category != "" && q.Category != "all" && j.Category != q.Category {
			continue
		}
		if q.ExperienceLevel != "" && q.ExperienceLevel != "all" && j.ExperienceLevel != q.ExperienceLevel {
			continue
		}
		matched = append(matched, *j)
	}

	sort.Slice(matched, func(a, b int) bool {
		if q.SortBy == dto.SortOldest {
			if !matched[a].PostedAt.Equal(matched[b].PostedAt) {
				return matched[a].PostedAt.Before(matched[b].PostedAt)
			}
		} else {
			if !matched[a].PostedAt.Equal(matched[b].PostedAt) {
				return matched[a].PostedAt.After(matched[b].PostedAt)
			}
		}
		return matched[a].ID < matched[b].ID
	})

	total := int64(len(matched))
	page, limit := dto.NormalizePage(q.Page, q.Limit)
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

type appKey struct {
	jobID       uint
	applicantID uint
}

type fakeApplicationRepo struct {
	nextID  uint
	apps    map[uint]*domain.Application
	byPair  map[appKey]uint
	jobRepo *fakeJobRepo
}

func newFakeApplicationRepo(jobs *fakeJobRepo) *fakeApplicationRepo {
	return &fakeApplicationRepo{
		nextID:  1,
		apps:    map[uint]*domain.Application{},
		byPair:  map[appKey]uint{},
		jobRepo: jobs,
	}
}

// duplicatePairError stands in for the pgconn unique-violation; the service
// detects it through its pre-insert read, so tests never need a real PgError.
func (r *fakeApplicationRepo) CreateApplication(app *domain.Application) (*domain.Application, error) {
	key := appKey{jobID: app.JobID, applicantID: app.ApplicantID}
	if _, dup := r.byPair[key]; dup {
		return nil, gorm.ErrDuplicatedKey
	}

	app.ID = r.nextID
	r.nextID++
	app.StatusHistory = append(app.StatusHistory, domain.StatusChange{
		ApplicationID: app.ID,
		Status:        app.Status,
		ActorID:       app.ApplicantID,
	})

	cp := *app
	r.apps[app.ID] = &cp
	r.byPair[key] = app.ID

	if j, ok := r.jobRepo.jobs[app.JobID]; ok {
		j.ApplicationsCount++
	}
	return app, nil
}

func (r *fakeApplicationRepo) FindByJobAndApplicant(jobID, applicantID uint) (*domain.Application, error) {
	id, ok := r.byPair[appKey{jobID: jobID, applicantID: applicantID}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *r.apps[id]
	return &cp, nil
}

func (r *fakeApplicationRepo) FindApplicationById(appID uint) (*domain.Application, error) {
	a, ok := r.apps[appID]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeApplicationRepo) AppendStatusChange(app *domain.Application, change *domain.StatusChange) error {
	stored, ok := r.apps[app.ID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	stored.Status = app.Status
	stored.StatusHistory = append(stored.StatusHistory, *change)
	return nil
}

func (r *fakeApplicationRepo) ListByApplicant(applicantID uint, q dto.ApplicationListQuery) ([]domain.Application, int64, error) {
	var matched []domain.Application
	for _, a := range r.apps {
		if a.ApplicantID != applicantID {
			continue
		}
		if q.Status != "" && q.Status != "all" && a.Status != q.Status {
			continue
		}
		cp := *a
		if j, ok := r.jobRepo.jobs[a.JobID]; ok {
			jc := *j
			cp.Job = &jc
		}
		// Search matches the joined job's title or company, same columns
		// the SQL listing filters on.
		if q.Search != "" {
			s := strings.ToLower(q.Search)
			if cp.Job == nil ||
				(!strings.Contains(strings.ToLower(cp.Job.Title), s) &&
					!strings.Contains(strings.ToLower(cp.Job.Company), s)) {
				continue
			}
		}
		matched = append(matched, cp)
	}

	sort.Slice(matched, func(a, b int) bool {
		if q.Sort == dto.AppSortOldest {
			if !matched[a].AppliedAt.Equal(matched[b].AppliedAt) {
				return matched[a].AppliedAt.Before(matched[b].AppliedAt)
			}
		} else {
			if !matched[a].AppliedAt.Equal(matched[b].AppliedAt) {
				return matched[a].AppliedAt.After(matched[b].AppliedAt)
			}
		}
		return matched[a].ID < matched[b].ID
	})

	total := int64(len(matched))
	page, limit := dto.NormalizePage(q.Page, q.Limit)
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

type fakeProducer struct {
	published [][]byte
	keys      []string
}

func (p *fakeProducer) PublishMessage(key, value []byte) error {
	p.keys = append(p.keys, string(key))
	p.published = append(p.published, value)
	return nil
}
