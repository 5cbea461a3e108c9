package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"go-job-board/internal/model"
)

// JobStore is the subset of the job repository the CRUD flows need.
type JobStore interface {
	Insert(ctx context.Context, j model.JobEntry) error
	FindByID(ctx context.Context, id string) (model.JobEntry, error)
	List(ctx context.Context, employmentType string) ([]model.JobEntry, error)
	ListByOwner(ctx context.Context, ownerID string) ([]model.JobEntry, error)
	Update(ctx context.Context, id string, fields model.UpdateJobRequest) (model.JobEntry, error)
	Delete(ctx context.Context, id string) error
}

type JobService struct {
	jobs JobStore

	// enforceUpdateOwnership gates the owner check on update. The original
	// service allowed any authenticated user to update any entry; delete has
	// always been owner-only.
	enforceUpdateOwnership bool
}

func NewJobService(jobs JobStore, enforceUpdateOwnership bool) *JobService {
	return &JobService{jobs: jobs, enforceUpdateOwnership: enforceUpdateOwnership}
}

// Create stores a new entry owned by the acting identity. The owner is taken
// from the verified claims, never from the request body.
func (s *JobService) Create(ctx context.Context, ownerID string, req model.CreateJobRequest) (model.JobEntry, error) {
	now := time.Now().UTC()

	postedDate := req.PostedDate
	if postedDate.IsZero() {
		postedDate = now
	}

	job := model.JobEntry{
		ID:             uuid.NewString(),
		Title:          req.Title,
		Company:        req.Company,
		Location:       req.Location,
		Description:    req.Description,
		EmploymentType: req.EmploymentType,
		PostedDate:     postedDate,
		ApplyLink:      req.ApplyLink,
		PostedBy:       ownerID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.jobs.Insert(ctx, job); err != nil {
		return model.JobEntry{}, err
	}
	return job, nil
}

// List returns entries matching the employment-type filter. An empty value
// or the "All" sentinel returns every entry.
func (s *JobService) List(ctx context.Context, employmentType string) ([]model.JobEntry, error) {
	if employmentType == model.EmploymentTypeAll {
		employmentType = ""
	}
	return s.jobs.List(ctx, employmentType)
}

func (s *JobService) Get(ctx context.Context, id string) (model.JobEntry, error) {
	return s.jobs.FindByID(ctx, id)
}

func (s *JobService) ListByOwner(ctx context.Context, ownerID string) ([]model.JobEntry, error) {
	return s.jobs.ListByOwner(ctx, ownerID)
}

// Update overwrites the allow-listed fields of an entry. postedBy and
// postedDate are not updatable through any payload.
func (s *JobService) Update(ctx context.Context, actorID string, id string, req model.UpdateJobRequest) (model.JobEntry, error) {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return model.JobEntry{}, err
	}

	if s.enforceUpdateOwnership && job.PostedBy != actorID {
		return model.JobEntry{}, model.ErrNotOwner
	}

	return s.jobs.Update(ctx, id, req)
}

// Delete removes an entry after checking the acting identity against the
// recorded owner. A second delete of the same id reports not-found.
func (s *JobService) Delete(ctx context.Context, actorID string, id string) error {
	job, err := s.jobs.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if job.PostedBy != actorID {
		return model.ErrNotOwner
	}

	return s.jobs.Delete(ctx, id)
}
