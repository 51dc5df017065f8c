package services

import (
	"context"
	"sync"

	"worknestBack/internal/models"
	"worknestBack/internal/repositories"
)

// JobStore is the slice of the repository layer the job service needs.
type JobStore interface {
	Subscribe(ctx context.Context, fn func([]models.Job)) *repositories.ListingSubscription
	CreateJob(ctx context.Context, job models.Job, identity models.Identity) (models.Job, error)
	DeleteJob(ctx context.Context, id string, identity models.Identity) error
}

// JobService owns the in-memory mirror of the jobs collection. The mirror is
// replaced wholesale on every feed emission and only read under the lock, so
// two callers never see a half-updated view.
type JobService struct {
	JobRepo JobStore

	// OnChange, when set, is notified with the new mirror size after each
	// replacement.
	OnChange func(total int)

	mu   sync.RWMutex
	jobs []models.Job
	sub  *repositories.ListingSubscription
}

// Start attaches the live subscription. The mirror stays empty until the
// first emission arrives.
func (s *JobService) Start(ctx context.Context) {
	s.sub = s.JobRepo.Subscribe(ctx, s.replaceAll)
}

// Stop detaches the subscription; the last mirror stays readable.
func (s *JobService) Stop() {
	if s.sub != nil {
		s.sub.Stop()
	}
}

func (s *JobService) replaceAll(jobs []models.Job) {
	s.mu.Lock()
	s.jobs = jobs
	total := len(jobs)
	s.mu.Unlock()

	if s.OnChange != nil {
		s.OnChange(total)
	}
}

// GetFilteredJobs runs the filter engine over the current mirror.
func (s *JobService) GetFilteredJobs(filter models.JobFilterRequest) models.JobListResponse {
	s.mu.RLock()
	jobs := s.jobs
	s.mu.RUnlock()

	matched := FilterJobs(jobs, filter)
	return models.JobListResponse{Jobs: matched, Total: len(matched)}
}

// GetJobByID resolves a single listing from the mirror. An id absent from the
// current view reports models.ErrJobNotFound.
func (s *JobService) GetJobByID(id string) (models.Job, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, job := range s.jobs {
		if job.ID == id {
			return job, nil
		}
	}
	return models.Job{}, models.ErrJobNotFound
}

func (s *JobService) CreateJob(ctx context.Context, job models.Job, identity models.Identity) (models.Job, error) {
	return s.JobRepo.CreateJob(ctx, job, identity)
}

func (s *JobService) DeleteJob(ctx context.Context, id string, identity models.Identity) error {
	return s.JobRepo.DeleteJob(ctx, id, identity)
}
