package repositories

import (
	"context"
	"log"
	"time"

	"cloud.google.com/go/firestore"

	"worknestBack/internal/models"
)

const jobsCollection = "jobs"

// JobRepository bridges the service layer and the "jobs" Firestore collection.
// It holds no durable state of its own; the in-memory view lives with the
// subscriber.
type JobRepository struct {
	Client   *firestore.Client
	ErrorLog *log.Logger
}

// Subscribe establishes a live feed over the collection ordered by posted date
// descending. fn receives the complete, freshly materialized set on every
// upstream change.
func (r *JobRepository) Subscribe(ctx context.Context, fn func([]models.Job)) *ListingSubscription {
	query := r.Client.Collection(jobsCollection).Query.OrderBy("postedDate", firestore.Desc)
	return watchCollection(ctx, r.ErrorLog, query, materializeJob, fn)
}

func materializeJob(doc *firestore.DocumentSnapshot) (models.Job, error) {
	var job models.Job
	if err := doc.DataTo(&job); err != nil {
		return models.Job{}, err
	}
	job.ID = doc.Ref.ID
	return job, nil
}

// CreateJob stamps ownership and posted date onto the record and persists it.
// The caller's in-memory collection updates via the subscription's next
// emission, not here.
func (r *JobRepository) CreateJob(ctx context.Context, job models.Job, identity models.Identity) (models.Job, error) {
	if identity.IsZero() {
		return models.Job{}, models.ErrUnauthenticated
	}

	job.PostedDate = time.Now().UTC()
	job.UserEmail = identity.Email
	job.UserID = identity.UID

	ref, _, err := r.Client.Collection(jobsCollection).Add(ctx, job)
	if err != nil {
		return models.Job{}, err
	}

	job.ID = ref.ID
	return job, nil
}

// DeleteJob issues the delete without verifying ownership; the collection's
// access policy enforces that. Absence of identity is still rejected here.
func (r *JobRepository) DeleteJob(ctx context.Context, id string, identity models.Identity) error {
	if identity.IsZero() {
		return models.ErrUnauthenticated
	}

	_, err := r.Client.Collection(jobsCollection).Doc(id).Delete(ctx)
	return err
}
