package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"worknestBack/internal/i18n"
	"worknestBack/internal/models"
	"worknestBack/internal/repositories"
	"worknestBack/internal/services"
)

type stubJobStore struct {
	snapshot []models.Job
	created  []models.Job
	deleted  []string
}

func (s *stubJobStore) Subscribe(ctx context.Context, fn func([]models.Job)) *repositories.ListingSubscription {
	fn(s.snapshot)
	return nil
}

func (s *stubJobStore) CreateJob(ctx context.Context, job models.Job, identity models.Identity) (models.Job, error) {
	job.ID = "new-id"
	job.UserID = identity.UID
	job.UserEmail = identity.Email
	s.created = append(s.created, job)
	return job, nil
}

func (s *stubJobStore) DeleteJob(ctx context.Context, id string, identity models.Identity) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func loadTranslator(t *testing.T) *i18n.Resolver {
	t.Helper()
	translator, err := i18n.Load()
	if err != nil {
		t.Fatalf("i18n.Load failed: %v", err)
	}
	return translator
}

func newJobHandler(t *testing.T, store *stubJobStore) *JobHandler {
	t.Helper()
	svc := &services.JobService{JobRepo: store}
	svc.Start(context.Background())
	t.Cleanup(svc.Stop)
	return &JobHandler{Service: svc, T: loadTranslator(t)}
}

func withIdentity(r *http.Request, identity models.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), IdentityContextKey, identity)
	return r.WithContext(ctx)
}

func testJobs() []models.Job {
	return []models.Job{
		{ID: "j1", Title: "Cook Needed", Employer: "Sharma Family", Location: "Hyderabad", Type: models.JobTypeFullTime, Category: models.JobCategoryCook, Description: "Daily meals", Contact: "9876543210", UserID: "owner-1", UserEmail: "owner@example.com"},
		{ID: "j2", Title: "Driver", Employer: "Rao Household", Location: "Warangal", Type: models.JobTypePartTime, Category: models.JobCategoryDriver, Description: "School runs", Contact: "9000000000", UserID: "owner-2"},
	}
}

func TestGetJobsAppliesQueryFilter(t *testing.T) {
	h := newJobHandler(t, &stubJobStore{snapshot: testJobs()})

	req := httptest.NewRequest(http.MethodGet, "/jobs?keyword=cook&location=hyderabad", nil)
	rec := httptest.NewRecorder()
	h.GetJobs(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp models.JobListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Jobs[0].ID != "j1" {
		t.Errorf("filtered response = %+v", resp)
	}
}

func TestGetJobByIDHidesContactFromAnonymous(t *testing.T) {
	h := newJobHandler(t, &stubJobStore{snapshot: testJobs()})

	req := httptest.NewRequest(http.MethodGet, "/jobs/j1?:id=j1", nil)
	rec := httptest.NewRecorder()
	h.GetJobByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp JobDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Job.Contact != "" {
		t.Error("contact leaked to anonymous caller")
	}
	if resp.ContactPrompt == "" {
		t.Error("anonymous caller missing login prompt")
	}
	if resp.CanDelete {
		t.Error("anonymous caller flagged as owner")
	}
}

func TestGetJobByIDOwnerSeesContactAndDelete(t *testing.T) {
	h := newJobHandler(t, &stubJobStore{snapshot: testJobs()})

	req := httptest.NewRequest(http.MethodGet, "/jobs/j1?:id=j1", nil)
	req = withIdentity(req, models.Identity{UID: "owner-1", Email: "owner@example.com"})
	rec := httptest.NewRecorder()
	h.GetJobByID(rec, req)

	var resp JobDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Job.Contact != "9876543210" {
		t.Errorf("owner contact = %q", resp.Job.Contact)
	}
	if !resp.CanDelete {
		t.Error("owner not allowed to delete")
	}
}

func TestGetJobByIDNonOwnerCannotDelete(t *testing.T) {
	h := newJobHandler(t, &stubJobStore{snapshot: testJobs()})

	req := httptest.NewRequest(http.MethodGet, "/jobs/j1?:id=j1", nil)
	req = withIdentity(req, models.Identity{UID: "someone-else", Email: "other@example.com"})
	rec := httptest.NewRecorder()
	h.GetJobByID(rec, req)

	var resp JobDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.CanDelete {
		t.Error("non-owner flagged as owner")
	}
	if resp.Job.Contact == "" {
		t.Error("authenticated caller should still see the contact")
	}
}

func TestGetJobByIDUnknownIDLocalizedNotFound(t *testing.T) {
	h := newJobHandler(t, &stubJobStore{snapshot: testJobs()})

	req := httptest.NewRequest(http.MethodGet, "/jobs/zzz?:id=zzz&lang=hi", nil)
	rec := httptest.NewRecorder()
	h.GetJobByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Key != "detailsNotFoundJob" {
		t.Errorf("key = %q", resp.Key)
	}
	if resp.BackTo != "/jobs" {
		t.Errorf("back_to = %q", resp.BackTo)
	}
	translator := loadTranslator(t)
	if resp.Error != translator.T("hi", "detailsNotFoundJob", nil) {
		t.Errorf("message not localized to hindi: %q", resp.Error)
	}
}

func TestCreateJobValidationFailureWritesNothing(t *testing.T) {
	store := &stubJobStore{}
	h := newJobHandler(t, store)

	body := `{"title":"","employer":"X","location":"Y","type":"Full-time","category":"Cook","description":"d","contact":"1"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	req = withIdentity(req, models.Identity{UID: "u1"})
	rec := httptest.NewRecorder()
	h.CreateJob(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(store.created) != 0 {
		t.Error("invalid submission reached the repository")
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Fields["title"] == "" {
		t.Error("missing per-field error for title")
	}
}

func TestCreateJobStampsOwner(t *testing.T) {
	store := &stubJobStore{}
	h := newJobHandler(t, store)

	body := `{"title":"Cook","employer":"X","location":"Y","type":"Full-time","category":"Cook","description":"d","contact":"123"}`
	req := httptest.NewRequest(http.MethodPost, "/jobs", strings.NewReader(body))
	req = withIdentity(req, models.Identity{UID: "u1", Email: "u1@example.com"})
	rec := httptest.NewRecorder()
	h.CreateJob(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(store.created) != 1 || store.created[0].UserID != "u1" {
		t.Errorf("created = %+v", store.created)
	}
}

func TestDeleteJobOwnerOnly(t *testing.T) {
	store := &stubJobStore{snapshot: testJobs()}
	h := newJobHandler(t, store)

	// Non-owner is refused.
	req := httptest.NewRequest(http.MethodDelete, "/jobs/j1?:id=j1", nil)
	req = withIdentity(req, models.Identity{UID: "intruder", Email: "intruder@example.com"})
	rec := httptest.NewRecorder()
	h.DeleteJob(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner status = %d", rec.Code)
	}
	if len(store.deleted) != 0 {
		t.Error("non-owner delete reached the repository")
	}

	// Owner succeeds.
	req = httptest.NewRequest(http.MethodDelete, "/jobs/j1?:id=j1", nil)
	req = withIdentity(req, models.Identity{UID: "owner-1", Email: "owner@example.com"})
	rec = httptest.NewRecorder()
	h.DeleteJob(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("owner status = %d", rec.Code)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "j1" {
		t.Errorf("deleted = %v", store.deleted)
	}
}
