package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"worknestBack/internal/models"
	"worknestBack/internal/services"
)

type JobHandler struct {
	Service *services.JobService
	T       Localizer
}

// JobDetailResponse carries a single listing plus the caller-dependent
// presentation flags.
type JobDetailResponse struct {
	Job           models.Job `json:"job"`
	CanDelete     bool       `json:"can_delete"`
	ContactPrompt string     `json:"contact_prompt,omitempty"`
}

// GetJobs returns the filtered mirror of the jobs collection.
func (h *JobHandler) GetJobs(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.JobFilterRequest{
		Keyword:  q.Get("keyword"),
		Location: q.Get("location"),
		Type:     models.JobType(q.Get("type")),
		Category: models.JobCategory(q.Get("category")),
	}

	result := h.Service.GetFilteredJobs(filter)
	writeJSON(w, http.StatusOK, result)
}

// GetJobByID resolves a single listing. The contact line is withheld from
// anonymous callers and replaced with a login prompt.
func (h *JobHandler) GetJobByID(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)

	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, h.T, lang, http.StatusBadRequest, "detailsNotFoundJob")
		return
	}

	job, err := h.Service.GetJobByID(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:  h.T.T(lang, "detailsNotFoundJob", nil),
			Key:    "detailsNotFoundJob",
			BackTo: "/jobs",
		})
		return
	}

	identity := identityFromRequest(r)
	resp := JobDetailResponse{Job: job}
	if identity.IsZero() {
		resp.Job.Contact = ""
		resp.ContactPrompt = h.T.T(lang, "jobCardLoginPrompt", nil)
	} else {
		resp.CanDelete = identity.Email == job.UserEmail
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateJob validates the submitted form and writes a new listing stamped
// with the caller's identity.
func (h *JobHandler) CreateJob(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	identity := identityFromRequest(r)

	var req models.CreateJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.T, lang, http.StatusBadRequest, "formErrorInvalidBody")
		return
	}

	if fieldKeys := req.Validate(); len(fieldKeys) > 0 {
		writeFieldErrors(w, h.T, lang, fieldKeys)
		return
	}

	job, err := h.Service.CreateJob(r.Context(), req.ToJob(), identity)
	if err != nil {
		if errors.Is(err, models.ErrUnauthenticated) {
			writeError(w, h.T, lang, http.StatusUnauthorized, "authRequired")
			return
		}
		log.Printf("CreateJob error: %v", err)
		writeError(w, h.T, lang, http.StatusBadGateway, "formSubmitError")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"job":     job,
		"message": h.T.T(lang, "formSuccessJobPosted", nil),
	})
}

// DeleteJob removes a listing owned by the caller.
func (h *JobHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	identity := identityFromRequest(r)

	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, h.T, lang, http.StatusBadRequest, "detailsNotFoundJob")
		return
	}

	job, err := h.Service.GetJobByID(id)
	if err != nil {
		writeError(w, h.T, lang, http.StatusNotFound, "detailsNotFoundJob")
		return
	}
	if job.UserEmail != identity.Email {
		writeError(w, h.T, lang, http.StatusForbidden, "deleteError")
		return
	}

	if err := h.Service.DeleteJob(r.Context(), id, identity); err != nil {
		log.Printf("DeleteJob error: %v", err)
		writeError(w, h.T, lang, http.StatusBadGateway, "deleteError")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.T.T(lang, "deleteSuccess", nil),
	})
}
