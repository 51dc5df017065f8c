package models

import (
	"strings"
	"time"
)

type JobType string

const (
	JobTypeFullTime  JobType = "Full-time"
	JobTypePartTime  JobType = "Part-time"
	JobTypeContract  JobType = "Contract"
	JobTypeTemporary JobType = "Temporary"
	JobTypeAny       JobType = "Any Type"
)

func (t JobType) Valid() bool {
	switch t {
	case JobTypeFullTime, JobTypePartTime, JobTypeContract, JobTypeTemporary:
		return true
	}
	return false
}

type JobCategory string

const (
	JobCategoryDomesticHelp  JobCategory = "Domestic Help"
	JobCategoryDriver        JobCategory = "Driver"
	JobCategoryCook          JobCategory = "Cook"
	JobCategorySecurityGuard JobCategory = "Security Guard"
	JobCategoryPlumber       JobCategory = "Plumber"
	JobCategoryElectrician   JobCategory = "Electrician"
	JobCategoryCarpenter     JobCategory = "Carpenter"
	JobCategoryTutor         JobCategory = "Tutor"
	JobCategoryShopAssistant JobCategory = "Shop Assistant"
	JobCategoryDelivery      JobCategory = "Delivery Rider"
	JobCategoryFactoryWorker JobCategory = "Factory Worker"
	JobCategoryCleaningStaff JobCategory = "Cleaning Staff"
	JobCategoryOther         JobCategory = "Other"
	JobCategoryAny           JobCategory = "Any Category"
)

func (c JobCategory) Valid() bool {
	switch c {
	case JobCategoryDomesticHelp, JobCategoryDriver, JobCategoryCook,
		JobCategorySecurityGuard, JobCategoryPlumber, JobCategoryElectrician,
		JobCategoryCarpenter, JobCategoryTutor, JobCategoryShopAssistant,
		JobCategoryDelivery, JobCategoryFactoryWorker, JobCategoryCleaningStaff,
		JobCategoryOther:
		return true
	}
	return false
}

// Job is a job listing. The firestore tags mirror the document shape in the
// "jobs" collection; ID carries the document id and is only set on read.
type Job struct {
	ID          string      `json:"id" firestore:"-"`
	Title       string      `json:"title" firestore:"title"`
	Employer    string      `json:"employer" firestore:"employer"`
	Location    string      `json:"location" firestore:"location"`
	Type        JobType     `json:"type" firestore:"type"`
	Category    JobCategory `json:"category" firestore:"category"`
	Description string      `json:"description" firestore:"description"`
	Salary      string      `json:"salary,omitempty" firestore:"salary"`
	Contact     string      `json:"contact,omitempty" firestore:"contact"`
	PostedDate  time.Time   `json:"posted_date" firestore:"postedDate"`
	UserEmail   string      `json:"user_email,omitempty" firestore:"userEmail"`
	UserID      string      `json:"user_id,omitempty" firestore:"userId"`
}

type JobFilterRequest struct {
	Keyword  string      `json:"keyword"`
	Location string      `json:"location"`
	Type     JobType     `json:"type"`
	Category JobCategory `json:"category"`
}

type JobListResponse struct {
	Jobs  []Job `json:"jobs"`
	Total int   `json:"total"`
}

// CreateJobRequest carries a job submission before ownership and posted date
// are stamped.
type CreateJobRequest struct {
	Title       string      `json:"title"`
	Employer    string      `json:"employer"`
	Location    string      `json:"location"`
	Type        JobType     `json:"type"`
	Category    JobCategory `json:"category"`
	Description string      `json:"description"`
	Salary      string      `json:"salary"`
	Contact     string      `json:"contact"`
}

// Validate returns a map of field name to translation key for every failed
// check. An empty map means the submission can be persisted.
func (r CreateJobRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "formErrorRequired"
	}
	if strings.TrimSpace(r.Employer) == "" {
		errs["employer"] = "formErrorRequired"
	}
	if strings.TrimSpace(r.Location) == "" {
		errs["location"] = "formErrorRequired"
	}
	if strings.TrimSpace(r.Description) == "" {
		errs["description"] = "formErrorRequired"
	}
	if strings.TrimSpace(r.Contact) == "" {
		errs["contact"] = "formErrorRequired"
	}
	if !r.Type.Valid() {
		errs["type"] = "formErrorRequired"
	}
	if !r.Category.Valid() {
		errs["category"] = "formErrorRequired"
	}

	return errs
}

func (r CreateJobRequest) ToJob() Job {
	return Job{
		Title:       strings.TrimSpace(r.Title),
		Employer:    strings.TrimSpace(r.Employer),
		Location:    strings.TrimSpace(r.Location),
		Type:        r.Type,
		Category:    r.Category,
		Description: strings.TrimSpace(r.Description),
		Salary:      strings.TrimSpace(r.Salary),
		Contact:     strings.TrimSpace(r.Contact),
	}
}
