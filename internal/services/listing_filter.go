package services

import (
	"strconv"
	"strings"

	"worknestBack/internal/models"
)

// FilterJobs returns the jobs satisfying every active criterion of filter,
// preserving input order. Sentinel values ("Any ...", blank text) skip their
// criterion. The input slice is never mutated, so refiltering the same input
// with the same criteria always yields the same output.
func FilterJobs(jobs []models.Job, filter models.JobFilterRequest) []models.Job {
	result := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if jobMatches(job, filter) {
			result = append(result, job)
		}
	}
	return result
}

func jobMatches(job models.Job, filter models.JobFilterRequest) bool {
	if keyword := strings.TrimSpace(filter.Keyword); keyword != "" {
		k := strings.ToLower(keyword)
		if !strings.Contains(strings.ToLower(job.Title), k) &&
			!strings.Contains(strings.ToLower(job.Description), k) &&
			!strings.Contains(strings.ToLower(job.Employer), k) {
			return false
		}
	}

	if location := strings.TrimSpace(filter.Location); location != "" {
		if !strings.Contains(strings.ToLower(job.Location), strings.ToLower(location)) {
			return false
		}
	}

	if filter.Type != "" && filter.Type != models.JobTypeAny && job.Type != filter.Type {
		return false
	}

	if filter.Category != "" && filter.Category != models.JobCategoryAny && job.Category != filter.Category {
		return false
	}

	return true
}

// FilterHomes is the home-listing counterpart of FilterJobs. Rent bounds are
// inclusive and an empty bound is unconstrained; the bedrooms selector accepts
// "any", an exact count, or the "4+" bucket meaning four or more.
func FilterHomes(homes []models.Home, filter models.HomeFilterRequest) []models.Home {
	result := make([]models.Home, 0, len(homes))
	for _, home := range homes {
		if homeMatches(home, filter) {
			result = append(result, home)
		}
	}
	return result
}

func homeMatches(home models.Home, filter models.HomeFilterRequest) bool {
	if location := strings.TrimSpace(filter.Location); location != "" {
		if !strings.Contains(strings.ToLower(home.Address), strings.ToLower(location)) {
			return false
		}
	}

	if filter.PropertyType != "" && filter.PropertyType != models.PropertyTypeAny &&
		home.PropertyType != filter.PropertyType {
		return false
	}

	if !bedroomsMatch(home.Bedrooms, filter.Bedrooms) {
		return false
	}

	if min := strings.TrimSpace(filter.RentMin); min != "" {
		if bound, err := strconv.Atoi(min); err == nil && home.Rent < bound {
			return false
		}
	}
	if max := strings.TrimSpace(filter.RentMax); max != "" {
		if bound, err := strconv.Atoi(max); err == nil && home.Rent > bound {
			return false
		}
	}

	if filter.FoodPreference != "" && filter.FoodPreference != models.FoodPreferenceAny &&
		home.FoodPreference != filter.FoodPreference {
		return false
	}

	if filter.CommunityPreference != "" && filter.CommunityPreference != models.CommunityPreferenceAny &&
		home.CommunityPreference != filter.CommunityPreference {
		return false
	}

	return true
}

func bedroomsMatch(bedrooms int, selector string) bool {
	selector = strings.TrimSpace(selector)
	switch selector {
	case "", models.BedroomsFilterAny:
		return true
	case models.BedroomsFilterFourPlus:
		return bedrooms >= 4
	}

	count, err := strconv.Atoi(selector)
	if err != nil {
		// An unparseable selector constrains nothing.
		return true
	}
	return bedrooms == count
}
