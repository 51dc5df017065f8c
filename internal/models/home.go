package models

import (
	"strconv"
	"strings"
	"time"
)

type PropertyType string

const (
	PropertyTypeApartment        PropertyType = "Apartment"
	PropertyTypeIndependentHouse PropertyType = "Independent House/Villa"
	PropertyTypeRoom             PropertyType = "Room"
	PropertyTypeAny              PropertyType = "Any Type"
)

func (t PropertyType) Valid() bool {
	switch t {
	case PropertyTypeApartment, PropertyTypeIndependentHouse, PropertyTypeRoom:
		return true
	}
	return false
}

type FoodPreference string

const (
	FoodPreferenceVegetarianOnly FoodPreference = "Vegetarian Only"
	FoodPreferenceNonVegAllowed  FoodPreference = "Non-Vegetarian Allowed"
	FoodPreferenceAny            FoodPreference = "Any Preference"
)

func (p FoodPreference) Valid() bool {
	switch p {
	case FoodPreferenceVegetarianOnly, FoodPreferenceNonVegAllowed, FoodPreferenceAny:
		return true
	}
	return false
}

type CommunityPreference string

const (
	CommunityPreferenceOpenToAll CommunityPreference = "Open to All"
	CommunityPreferenceDiscussed CommunityPreference = "Specific Preferences (Discuss with owner)"
	CommunityPreferenceAny       CommunityPreference = "Any Preference"
)

func (p CommunityPreference) Valid() bool {
	switch p {
	case CommunityPreferenceOpenToAll, CommunityPreferenceDiscussed, CommunityPreferenceAny:
		return true
	}
	return false
}

// BedroomsFilterAny and BedroomsFilterFourPlus are the selector sentinels of
// the home search form; every other value is an exact bedroom count.
const (
	BedroomsFilterAny      = "any"
	BedroomsFilterFourPlus = "4+"
)

// Home is a home rental listing. Bedrooms 0 means studio/room. The firestore
// tags mirror the document shape in the "homes" collection.
type Home struct {
	ID                  string              `json:"id" firestore:"-"`
	Title               string              `json:"title" firestore:"title"`
	Address             string              `json:"address" firestore:"address"`
	Rent                int                 `json:"rent" firestore:"rent"`
	PropertyType        PropertyType        `json:"property_type" firestore:"propertyType"`
	Bedrooms            int                 `json:"bedrooms" firestore:"bedrooms"`
	Bathrooms           int                 `json:"bathrooms" firestore:"bathrooms"`
	AreaSqFt            int                 `json:"area_sq_ft,omitempty" firestore:"areaSqFt"`
	Description         string              `json:"description" firestore:"description"`
	FoodPreference      FoodPreference      `json:"food_preference" firestore:"foodPreference"`
	CommunityPreference CommunityPreference `json:"community_preference" firestore:"communityPreference"`
	Contact             string              `json:"contact,omitempty" firestore:"contact"`
	PostedDate          time.Time           `json:"posted_date" firestore:"postedDate"`
	UserEmail           string              `json:"user_email,omitempty" firestore:"userEmail"`
	UserID              string              `json:"user_id,omitempty" firestore:"userId"`
	ImageURLs           []string            `json:"image_urls" firestore:"imageUrls"`
}

type HomeFilterRequest struct {
	Location            string              `json:"location"`
	PropertyType        PropertyType        `json:"property_type"`
	Bedrooms            string              `json:"bedrooms"`
	RentMin             string              `json:"rent_min"`
	RentMax             string              `json:"rent_max"`
	FoodPreference      FoodPreference      `json:"food_preference"`
	CommunityPreference CommunityPreference `json:"community_preference"`
}

type HomeListResponse struct {
	Homes []Home `json:"homes"`
	Total int    `json:"total"`
}

// CreateHomeRequest carries a home submission as read from the posting form.
// Numeric fields stay strings until validation so blank and malformed input
// can be told apart.
type CreateHomeRequest struct {
	Title               string
	Address             string
	Rent                string
	PropertyType        PropertyType
	Bedrooms            string
	Bathrooms           string
	AreaSqFt            string
	Description         string
	FoodPreference      FoodPreference
	CommunityPreference CommunityPreference
	Contact             string
	ImageCount          int
}

// MinHomeImages is the number of attached images a home submission must carry.
const MinHomeImages = 5

func (r CreateHomeRequest) Validate() map[string]string {
	errs := make(map[string]string)

	if strings.TrimSpace(r.Title) == "" {
		errs["title"] = "formErrorRequired"
	}
	if strings.TrimSpace(r.Address) == "" {
		errs["address"] = "formErrorRequired"
	}
	if strings.TrimSpace(r.Description) == "" {
		errs["description"] = "formErrorRequired"
	}
	if strings.TrimSpace(r.Contact) == "" {
		errs["contact"] = "formErrorRequired"
	}

	if strings.TrimSpace(r.Rent) == "" {
		errs["rent"] = "formErrorRequired"
	} else if rent, err := strconv.Atoi(strings.TrimSpace(r.Rent)); err != nil || rent <= 0 {
		errs["rent"] = "formErrorPositiveNumber"
	}

	if bedrooms, err := strconv.Atoi(strings.TrimSpace(r.Bedrooms)); err != nil || bedrooms < 0 {
		errs["bedrooms"] = "formErrorNumber"
	}
	if bathrooms, err := strconv.Atoi(strings.TrimSpace(r.Bathrooms)); err != nil || bathrooms <= 0 {
		errs["bathrooms"] = "formErrorPositiveNumber"
	}

	if area := strings.TrimSpace(r.AreaSqFt); area != "" {
		if n, err := strconv.Atoi(area); err != nil || n < 0 {
			errs["area_sq_ft"] = "formErrorNumber"
		}
	}

	if !r.PropertyType.Valid() {
		errs["property_type"] = "formErrorRequired"
	}
	if !r.FoodPreference.Valid() {
		errs["food_preference"] = "formErrorRequired"
	}
	if !r.CommunityPreference.Valid() {
		errs["community_preference"] = "formErrorRequired"
	}

	if r.ImageCount < MinHomeImages {
		errs["images"] = "formErrorMinImages"
	}

	return errs
}

// ToHome converts a validated request. Callers must run Validate first; the
// numeric conversions here ignore errors the validation already caught.
func (r CreateHomeRequest) ToHome() Home {
	rent, _ := strconv.Atoi(strings.TrimSpace(r.Rent))
	bedrooms, _ := strconv.Atoi(strings.TrimSpace(r.Bedrooms))
	bathrooms, _ := strconv.Atoi(strings.TrimSpace(r.Bathrooms))
	area := 0
	if s := strings.TrimSpace(r.AreaSqFt); s != "" {
		area, _ = strconv.Atoi(s)
	}

	return Home{
		Title:               strings.TrimSpace(r.Title),
		Address:             strings.TrimSpace(r.Address),
		Rent:                rent,
		PropertyType:        r.PropertyType,
		Bedrooms:            bedrooms,
		Bathrooms:           bathrooms,
		AreaSqFt:            area,
		Description:         strings.TrimSpace(r.Description),
		FoodPreference:      r.FoodPreference,
		CommunityPreference: r.CommunityPreference,
		Contact:             strings.TrimSpace(r.Contact),
	}
}
