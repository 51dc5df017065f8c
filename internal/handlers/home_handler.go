package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/google/uuid"

	"worknestBack/internal/models"
	"worknestBack/internal/services"
)

// ImageUploader pushes listing photos to object storage; satisfied by
// *utils.Storage.
type ImageUploader interface {
	UploadFile(file []byte, fileName, folder, contentType string) (string, error)
}

type HomeHandler struct {
	Service *services.HomeService
	Storage ImageUploader
	T       Localizer
}

type HomeDetailResponse struct {
	Home          models.Home `json:"home"`
	CanDelete     bool        `json:"can_delete"`
	ContactPrompt string      `json:"contact_prompt,omitempty"`
}

// GetHomes returns the filtered mirror of the homes collection.
func (h *HomeHandler) GetHomes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := models.HomeFilterRequest{
		Location:            q.Get("location"),
		PropertyType:        models.PropertyType(q.Get("property_type")),
		Bedrooms:            q.Get("bedrooms"),
		RentMin:             q.Get("rent_min"),
		RentMax:             q.Get("rent_max"),
		FoodPreference:      models.FoodPreference(q.Get("food_preference")),
		CommunityPreference: models.CommunityPreference(q.Get("community_preference")),
	}

	result := h.Service.GetFilteredHomes(filter)
	writeJSON(w, http.StatusOK, result)
}

func (h *HomeHandler) GetHomeByID(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)

	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, h.T, lang, http.StatusBadRequest, "detailsNotFoundHome")
		return
	}

	home, err := h.Service.GetHomeByID(id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error:  h.T.T(lang, "detailsNotFoundHome", nil),
			Key:    "detailsNotFoundHome",
			BackTo: "/homes",
		})
		return
	}

	identity := identityFromRequest(r)
	resp := HomeDetailResponse{Home: home}
	if identity.IsZero() {
		resp.Home.Contact = ""
		resp.ContactPrompt = h.T.T(lang, "homeCardLoginPrompt", nil)
	} else {
		resp.CanDelete = identity.Email == home.UserEmail
	}

	writeJSON(w, http.StatusOK, resp)
}

// CreateHome accepts a multipart form with the listing fields and at least
// five photos. Photos upload sequentially; a single failure aborts the whole
// submission and nothing is persisted.
func (h *HomeHandler) CreateHome(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	identity := identityFromRequest(r)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		writeError(w, h.T, lang, http.StatusBadRequest, "formErrorInvalidBody")
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll()
	}

	form := r.MultipartForm
	files := collectImageFiles(form, "images", "images[]")

	req := models.CreateHomeRequest{
		Title:               r.FormValue("title"),
		Address:             r.FormValue("address"),
		Rent:                r.FormValue("rent"),
		PropertyType:        models.PropertyType(r.FormValue("property_type")),
		Bedrooms:            r.FormValue("bedrooms"),
		Bathrooms:           r.FormValue("bathrooms"),
		AreaSqFt:            r.FormValue("area_sq_ft"),
		FoodPreference:      models.FoodPreference(r.FormValue("food_preference")),
		CommunityPreference: models.CommunityPreference(r.FormValue("community_preference")),
		Description:         r.FormValue("description"),
		Contact:             r.FormValue("contact"),
		ImageCount:          len(files),
	}

	fieldKeys := req.Validate()
	for _, header := range files {
		if header.Size > maxImageBytes {
			fieldKeys["images"] = "formErrorImageTooLarge"
			break
		}
	}
	if len(fieldKeys) > 0 {
		writeFieldErrors(w, h.T, lang, fieldKeys)
		return
	}

	urls := make([]string, 0, len(files))
	folder := "homes/" + identity.UID
	for _, header := range files {
		data, err := readImageFile(header)
		if err != nil {
			if errors.Is(err, models.ErrImageTooLarge) {
				writeFieldErrors(w, h.T, lang, map[string]string{"images": "formErrorImageTooLarge"})
				return
			}
			log.Printf("CreateHome read image %s: %v", header.Filename, err)
			writeError(w, h.T, lang, http.StatusBadRequest, "formErrorInvalidBody")
			return
		}

		fileName := fmt.Sprintf("%s%s", uuid.NewString(), filepath.Ext(header.Filename))
		url, err := h.Storage.UploadFile(data, fileName, folder, imageContentType(header))
		if err != nil {
			log.Printf("CreateHome upload %s: %v", header.Filename, err)
			writeError(w, h.T, lang, http.StatusBadGateway, "uploadError")
			return
		}
		urls = append(urls, url)
	}

	home := req.ToHome()
	home.ImageURLs = urls

	created, err := h.Service.CreateHome(r.Context(), home, identity)
	if err != nil {
		if errors.Is(err, models.ErrUnauthenticated) {
			writeError(w, h.T, lang, http.StatusUnauthorized, "authRequired")
			return
		}
		log.Printf("CreateHome error: %v", err)
		writeError(w, h.T, lang, http.StatusBadGateway, "formSubmitError")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"home":    created,
		"message": h.T.T(lang, "formSuccessHomePosted", nil),
	})
}

func (h *HomeHandler) DeleteHome(w http.ResponseWriter, r *http.Request) {
	lang := requestLang(r)
	identity := identityFromRequest(r)

	id := r.URL.Query().Get(":id")
	if id == "" {
		writeError(w, h.T, lang, http.StatusBadRequest, "detailsNotFoundHome")
		return
	}

	home, err := h.Service.GetHomeByID(id)
	if err != nil {
		writeError(w, h.T, lang, http.StatusNotFound, "detailsNotFoundHome")
		return
	}
	if home.UserEmail != identity.Email {
		writeError(w, h.T, lang, http.StatusForbidden, "deleteError")
		return
	}

	if err := h.Service.DeleteHome(r.Context(), id, identity); err != nil {
		log.Printf("DeleteHome error: %v", err)
		writeError(w, h.T, lang, http.StatusBadGateway, "deleteError")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": h.T.T(lang, "deleteSuccess", nil),
	})
}
