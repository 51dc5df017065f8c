package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"worknestBack/internal/models"
	"worknestBack/internal/repositories"
	"worknestBack/internal/services"
)

type stubHomeStore struct {
	snapshot []models.Home
	created  []models.Home
	deleted  []string
}

func (s *stubHomeStore) Subscribe(ctx context.Context, fn func([]models.Home)) *repositories.ListingSubscription {
	fn(s.snapshot)
	return nil
}

func (s *stubHomeStore) CreateHome(ctx context.Context, home models.Home, identity models.Identity) (models.Home, error) {
	home.ID = "new-home"
	home.UserID = identity.UID
	s.created = append(s.created, home)
	return home, nil
}

func (s *stubHomeStore) DeleteHome(ctx context.Context, id string, identity models.Identity) error {
	s.deleted = append(s.deleted, id)
	return nil
}

type stubUploader struct {
	uploads []string
	fail    error
}

func (u *stubUploader) UploadFile(file []byte, fileName, folder, contentType string) (string, error) {
	if u.fail != nil {
		return "", u.fail
	}
	url := "https://cdn.example.com/" + folder + "/" + fileName
	u.uploads = append(u.uploads, url)
	return url, nil
}

func newHomeHandler(t *testing.T, store *stubHomeStore, uploader *stubUploader) *HomeHandler {
	t.Helper()
	svc := &services.HomeService{HomeRepo: store}
	svc.Start(context.Background())
	t.Cleanup(svc.Stop)
	return &HomeHandler{Service: svc, Storage: uploader, T: loadTranslator(t)}
}

// homeForm builds a multipart submission with the given number of images.
func homeForm(t *testing.T, images int) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := map[string]string{
		"title":                "2BHK near metro",
		"address":              "Ameerpet, Hyderabad",
		"rent":                 "20000",
		"property_type":        "Apartment",
		"bedrooms":             "2",
		"bathrooms":            "1",
		"area_sq_ft":           "900",
		"food_preference":      "Vegetarian Only",
		"community_preference": "Open to All",
		"description":          "Close to the metro",
		"contact":              "9876543210",
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatalf("WriteField %s: %v", k, err)
		}
	}

	for i := 0; i < images; i++ {
		part, err := w.CreateFormFile("images", fmt.Sprintf("photo%d.jpg", i))
		if err != nil {
			t.Fatalf("CreateFormFile: %v", err)
		}
		if _, err := part.Write([]byte("jpegdata")); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, w.FormDataContentType()
}

func TestCreateHomeRejectsFewerThanFiveImages(t *testing.T) {
	store := &stubHomeStore{}
	uploader := &stubUploader{}
	h := newHomeHandler(t, store, uploader)

	body, contentType := homeForm(t, 4)
	req := httptest.NewRequest(http.MethodPost, "/homes", body)
	req.Header.Set("Content-Type", contentType)
	req = withIdentity(req, models.Identity{UID: "u1"})
	rec := httptest.NewRecorder()
	h.CreateHome(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(uploader.uploads) != 0 {
		t.Error("images uploaded despite failed validation")
	}
	if len(store.created) != 0 {
		t.Error("listing persisted despite failed validation")
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	translator := loadTranslator(t)
	if resp.Fields["images"] != translator.T("en", "formErrorMinImages", nil) {
		t.Errorf("images error = %q", resp.Fields["images"])
	}
}

func TestCreateHomeUploadsThenPersists(t *testing.T) {
	store := &stubHomeStore{}
	uploader := &stubUploader{}
	h := newHomeHandler(t, store, uploader)

	body, contentType := homeForm(t, 5)
	req := httptest.NewRequest(http.MethodPost, "/homes", body)
	req.Header.Set("Content-Type", contentType)
	req = withIdentity(req, models.Identity{UID: "u1", Email: "u1@example.com"})
	rec := httptest.NewRecorder()
	h.CreateHome(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}
	if len(uploader.uploads) != 5 {
		t.Fatalf("uploads = %d, want 5", len(uploader.uploads))
	}
	if len(store.created) != 1 {
		t.Fatalf("persisted listings = %d", len(store.created))
	}

	created := store.created[0]
	if len(created.ImageURLs) != 5 {
		t.Errorf("image urls = %d, want 5", len(created.ImageURLs))
	}
	if created.Rent != 20000 || created.Bedrooms != 2 {
		t.Errorf("numeric fields lost: %+v", created)
	}
	if created.PropertyType != models.PropertyTypeApartment {
		t.Errorf("property type = %q", created.PropertyType)
	}
	if created.FoodPreference != models.FoodPreferenceVegetarianOnly {
		t.Errorf("food preference = %q", created.FoodPreference)
	}
	if created.CommunityPreference != models.CommunityPreferenceOpenToAll {
		t.Errorf("community preference = %q", created.CommunityPreference)
	}
}

func TestCreateHomeUploadFailureAborts(t *testing.T) {
	store := &stubHomeStore{}
	uploader := &stubUploader{fail: errors.New("bucket unavailable")}
	h := newHomeHandler(t, store, uploader)

	body, contentType := homeForm(t, 5)
	req := httptest.NewRequest(http.MethodPost, "/homes", body)
	req.Header.Set("Content-Type", contentType)
	req = withIdentity(req, models.Identity{UID: "u1"})
	rec := httptest.NewRecorder()
	h.CreateHome(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d", rec.Code)
	}
	if len(store.created) != 0 {
		t.Error("listing persisted despite upload failure")
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Key != "uploadError" {
		t.Errorf("key = %q", resp.Key)
	}
}

func TestGetHomesRentFilterFromQuery(t *testing.T) {
	store := &stubHomeStore{snapshot: []models.Home{
		{ID: "h1", Address: "Hyderabad", Rent: 20000, PropertyType: models.PropertyTypeApartment, Bedrooms: 2},
		{ID: "h2", Address: "Hyderabad", Rent: 55000, PropertyType: models.PropertyTypeIndependentHouse, Bedrooms: 4},
	}}
	h := newHomeHandler(t, store, &stubUploader{})

	req := httptest.NewRequest(http.MethodGet, "/homes?rent_min=15000&rent_max=25000", nil)
	rec := httptest.NewRecorder()
	h.GetHomes(rec, req)

	var resp models.HomeListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Total != 1 || resp.Homes[0].ID != "h1" {
		t.Errorf("filtered homes = %+v", resp)
	}
}

func TestGetHomeByIDAnonymousContactGating(t *testing.T) {
	store := &stubHomeStore{snapshot: []models.Home{
		{ID: "h1", Title: "Room", Address: "Kukatpally", Rent: 7000, PropertyType: models.PropertyTypeRoom, Contact: "9876543210", UserID: "owner-1"},
	}}
	h := newHomeHandler(t, store, &stubUploader{})

	req := httptest.NewRequest(http.MethodGet, "/homes/h1?:id=h1", nil)
	rec := httptest.NewRecorder()
	h.GetHomeByID(rec, req)

	var resp HomeDetailResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Home.Contact != "" {
		t.Error("contact leaked to anonymous caller")
	}
	if resp.ContactPrompt == "" {
		t.Error("missing login prompt")
	}
}

func TestDeleteHomeOwnerOnly(t *testing.T) {
	store := &stubHomeStore{snapshot: []models.Home{
		{ID: "h1", Title: "Room", Address: "Kukatpally", Rent: 7000, PropertyType: models.PropertyTypeRoom, UserID: "owner-1", UserEmail: "owner@example.com"},
	}}
	h := newHomeHandler(t, store, &stubUploader{})

	req := httptest.NewRequest(http.MethodDelete, "/homes/h1?:id=h1", nil)
	req = withIdentity(req, models.Identity{UID: "intruder", Email: "intruder@example.com"})
	rec := httptest.NewRecorder()
	h.DeleteHome(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("non-owner status = %d", rec.Code)
	}
	if len(store.deleted) != 0 {
		t.Error("non-owner delete reached the repository")
	}

	req = httptest.NewRequest(http.MethodDelete, "/homes/h1?:id=h1", nil)
	req = withIdentity(req, models.Identity{UID: "owner-1", Email: "owner@example.com"})
	rec = httptest.NewRecorder()
	h.DeleteHome(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("owner status = %d", rec.Code)
	}
	if len(store.deleted) != 1 || store.deleted[0] != "h1" {
		t.Errorf("deleted = %v", store.deleted)
	}
}

func TestGetHomeByIDUnknownIDNotFound(t *testing.T) {
	h := newHomeHandler(t, &stubHomeStore{}, &stubUploader{})

	req := httptest.NewRequest(http.MethodGet, "/homes/zzz?:id=zzz", nil)
	rec := httptest.NewRecorder()
	h.GetHomeByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Key != "detailsNotFoundHome" || resp.BackTo != "/homes" {
		t.Errorf("response = %+v", resp)
	}
}
