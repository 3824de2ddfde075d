package handlers_test

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/handlers"
	"github.com/blockchainsamuel0/calabarEats/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	keys []string
}

func (f *fakeUploader) Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error) {
	f.keys = append(f.keys, key)
	return "https://cdn.test/" + key, nil
}

func profileForm(t *testing.T, photoCount int, photoSize int) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Mama Efik Kitchen"))
	require.NoError(t, mw.WriteField("address", "15 Calabar Road, Calabar"))
	require.NoError(t, mw.WriteField("start_time", "09:00"))
	require.NoError(t, mw.WriteField("end_time", "21:00"))
	for i := 0; i < photoCount; i++ {
		fw, err := mw.CreateFormFile("photos", "photo.jpg")
		require.NoError(t, err)
		_, err = fw.Write(bytes.Repeat([]byte{0xFF}, photoSize))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func postProfile(t *testing.T, r *gin.Engine, token string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/chef/profile", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSetupChefProfile(t *testing.T) {
	r := setupRouter(t)
	uploader := &fakeUploader{}
	handlers.Uploads = uploader
	t.Cleanup(func() { handlers.Uploads = nil })

	token, chef := register(t, r, models.RoleChef, "setup@calabar.test")

	body, contentType := profileForm(t, 5, 128)
	w := postProfile(t, r, token, body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.Len(t, uploader.keys, 5)

	var updated models.User
	require.NoError(t, config.DB.First(&updated, chef.ID).Error)
	assert.Equal(t, models.OnboardingCompleted, updated.OnboardingStatus)
	assert.Equal(t, models.VettingPending, updated.VettingStatus)

	var profile models.ChefProfile
	require.NoError(t, config.DB.Where("owner_user_id = ?", chef.ID).First(&profile).Error)
	assert.True(t, profile.ProfileComplete)
	assert.Equal(t, "Mama Efik Kitchen", profile.Name)
	assert.NotEmpty(t, profile.VettingPhotoURLs)
}

func TestSetupChefProfileWrongPhotoCount(t *testing.T) {
	r := setupRouter(t)
	uploader := &fakeUploader{}
	handlers.Uploads = uploader
	t.Cleanup(func() { handlers.Uploads = nil })

	token, chef := register(t, r, models.RoleChef, "fourphotos@calabar.test")

	body, contentType := profileForm(t, 4, 128)
	w := postProfile(t, r, token, body, contentType)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, uploader.keys, "validation must run before any upload")

	var updated models.User
	require.NoError(t, config.DB.First(&updated, chef.ID).Error)
	assert.Equal(t, models.OnboardingPending, updated.OnboardingStatus, "onboarding must not advance")
}

func TestSetupChefProfileRefusedAfterApproval(t *testing.T) {
	r := setupRouter(t)
	uploader := &fakeUploader{}
	handlers.Uploads = uploader
	t.Cleanup(func() { handlers.Uploads = nil })

	token, chef := register(t, r, models.RoleChef, "resubmit@calabar.test")
	approveChef(t, chef)

	body, contentType := profileForm(t, 5, 128)
	w := postProfile(t, r, token, body, contentType)
	require.Equal(t, http.StatusForbidden, w.Code, w.Body.String())
	assert.Equal(t, "/dashboard", decode(t, w)["redirect"])
	assert.Empty(t, uploader.keys, "no upload may happen")

	var updated models.User
	require.NoError(t, config.DB.First(&updated, chef.ID).Error)
	assert.Equal(t, models.VettingApproved, updated.VettingStatus, "approval must survive a resubmission attempt")
}

func TestSetupChefProfileRefusedWhileVetting(t *testing.T) {
	r := setupRouter(t)
	handlers.Uploads = &fakeUploader{}
	t.Cleanup(func() { handlers.Uploads = nil })

	token, chef := register(t, r, models.RoleChef, "waiting@calabar.test")
	require.NoError(t, config.DB.Model(chef).Updates(map[string]interface{}{
		"onboarding_status": models.OnboardingCompleted,
		"vetting_status":    models.VettingPending,
	}).Error)

	body, contentType := profileForm(t, 5, 128)
	w := postProfile(t, r, token, body, contentType)
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "/vetting-status", decode(t, w)["redirect"])
}

func TestSetupChefProfileMissingFields(t *testing.T) {
	r := setupRouter(t)
	handlers.Uploads = &fakeUploader{}
	t.Cleanup(func() { handlers.Uploads = nil })

	token, _ := register(t, r, models.RoleChef, "nofields@calabar.test")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("name", "Only A Name"))
	require.NoError(t, mw.Close())
	w := postProfile(t, r, token, &buf, mw.FormDataContentType())
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDishLifecycle(t *testing.T) {
	r := setupRouter(t)
	token, chef := register(t, r, models.RoleChef, "dishes@calabar.test")
	approveChef(t, chef)

	// New dishes start unavailable with zero stock
	w := doJSON(t, r, http.MethodPost, "/api/chef/dishes", token, gin.H{
		"name":        "Edikang Ikong",
		"description": "Vegetable soup",
		"price":       2500,
		"category":    "Soups",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var dish models.Dish
	require.NoError(t, config.DB.Where("chef_id = ?", chef.ID).First(&dish).Error)
	assert.False(t, dish.IsAvailable)
	assert.Zero(t, dish.InventoryCount)

	// Setting stock makes it available
	w = doJSON(t, r, http.MethodPut, "/api/chef/dishes/"+itoa(dish.ID)+"/inventory", token, gin.H{"count": 8})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.First(&dish, dish.ID).Error)
	assert.True(t, dish.IsAvailable)
	assert.Equal(t, 8, dish.InventoryCount)

	// Zeroing stock flips it back
	w = doJSON(t, r, http.MethodPut, "/api/chef/dishes/"+itoa(dish.ID)+"/inventory", token, gin.H{"count": 0})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, config.DB.First(&dish, dish.ID).Error)
	assert.False(t, dish.IsAvailable)
}

func TestDishOwnership(t *testing.T) {
	r := setupRouter(t)
	_, owner := register(t, r, models.RoleChef, "owner@calabar.test")
	approveChef(t, owner)
	intruderToken, intruder := register(t, r, models.RoleChef, "intruder@calabar.test")
	approveChef(t, intruder)

	dish := seedDish(t, owner.ID, "jollof", 1500, 5)

	w := doJSON(t, r, http.MethodPut, "/api/chef/dishes/"+itoa(dish.ID), intruderToken, gin.H{"price": 1})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/api/chef/dishes/"+itoa(dish.ID), intruderToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
