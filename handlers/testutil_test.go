package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/blockchainsamuel0/calabarEats/config"
	"github.com/blockchainsamuel0/calabarEats/middleware"
	"github.com/blockchainsamuel0/calabarEats/models"
	"github.com/blockchainsamuel0/calabarEats/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupRouter wires a fresh in-memory database into the package-level DB
// and returns the fully-routed engine.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.ChefProfile{},
		&models.Wallet{},
		&models.Dish{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.OrderStatusHistory{},
	))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// register creates an account through the API and returns its token and
// the persisted user.
func register(t *testing.T, r *gin.Engine, role models.UserRole, email string) (string, *models.User) {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name":     "Test " + string(role),
		"email":    email,
		"password": "secret1",
		"role":     role,
		"phone":    "08011112222",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, config.DB.Where("email = ?", email).First(&user).Error)
	return decode(t, w)["token"].(string), &user
}

// approveChef pushes a chef straight through onboarding and vetting.
func approveChef(t *testing.T, user *models.User) {
	t.Helper()
	require.NoError(t, config.DB.Model(user).Updates(map[string]interface{}{
		"onboarding_status": models.OnboardingCompleted,
		"vetting_status":    models.VettingApproved,
	}).Error)
	require.NoError(t, config.DB.Model(&models.ChefProfile{}).
		Where("owner_user_id = ?", user.ID).
		Updates(map[string]interface{}{"profile_complete": true, "status": models.ChefOpen}).Error)
}

func seedDish(t *testing.T, chefID uint, name string, price float64, stock int) *models.Dish {
	t.Helper()
	dish := &models.Dish{
		ChefID:         chefID,
		Name:           name,
		Price:          price,
		InventoryCount: stock,
		IsAvailable:    stock > 0,
	}
	require.NoError(t, config.DB.Create(dish).Error)
	return dish
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func tokenFor(t *testing.T, user *models.User) string {
	t.Helper()
	token, err := middleware.GenerateToken(user)
	require.NoError(t, err)
	return token
}
