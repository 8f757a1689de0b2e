package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/harshrathod2434/Madras-Meals/config"
	"github.com/harshrathod2434/Madras-Meals/middleware"
	"github.com/harshrathod2434/Madras-Meals/models"
	"github.com/harshrathod2434/Madras-Meals/routes"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "password123"

// setupTest wires the full router against a fresh in-memory database.
func setupTest(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// A pooled second connection would see its own empty :memory: database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db

	r := gin.New()
	routes.SetupRoutes(r)
	return r
}

func seedUser(t *testing.T, name, email string, role models.UserRole) (*models.User, string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Name:            name,
		Email:           email,
		PasswordHash:    string(hash),
		Role:            role,
		DeliveryAddress: "12 Marina Beach Road, Chennai",
		PhoneNumber:     "+919876543210",
	}
	require.NoError(t, config.DB.Create(&user).Error)

	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return &user, token
}

// seedUserNoProfile creates an account without delivery details.
func seedUserNoProfile(t *testing.T, name, email string) (*models.User, string) {
	t.Helper()
	user, token := seedUser(t, name, email, models.RoleCustomer)
	require.NoError(t, config.DB.Model(user).
		Updates(map[string]interface{}{"delivery_address": "", "phone_number": ""}).Error)
	user.DeliveryAddress = ""
	user.PhoneNumber = ""
	return user, token
}

func seedMenuItem(t *testing.T, name string, price float64) models.MenuItem {
	t.Helper()
	item := models.MenuItem{
		Name:        name,
		Price:       price,
		Category:    models.CategoryMainCourse,
		IsAvailable: true,
	}
	require.NoError(t, config.DB.Create(&item).Error)
	return item
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
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

// placeOrder creates an order through the API and returns its id.
func placeOrder(t *testing.T, r *gin.Engine, token string, items []map[string]interface{}) uint {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/orders", token, map[string]interface{}{"items": items})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	order := decode(t, w)["order"].(map[string]interface{})
	return uint(order["id"].(float64))
}
