package handlers_test

import (
	"net/http"
	"testing"

	"github.com/harshrathod2434/Madras-Meals/config"
	"github.com/harshrathod2434/Madras-Meals/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	r := setupTest(t)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     "Anita",
		"email":    "anita@example.com",
		"password": "password123",
		// A role in the payload must not be honored.
		"role": "admin",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	resp := decode(t, w)
	assert.NotEmpty(t, resp["token"])
	user := resp["user"].(map[string]interface{})
	assert.Equal(t, "customer", user["role"])
	assert.NotContains(t, w.Body.String(), "password")

	var stored models.User
	require.NoError(t, config.DB.Where("email = ?", "anita@example.com").First(&stored).Error)
	assert.Equal(t, models.RoleCustomer, stored.Role)
	assert.NotEqual(t, "password123", stored.PasswordHash)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	r := setupTest(t)
	seedUser(t, "Anita", "anita@example.com", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"name":     "Anita Again",
		"email":    "anita@example.com",
		"password": "password123",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestRegisterValidation(t *testing.T) {
	r := setupTest(t)
	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{"missing name", map[string]interface{}{"email": "a@b.com", "password": "password123"}},
		{"bad email", map[string]interface{}{"name": "A", "email": "not-an-email", "password": "password123"}},
		{"short password", map[string]interface{}{"name": "A", "email": "a@b.com", "password": "abc"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, r, http.MethodPost, "/api/auth/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	r := setupTest(t)
	seedUser(t, "Anita", "anita@example.com", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "anita@example.com",
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	resp := decode(t, w)
	assert.NotEmpty(t, resp["token"])
	assert.NotContains(t, w.Body.String(), "password")
}

func TestLoginFailureShapesAreIdentical(t *testing.T) {
	r := setupTest(t)
	seedUser(t, "Anita", "anita@example.com", models.RoleCustomer)

	wrongPassword := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "anita@example.com",
		"password": "not-the-password",
	})
	unknownEmail := doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email":    "nobody@example.com",
		"password": testPassword,
	})

	// Neither response may reveal which of the two checks failed.
	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAuthRequired(t *testing.T) {
	r := setupTest(t)

	t.Run("missing token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/auth/me", "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doJSON(t, r, http.MethodGet, "/api/auth/me", "not.a.jwt", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token for a deleted account", func(t *testing.T) {
		user, token := seedUser(t, "Gone", "gone@example.com", models.RoleCustomer)
		require.NoError(t, config.DB.Delete(user).Error)
		w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetMe(t *testing.T) {
	r := setupTest(t)
	user, token := seedUser(t, "Anita", "anita@example.com", models.RoleCustomer)

	w := doJSON(t, r, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	me := decode(t, w)["user"].(map[string]interface{})
	assert.Equal(t, user.Email, me["email"])
	assert.Equal(t, user.DeliveryAddress, me["deliveryAddress"])
}

func TestChangePassword(t *testing.T) {
	r := setupTest(t)
	_, token := seedUser(t, "Anita", "anita@example.com", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPut, "/api/auth/change-password", token, map[string]interface{}{
		"oldPassword": "wrong-password",
		"newPassword": "newpassword456",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/auth/change-password", token, map[string]interface{}{
		"oldPassword": testPassword,
		"newPassword": "newpassword456",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// The old password no longer logs in; the new one does.
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "anita@example.com", "password": testPassword,
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", map[string]interface{}{
		"email": "anita@example.com", "password": "newpassword456",
	})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateProfile(t *testing.T) {
	r := setupTest(t)
	user, token := seedUser(t, "Anita", "anita@example.com", models.RoleCustomer)

	w := doJSON(t, r, http.MethodPut, "/api/profile", token, map[string]interface{}{
		"deliveryAddress": "99 T Nagar Main Road",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.User
	require.NoError(t, config.DB.First(&stored, user.ID).Error)
	assert.Equal(t, "99 T Nagar Main Road", stored.DeliveryAddress)
	// The field left out of the request stays as it was.
	assert.Equal(t, user.PhoneNumber, stored.PhoneNumber)
}
