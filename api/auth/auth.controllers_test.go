package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"fitstack.dev/api/api/user"
	database "fitstack.dev/api/db"
	"fitstack.dev/api/utils/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	validTestUserEmail    = "test@example.com"
	validTestUserPassword = "Password123*"
)

func setupTestApp(t *testing.T) (*fiber.App, *user.User) {
	t.Helper()

	testutils.SetupTestConfig(t)

	testDB := testutils.SetupTestDB(t, &user.User{})
	database.DB.DB = testDB

	testutils.SetupTestRedis(t)

	app := fiber.New()
	RegisterAuthRoutes(app)

	testUser := createTestUser(t, testDB, validTestUserEmail, validTestUserPassword)

	return app, testUser
}

func createTestUser(t *testing.T, db *gorm.DB, email, password string) *user.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	testUser := &user.User{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  string(hashed),
		Role:      user.RoleUser,
	}
	require.NoError(t, db.Create(testUser).Error)
	return testUser
}

func postJSON(t *testing.T, app *fiber.App, path string, payload interface{}) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestAuthController_Login(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", LoginDTO{
			Email:    validTestUserEmail,
			Password: validTestUserPassword,
		})
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var authCookie, refreshCookie *http.Cookie
		for _, cookie := range resp.Cookies() {
			if cookie.Name == "__Secure-auth_token" {
				authCookie = cookie
			}
			if cookie.Name == "__Host-refresh_token" {
				refreshCookie = cookie
			}
		}

		require.NotNil(t, authCookie)
		require.NotNil(t, refreshCookie)
		assert.True(t, authCookie.HttpOnly)
		assert.True(t, refreshCookie.HttpOnly)
	})

	t.Run("InvalidCredentials", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", LoginDTO{
			Email:    validTestUserEmail,
			Password: "Password321*",
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("UserNotFound", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/login", LoginDTO{
			Email:    "nobody@example.com",
			Password: validTestUserPassword,
		})
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("MalformedBody", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{")))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestAuthController_Register(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("Success", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/register", RegisterDTO{
			FirstName: "New",
			LastName:  "Member",
			Email:     "new.member@example.com",
			Password:  "Str0ngPass!",
		})
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.NotEmpty(t, body["access_token"])
		assert.NotEmpty(t, body["refresh_token"])
	})

	t.Run("WeakPassword", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/register", RegisterDTO{
			FirstName: "New",
			LastName:  "Member",
			Email:     "weak@example.com",
			Password:  "weak",
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/register", RegisterDTO{
			FirstName: "Test",
			LastName:  "User",
			Email:     validTestUserEmail,
			Password:  "Str0ngPass!",
		})
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	})
}

func TestAuthController_RefreshToken(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("NoCookie", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("RotationRoundTrip", func(t *testing.T) {
		loginResp := postJSON(t, app, "/api/auth/login", LoginDTO{
			Email:    validTestUserEmail,
			Password: validTestUserPassword,
		})
		require.Equal(t, http.StatusOK, loginResp.StatusCode)

		var refreshCookie *http.Cookie
		for _, cookie := range loginResp.Cookies() {
			if cookie.Name == "__Host-refresh_token" {
				refreshCookie = cookie
			}
		}
		require.NotNil(t, refreshCookie)

		req := httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.AddCookie(refreshCookie)
		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		// The consumed token is blacklisted, replaying it fails
		req = httptest.NewRequest(http.MethodPost, "/api/auth/refresh", nil)
		req.AddCookie(refreshCookie)
		resp, err = app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}

func TestAuthController_Logout(t *testing.T) {
	app, _ := setupTestApp(t)

	t.Run("NoToken", func(t *testing.T) {
		resp := postJSON(t, app, "/api/auth/logout", LogoutRequest{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("WithBodyToken", func(t *testing.T) {
		loginResp := postJSON(t, app, "/api/auth/login", LoginDTO{
			Email:    validTestUserEmail,
			Password: validTestUserPassword,
		})
		require.Equal(t, http.StatusOK, loginResp.StatusCode)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(loginResp.Body).Decode(&body))
		refreshToken, _ := body["refresh_token"].(string)
		require.NotEmpty(t, refreshToken)

		resp := postJSON(t, app, "/api/auth/logout", LogoutRequest{RefreshToken: refreshToken})
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})
}
