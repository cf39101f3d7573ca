package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"vaulterp-backend/internal/config"
	"vaulterp-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testConfig() *config.Config {
	return &config.Config{JWTSecret: "0123456789abcdef0123456789abcdef"}
}

func newTestDB(t *testing.T, name string) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open("file:"+name+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Employee{}, &models.Office{}))
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, password string) models.User {
	t.Helper()
	employee := models.Employee{EmployeeName: "Asha Rao", OfficeID: 1, IsActive: true}
	require.NoError(t, db.Create(&employee).Error)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		UsertypeID:   2,
		EmployeeID:   employee.ID,
		IsFirstLogin: true,
		IsActive:     true,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func login(t *testing.T, app *fiber.App, email, password string) (int, []byte) {
	t.Helper()
	raw, err := json.Marshal(LoginRequest{Email: email, Password: password})
	require.NoError(t, err)
	req := httptest.NewRequest(fiber.MethodPost, "/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, out
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t, "auth_ok")
	cfg := testConfig()
	app := fiber.New()
	app.Post("/auth/login", LoginHandler(db, cfg))

	seedUser(t, db, "asha@example.com", "s3cret-pass")

	// Email matching is case and whitespace insensitive.
	status, out := login(t, app, "  Asha@Example.COM ", "s3cret-pass")
	require.Equal(t, fiber.StatusOK, status, string(out))

	var body struct {
		Token string `json:"token"`
		User  struct {
			ID         uint    `json:"id"`
			Email      string  `json:"email"`
			UsertypeID uint    `json:"usertypeId"`
			Username   *string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(out, &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "asha@example.com", body.User.Email)
	assert.Equal(t, uint(2), body.User.UsertypeID)
	require.NotNil(t, body.User.Username)
	assert.Equal(t, "Asha Rao", *body.User.Username)

	// A successful login stamps the audit fields.
	var stored models.User
	require.NoError(t, db.First(&stored, "email = ?", "asha@example.com").Error)
	assert.False(t, stored.IsFirstLogin)
	assert.NotNil(t, stored.LastLogin)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := newTestDB(t, "auth_bad")
	cfg := testConfig()
	app := fiber.New()
	app.Post("/auth/login", LoginHandler(db, cfg))

	seedUser(t, db, "asha@example.com", "s3cret-pass")

	// Wrong password and unknown email are indistinguishable.
	status, out := login(t, app, "asha@example.com", "wrong")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.NotContains(t, string(out), "token")

	status, _ = login(t, app, "nobody@example.com", "s3cret-pass")
	assert.Equal(t, fiber.StatusUnauthorized, status)

	status, _ = login(t, app, "", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestLoginIgnoresInactiveUsers(t *testing.T) {
	db := newTestDB(t, "auth_inactive")
	cfg := testConfig()
	app := fiber.New()
	app.Post("/auth/login", LoginHandler(db, cfg))

	user := seedUser(t, db, "gone@example.com", "s3cret-pass")
	require.NoError(t, db.Model(&user).Update("is_active", false).Error)

	status, _ := login(t, app, "gone@example.com", "s3cret-pass")
	assert.Equal(t, fiber.StatusUnauthorized, status)
}

func TestJWTMiddleware(t *testing.T) {
	db := newTestDB(t, "auth_mw")
	cfg := testConfig()

	app := fiber.New()
	app.Post("/auth/login", LoginHandler(db, cfg))
	protected := app.Group("", JWTMiddleware(cfg))
	protected.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"email": c.Locals(CtxEmailKey)})
	})

	seedUser(t, db, "asha@example.com", "s3cret-pass")
	status, out := login(t, app, "asha@example.com", "s3cret-pass")
	require.Equal(t, fiber.StatusOK, status)

	var body struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(out, &body))

	// No header at all.
	req := httptest.NewRequest(fiber.MethodGet, "/me", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Garbage token.
	req = httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// The token issued by login gets through and carries the claims.
	req = httptest.NewRequest(fiber.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+body.Token)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "asha@example.com")
}
