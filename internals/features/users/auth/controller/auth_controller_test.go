package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ibt_backend/internals/configs"
	"ibt_backend/internals/constants"
	userModel "ibt_backend/internals/features/users/user/model"
	authMiddleware "ibt_backend/internals/middlewares/auth"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	configs.JWTSecret = "test-secret"

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&userModel.UserModel{}))

	app := fiber.New()
	ctrl := NewAuthController(db)
	app.Post("/auth/login", ctrl.Login)

	api := app.Group("/api", authMiddleware.AuthMiddleware())
	api.Get("/auth/me", ctrl.Me)
	api.Get("/parking-only",
		authMiddleware.OnlyRoles("parking staff only", constants.ParkingStaff...),
		func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) })
	return app, db
}

func seedUser(t *testing.T, db *gorm.DB, email, password, role string, active bool) *userModel.UserModel {
	t.Helper()
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	u := &userModel.UserModel{
		UserEmail:    email,
		UserPassword: string(hashed),
		UserRole:     role,
		UserIsActive: active,
	}
	require.NoError(t, db.Create(u).Error)
	return u
}

func login(t *testing.T, app *fiber.App, email, password string) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(fiber.Map{
		"email": email, "password": password,
	}))
	req := httptest.NewRequest(fiber.MethodPost, "/auth/login", &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func token(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}

func TestLoginIssuesToken(t *testing.T) {
	app, db := setup(t)
	seedUser(t, db, "guard@ibt.test", "secret123", constants.RoleParking, true)

	resp := login(t, app, "guard@ibt.test", "secret123")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, token(t, resp))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app, db := setup(t)
	seedUser(t, db, "guard@ibt.test", "secret123", constants.RoleParking, true)

	resp := login(t, app, "guard@ibt.test", "wrong")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestLoginRejectsInactiveAccount(t *testing.T) {
	app, db := setup(t)
	seedUser(t, db, "former@ibt.test", "secret123", constants.RoleParking, false)

	resp := login(t, app, "former@ibt.test", "secret123")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestProtectedRouteRequiresToken(t *testing.T) {
	app, _ := setup(t)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestRoleGateEnforcedServerSide(t *testing.T) {
	app, db := setup(t)
	seedUser(t, db, "guard@ibt.test", "secret123", constants.RoleParking, true)
	seedUser(t, db, "lf@ibt.test", "secret123", constants.RoleLostFound, true)

	parkingToken := token(t, login(t, app, "guard@ibt.test", "secret123"))
	lostFoundToken := token(t, login(t, app, "lf@ibt.test", "secret123"))

	req := httptest.NewRequest(fiber.MethodGet, "/api/parking-only", nil)
	req.Header.Set("Authorization", "Bearer "+parkingToken)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	req = httptest.NewRequest(fiber.MethodGet, "/api/parking-only", nil)
	req.Header.Set("Authorization", "Bearer "+lostFoundToken)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestMeReturnsProfileFromToken(t *testing.T) {
	app, db := setup(t)
	seedUser(t, db, "guard@ibt.test", "secret123", constants.RoleParking, true)

	tok := token(t, login(t, app, "guard@ibt.test", "secret123"))

	req := httptest.NewRequest(fiber.MethodGet, "/api/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data struct {
			UserEmail string `json:"user_email"`
			UserRole  string `json:"user_role"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "guard@ibt.test", body.Data.UserEmail)
	assert.Equal(t, constants.RoleParking, body.Data.UserRole)
}
