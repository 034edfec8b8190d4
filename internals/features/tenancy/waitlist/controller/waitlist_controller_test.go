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
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ibt_backend/internals/features/tenancy/waitlist/model"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TenantApplicationModel{}))

	app := fiber.New()
	ctrl := NewWaitlistController(db)
	app.Get("/waitlist", ctrl.GetWaitlist)
	app.Post("/waitlist", ctrl.CreateWaitlistEntry)
	app.Put("/waitlist/:id", ctrl.UpdateWaitlistEntry)
	return app, db
}

func seedApplication(t *testing.T, db *gorm.DB, status, tenantType string) *model.TenantApplicationModel {
	t.Helper()
	app := &model.TenantApplicationModel{
		TenantApplicationName:       "Maria Cruz",
		TenantApplicationEmail:      "maria@ibt.test",
		TenantApplicationTenantType: tenantType,
		TenantApplicationStatus:     status,
	}
	require.NoError(t, db.Create(app).Error)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestCreateStartsAtPending(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, fiber.MethodPost, "/waitlist", fiber.Map{
		"tenant_application_name":        "Jose Reyes",
		"tenant_application_email":       "jose@ibt.test",
		"tenant_application_tenant_type": "Temporary",
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var entry model.TenantApplicationModel
	require.NoError(t, db.First(&entry).Error)
	assert.Equal(t, model.StatusPending, entry.TenantApplicationStatus)
}

func TestUpdateFollowsPipeline(t *testing.T) {
	app, db := setup(t)
	entry := seedApplication(t, db, model.StatusPending, "Permanent")

	resp := doJSON(t, app, fiber.MethodPut, "/waitlist/"+entry.TenantApplicationID.String(),
		fiber.Map{"tenant_application_status": model.StatusVerificationPending})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated model.TenantApplicationModel
	require.NoError(t, db.First(&updated).Error)
	assert.Equal(t, model.StatusVerificationPending, updated.TenantApplicationStatus)
}

func TestUpdateRejectsSkippedStage(t *testing.T) {
	app, db := setup(t)
	entry := seedApplication(t, db, model.StatusPending, "Permanent")

	resp := doJSON(t, app, fiber.MethodPut, "/waitlist/"+entry.TenantApplicationID.String(),
		fiber.Map{"tenant_application_status": model.StatusTenant})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var unchanged model.TenantApplicationModel
	require.NoError(t, db.First(&unchanged).Error)
	assert.Equal(t, model.StatusPending, unchanged.TenantApplicationStatus)
}

func TestUpdateRejectsUnknownStatus(t *testing.T) {
	app, db := setup(t)
	entry := seedApplication(t, db, model.StatusPending, "Permanent")

	resp := doJSON(t, app, fiber.MethodPut, "/waitlist/"+entry.TenantApplicationID.String(),
		fiber.Map{"tenant_application_status": "APPROVED"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestActiveFilterHidesPromoted(t *testing.T) {
	app, db := setup(t)
	seedApplication(t, db, model.StatusPending, "Temporary")
	seedApplication(t, db, model.StatusTenant, "Temporary")

	resp := doJSON(t, app, fiber.MethodGet, "/waitlist?active=true", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			TenantApplicationStatus string `json:"tenant_application_status"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, model.StatusPending, body.Data[0].TenantApplicationStatus)
}
