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

	"ibt_backend/internals/features/operations/terminal_fees/model"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.TerminalFeeModel{}, &model.FeeSettingModel{}))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_email", "admin@ibt.test")
		return c.Next()
	})

	ctrl := NewTerminalFeeController(db)
	app.Get("/terminal-fees/settings", ctrl.GetFeeSettings)
	app.Put("/terminal-fees/settings", ctrl.UpdateFeeSettings)
	app.Post("/terminal-fees", ctrl.CreateTerminalFee)
	return app, db
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

func TestSettingsCreatedWithDefaults(t *testing.T) {
	app, _ := setup(t)

	resp := doJSON(t, app, fiber.MethodGet, "/terminal-fees/settings", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data model.FeeSettingModel `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 15.0, body.Data.FeeSettingRegular)
	assert.Equal(t, 12.0, body.Data.FeeSettingDiscounted)
}

func TestCreateFeeDerivesPriceFromSettings(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, fiber.MethodPost, "/terminal-fees", fiber.Map{
		"terminal_fee_ticket_no":      "TF-100",
		"terminal_fee_passenger_type": model.PassengerSeniorPWD,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var fee model.TerminalFeeModel
	require.NoError(t, db.Where("terminal_fee_ticket_no = ?", "TF-100").First(&fee).Error)
	assert.Equal(t, 12.0, fee.TerminalFeePrice)
}

func TestCreateFeeKeepsExplicitPrice(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, fiber.MethodPost, "/terminal-fees", fiber.Map{
		"terminal_fee_ticket_no":      "TF-101",
		"terminal_fee_passenger_type": model.PassengerRegular,
		"terminal_fee_price":          25,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var fee model.TerminalFeeModel
	require.NoError(t, db.Where("terminal_fee_ticket_no = ?", "TF-101").First(&fee).Error)
	assert.Equal(t, 25.0, fee.TerminalFeePrice)
}

func TestUpdateSettingsAffectsNewFees(t *testing.T) {
	app, db := setup(t)

	resp := doJSON(t, app, fiber.MethodPut, "/terminal-fees/settings", fiber.Map{
		"fee_setting_regular":    20,
		"fee_setting_discounted": 16,
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPost, "/terminal-fees", fiber.Map{
		"terminal_fee_ticket_no":      "TF-102",
		"terminal_fee_passenger_type": model.PassengerStudent,
	})
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var fee model.TerminalFeeModel
	require.NoError(t, db.Where("terminal_fee_ticket_no = ?", "TF-102").First(&fee).Error)
	assert.Equal(t, 16.0, fee.TerminalFeePrice)

	var settings model.FeeSettingModel
	require.NoError(t, db.First(&settings).Error)
	assert.Equal(t, "admin@ibt.test", settings.FeeSettingUpdatedBy)

	// Still a single settings row.
	var count int64
	db.Model(&model.FeeSettingModel{}).Count(&count)
	assert.EqualValues(t, 1, count)
}
