package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"ibt_backend/internals/features/operations/parking/model"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.ParkingModel{}))

	app := fiber.New()
	ctrl := NewParkingController(db)
	app.Get("/parking", ctrl.GetParkingTickets)
	app.Post("/parking", ctrl.CreateParking)
	app.Put("/parking/:id/depart", ctrl.DepartParking)
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

func TestDepartBillsRoundedHours(t *testing.T) {
	app, db := setup(t)

	ticket := model.ParkingModel{
		ParkingTicketNo: "PK-10",
		ParkingPlateNo:  "XYZ-789",
		ParkingType:     model.VehicleMotorcycle,
		ParkingBaseRate: 10,
		ParkingTimeIn:   time.Now().Add(-90 * time.Minute),
		ParkingStatus:   model.StatusParked,
	}
	require.NoError(t, db.Create(&ticket).Error)

	resp := doJSON(t, app, fiber.MethodPut, "/parking/"+ticket.ParkingID.String()+"/depart", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated model.ParkingModel
	require.NoError(t, db.First(&updated, "parking_id = ?", ticket.ParkingID).Error)
	assert.Equal(t, model.StatusDeparted, updated.ParkingStatus)
	assert.Equal(t, "2 hour(s)", updated.ParkingDuration)
	assert.Equal(t, 20.0, updated.ParkingFinalPrice)
	require.NotNil(t, updated.ParkingTimeOut)
}

func TestDepartTwiceConflicts(t *testing.T) {
	app, db := setup(t)

	ticket := model.ParkingModel{
		ParkingTicketNo: "PK-11",
		ParkingPlateNo:  "AAA-111",
		ParkingType:     model.VehicleCar,
		ParkingBaseRate: 20,
		ParkingTimeIn:   time.Now().Add(-5 * time.Minute),
		ParkingStatus:   model.StatusParked,
	}
	require.NoError(t, db.Create(&ticket).Error)

	first := doJSON(t, app, fiber.MethodPut, "/parking/"+ticket.ParkingID.String()+"/depart", nil)
	assert.Equal(t, fiber.StatusOK, first.StatusCode)

	second := doJSON(t, app, fiber.MethodPut, "/parking/"+ticket.ParkingID.String()+"/depart", nil)
	assert.Equal(t, fiber.StatusConflict, second.StatusCode)
}

func TestShortStayBillsMinimumHour(t *testing.T) {
	app, db := setup(t)

	ticket := model.ParkingModel{
		ParkingTicketNo: "PK-12",
		ParkingPlateNo:  "BBB-222",
		ParkingType:     model.VehicleCar,
		ParkingBaseRate: 20,
		ParkingTimeIn:   time.Now().Add(-5 * time.Minute),
		ParkingStatus:   model.StatusParked,
	}
	require.NoError(t, db.Create(&ticket).Error)

	resp := doJSON(t, app, fiber.MethodPut, "/parking/"+ticket.ParkingID.String()+"/depart", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var updated model.ParkingModel
	require.NoError(t, db.First(&updated, "parking_id = ?", ticket.ParkingID).Error)
	assert.Equal(t, "1 hour(s)", updated.ParkingDuration)
	assert.Equal(t, 20.0, updated.ParkingFinalPrice)
}

func TestListHidesArchivedTickets(t *testing.T) {
	app, db := setup(t)

	live := model.ParkingModel{
		ParkingTicketNo: "PK-20", ParkingPlateNo: "CCC-333",
		ParkingType: model.VehicleCar, ParkingBaseRate: 20,
		ParkingTimeIn: time.Now(), ParkingStatus: model.StatusParked,
	}
	archived := model.ParkingModel{
		ParkingTicketNo: "PK-21", ParkingPlateNo: "DDD-444",
		ParkingType: model.VehicleCar, ParkingBaseRate: 20,
		ParkingTimeIn: time.Now(), ParkingStatus: model.StatusParked,
		ParkingIsArchived: true,
	}
	require.NoError(t, db.Create(&live).Error)
	require.NoError(t, db.Create(&archived).Error)

	resp := doJSON(t, app, fiber.MethodGet, "/parking", nil)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			ParkingTicketNo string `json:"parking_ticket_no"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "PK-20", body.Data[0].ParkingTicketNo)
}
