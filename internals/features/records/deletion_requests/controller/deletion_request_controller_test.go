package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	lostFoundModel "ibt_backend/internals/features/operations/lost_found/model"
	archiveModel "ibt_backend/internals/features/records/archive/model"
	"ibt_backend/internals/features/records/deletion_requests/model"
)

func setup(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&lostFoundModel.LostFoundModel{},
		&archiveModel.ArchiveModel{},
		&model.DeletionRequestModel{},
	))

	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("user_email", "admin@ibt.test")
		c.Locals("userRole", "superadmin")
		return c.Next()
	})

	ctrl := NewDeletionRequestController(db)
	app.Get("/deletion-requests", ctrl.GetDeletionRequests)
	app.Post("/deletion-requests", ctrl.CreateDeletionRequest)
	app.Post("/deletion-requests/bulk-approve", ctrl.BulkApprove)
	app.Put("/deletion-requests/:id", ctrl.ResolveDeletionRequest)
	return app, db
}

func seedRequest(t *testing.T, db *gorm.DB) (*model.DeletionRequestModel, *lostFoundModel.LostFoundModel) {
	t.Helper()
	item := &lostFoundModel.LostFoundModel{
		LostFoundTrackingNo:  "LF-100",
		LostFoundDescription: "Blue backpack",
		LostFoundStatus:      lostFoundModel.StatusUnclaimed,
	}
	require.NoError(t, db.Create(item).Error)

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	request := &model.DeletionRequestModel{
		DeletionRequestItemType:     archiveModel.ArchiveTypeLostFound,
		DeletionRequestRequestedBy:  "staff@ibt.test",
		DeletionRequestOriginalData: raw,
		DeletionRequestReason:       "claimed long ago",
		DeletionRequestStatus:       model.StatusPending,
	}
	require.NoError(t, db.Create(request).Error)
	return request, item
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

func TestApproveArchivesThenDeletes(t *testing.T) {
	app, db := setup(t)
	request, item := seedRequest(t, db)

	resp := doJSON(t, app, fiber.MethodPut,
		"/deletion-requests/"+request.DeletionRequestID.String(),
		fiber.Map{"action": "approve", "admin_remarks": "cleared with supervisor"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Source row is gone.
	var items int64
	db.Model(&lostFoundModel.LostFoundModel{}).Count(&items)
	assert.Zero(t, items)

	// A snapshot of it lives in the archive.
	var archive archiveModel.ArchiveModel
	require.NoError(t, db.First(&archive).Error)
	assert.Equal(t, archiveModel.ArchiveTypeLostFound, archive.ArchiveType)
	assert.Equal(t, "admin@ibt.test", archive.ArchiveArchivedBy)
	var snapshot lostFoundModel.LostFoundModel
	require.NoError(t, json.Unmarshal(archive.ArchiveOriginalData, &snapshot))
	assert.Equal(t, item.LostFoundID, snapshot.LostFoundID)

	// The request row is consumed.
	var requests int64
	db.Model(&model.DeletionRequestModel{}).Count(&requests)
	assert.Zero(t, requests)
}

func TestDenyKeepsSourceIntact(t *testing.T) {
	app, db := setup(t)
	request, _ := seedRequest(t, db)

	resp := doJSON(t, app, fiber.MethodPut,
		"/deletion-requests/"+request.DeletionRequestID.String(),
		fiber.Map{"action": "deny", "admin_remarks": "record still needed"})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var items, archives, requests int64
	db.Model(&lostFoundModel.LostFoundModel{}).Count(&items)
	db.Model(&archiveModel.ArchiveModel{}).Count(&archives)
	db.Model(&model.DeletionRequestModel{}).Count(&requests)
	assert.EqualValues(t, 1, items)
	assert.Zero(t, archives)
	assert.Zero(t, requests)
}

func TestResolveRequiresRemarks(t *testing.T) {
	app, db := setup(t)
	request, _ := seedRequest(t, db)

	resp := doJSON(t, app, fiber.MethodPut,
		"/deletion-requests/"+request.DeletionRequestID.String(),
		fiber.Map{"action": "approve"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	// Nothing happened.
	var items, requests int64
	db.Model(&lostFoundModel.LostFoundModel{}).Count(&items)
	db.Model(&model.DeletionRequestModel{}).Count(&requests)
	assert.EqualValues(t, 1, items)
	assert.EqualValues(t, 1, requests)
}

func TestResolveRejectsUnknownAction(t *testing.T) {
	app, db := setup(t)
	request, _ := seedRequest(t, db)

	resp := doJSON(t, app, fiber.MethodPut,
		"/deletion-requests/"+request.DeletionRequestID.String(),
		fiber.Map{"action": "shred", "admin_remarks": "x"})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestCreateRejectsUnsupportedItemType(t *testing.T) {
	app, _ := setup(t)

	resp := doJSON(t, app, fiber.MethodPost, "/deletion-requests", fiber.Map{
		"deletion_request_item_type":     "Employee",
		"deletion_request_original_data": fiber.Map{"id": "x"},
		"deletion_request_reason":        "cleanup",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}

func TestBulkApproveToleratesFailures(t *testing.T) {
	app, db := setup(t)
	request, _ := seedRequest(t, db)

	// One bad request in the middle of the batch.
	broken := &model.DeletionRequestModel{
		DeletionRequestItemType:     archiveModel.ArchiveTypeLostFound,
		DeletionRequestRequestedBy:  "staff@ibt.test",
		DeletionRequestOriginalData: datatypes.JSON(`{"no_pk_here":true}`),
		DeletionRequestReason:       "bad snapshot",
		DeletionRequestStatus:       model.StatusPending,
	}
	require.NoError(t, db.Create(broken).Error)
	missing := uuid.New()

	resp := doJSON(t, app, fiber.MethodPost, "/deletion-requests/bulk-approve", fiber.Map{
		"request_ids":   []string{request.DeletionRequestID.String(), broken.DeletionRequestID.String(), missing.String()},
		"admin_remarks": "quarterly cleanup",
	})
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []struct {
			RequestID string `json:"request_id"`
			Approved  bool   `json:"approved"`
			Error     string `json:"error"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body.Data, 3)
	assert.True(t, body.Data[0].Approved)
	assert.False(t, body.Data[1].Approved)
	assert.NotEmpty(t, body.Data[1].Error)
	assert.False(t, body.Data[2].Approved)

	// The good request went through, the broken one is still pending.
	var requests int64
	db.Model(&model.DeletionRequestModel{}).Count(&requests)
	assert.EqualValues(t, 1, requests)
}
