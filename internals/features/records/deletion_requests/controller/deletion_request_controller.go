package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	archiveService "ibt_backend/internals/features/records/archive/service"
	"ibt_backend/internals/features/records/deletion_requests/dto"
	"ibt_backend/internals/features/records/deletion_requests/model"
	helper "ibt_backend/internals/helpers"
	authHelper "ibt_backend/internals/helpers/auth"
)

type DeletionRequestController struct {
	DB *gorm.DB
}

func NewDeletionRequestController(db *gorm.DB) *DeletionRequestController {
	return &DeletionRequestController{DB: db}
}

// 🟢 GET /api/deletion-requests
func (ctrl *DeletionRequestController) GetDeletionRequests(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.DeletionRequestModel{})
	if t := c.Query("item_type"); t != "" {
		q = q.Where("deletion_request_item_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count deletion requests")
	}

	var requests []model.DeletionRequestModel
	if err := q.
		Order("deletion_request_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&requests).Error; err != nil {
		log.Printf("[ERROR] list deletion requests: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch deletion requests")
	}

	return helper.JsonList(c, dto.ToDeletionRequestResponseList(requests), helper.BuildMeta(total, p))
}

// 🟢 POST /api/deletion-requests
// Any staff role may file a request; nothing is deleted until a superadmin
// approves it.
func (ctrl *DeletionRequestController) CreateDeletionRequest(c *fiber.Ctx) error {
	var req dto.CreateDeletionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !archiveService.IsSupportedType(req.DeletionRequestItemType) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Unsupported item type: "+req.DeletionRequestItemType)
	}

	request := req.ToModel()
	request.DeletionRequestRequestedBy = authHelper.GetEmailFromToken(c)

	if err := ctrl.DB.Create(request).Error; err != nil {
		log.Printf("[ERROR] create deletion request: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create deletion request")
	}

	return helper.JsonCreated(c, "Deletion request submitted", dto.ToDeletionRequestResponse(request))
}

// 🟢 PUT /api/deletion-requests/:id
// Approval archives the snapshot, deletes the source row and removes the
// request in one transaction. Denial just removes the request. Either way
// the admin must leave remarks.
func (ctrl *DeletionRequestController) ResolveDeletionRequest(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var req dto.ResolveDeletionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var request model.DeletionRequestModel
	if err := ctrl.DB.Where("deletion_request_id = ?", id).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Deletion request not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch deletion request")
	}

	admin := authHelper.GetEmailFromToken(c)

	if req.Action == "deny" {
		if err := ctrl.DB.Delete(&request).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to resolve deletion request")
		}
		return helper.JsonOK(c, "Deletion request denied", fiber.Map{
			"deletion_request_id": request.DeletionRequestID,
			"admin_remarks":       req.AdminRemarks,
		})
	}

	if err := ctrl.approve(&request, admin, req.AdminRemarks); err != nil {
		if errors.Is(err, archiveService.ErrUnsupportedArchiveType) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		log.Printf("[ERROR] approve deletion request %s: %v", request.DeletionRequestID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to approve deletion request")
	}

	return helper.JsonOK(c, "Deletion request approved", fiber.Map{
		"deletion_request_id": request.DeletionRequestID,
		"admin_remarks":       req.AdminRemarks,
	})
}

// approve runs archive-then-delete so the snapshot exists before the source
// row goes away. A failure at any step rolls the whole resolution back.
func (ctrl *DeletionRequestController) approve(request *model.DeletionRequestModel, admin, remarks string) error {
	return ctrl.DB.Transaction(func(tx *gorm.DB) error {
		description := request.DeletionRequestItemDescription
		if description == "" {
			description = fmt.Sprintf("Deleted on request of %s", request.DeletionRequestRequestedBy)
		}
		if remarks != "" {
			description = description + " (" + remarks + ")"
		}
		if err := archiveService.Archive(tx,
			request.DeletionRequestItemType, description, admin,
			request.DeletionRequestOriginalData); err != nil {
			return err
		}
		if err := archiveService.DeleteSource(tx,
			request.DeletionRequestItemType, request.DeletionRequestOriginalData); err != nil {
			return err
		}
		return tx.Delete(request).Error
	})
}

// 🟢 POST /api/deletion-requests/bulk-approve
// Requests are approved one by one; a failing item is reported and skipped,
// it does not abort the batch.
func (ctrl *DeletionRequestController) BulkApprove(c *fiber.Ctx) error {
	var req dto.BulkApproveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	admin := authHelper.GetEmailFromToken(c)

	results := make([]dto.BulkApproveResult, 0, len(req.RequestIDs))
	approved := 0
	for _, id := range req.RequestIDs {
		var request model.DeletionRequestModel
		if err := ctrl.DB.Where("deletion_request_id = ?", id).First(&request).Error; err != nil {
			results = append(results, dto.BulkApproveResult{RequestID: id, Error: "request not found"})
			continue
		}
		if err := ctrl.approve(&request, admin, req.AdminRemarks); err != nil {
			log.Printf("[ERROR] bulk approve %s: %v", id, err)
			results = append(results, dto.BulkApproveResult{RequestID: id, Error: err.Error()})
			continue
		}
		approved++
		results = append(results, dto.BulkApproveResult{RequestID: id, Approved: true})
	}

	return helper.JsonOK(c, fmt.Sprintf("%d of %d requests approved", approved, len(req.RequestIDs)), results)
}
