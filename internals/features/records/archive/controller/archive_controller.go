package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibt_backend/internals/features/records/archive/dto"
	"ibt_backend/internals/features/records/archive/model"
	"ibt_backend/internals/features/records/archive/service"
	helper "ibt_backend/internals/helpers"
	authHelper "ibt_backend/internals/helpers/auth"
)

type ArchiveController struct {
	DB *gorm.DB
}

func NewArchiveController(db *gorm.DB) *ArchiveController {
	return &ArchiveController{DB: db}
}

// 🟢 GET /api/archives
func (ctrl *ArchiveController) GetArchives(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "date_archived", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.ArchiveModel{})
	if t := c.Query("type"); t != "" {
		q = q.Where("archive_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count archives")
	}

	var archives []model.ArchiveModel
	if err := q.
		Order("archive_date_archived DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&archives).Error; err != nil {
		log.Printf("[ERROR] list archives: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch archives")
	}

	return helper.JsonList(c, dto.ToArchiveResponseList(archives), helper.BuildMeta(total, p))
}

// 🟢 POST /api/archives
func (ctrl *ArchiveController) CreateArchive(c *fiber.Ctx) error {
	var req dto.CreateArchiveRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if !service.IsSupportedType(req.ArchiveType) {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Unsupported archive type: "+req.ArchiveType+". Supported: "+strings.Join(service.SupportedTypes(), ", "))
	}

	archive := req.ToModel()
	if archive.ArchiveArchivedBy == "" {
		archive.ArchiveArchivedBy = authHelper.GetEmailFromToken(c)
	}

	if err := ctrl.DB.Create(archive).Error; err != nil {
		log.Printf("[ERROR] create archive: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create archive")
	}

	return helper.JsonCreated(c, "Record archived", dto.ToArchiveResponse(archive))
}

// 🟢 POST /api/archives/restore/:id
// Restore and archive removal run in one transaction; an unknown archive
// type is rejected, never silently skipped.
func (ctrl *ArchiveController) RestoreArchive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var archive model.ArchiveModel
	if err := ctrl.DB.Where("archive_id = ?", id).First(&archive).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Archive not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch archive")
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		return service.Restore(tx, &archive)
	})
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedArchiveType) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
		}
		log.Printf("[ERROR] restore archive %s: %v", archive.ArchiveID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to restore archive")
	}

	return helper.JsonOK(c, "Record restored", fiber.Map{
		"archive_id":   archive.ArchiveID,
		"archive_type": archive.ArchiveType,
	})
}

// 🛑 DELETE /api/archives/:id
// Permanent removal. The snapshot is gone for good after this.
func (ctrl *ArchiveController) DeleteArchive(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Where("archive_id = ?", id).Delete(&model.ArchiveModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete archive")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Archive not found")
	}

	return helper.JsonDeleted(c, "Archive deleted permanently", nil)
}
