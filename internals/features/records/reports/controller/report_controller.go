package controller

import (
	"errors"
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"ibt_backend/internals/features/records/reports/dto"
	"ibt_backend/internals/features/records/reports/model"
	"ibt_backend/internals/features/records/reports/service"
	helper "ibt_backend/internals/helpers"
	authHelper "ibt_backend/internals/helpers/auth"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// 🟢 GET /api/reports
func (ctrl *ReportController) GetReports(c *fiber.Ctx) error {
	p := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	q := ctrl.DB.Model(&model.ReportModel{})
	if t := c.Query("type"); t != "" {
		q = q.Where("report_type = ?", t)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count reports")
	}

	var reports []model.ReportModel
	if err := q.
		Order("report_created_at DESC").
		Limit(p.Limit()).Offset(p.Offset()).
		Find(&reports).Error; err != nil {
		log.Printf("[ERROR] list reports: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch reports")
	}

	return helper.JsonList(c, dto.ToReportResponseList(reports), helper.BuildMeta(total, p))
}

// 🟢 GET /api/reports/:id
func (ctrl *ReportController) GetReportByID(c *fiber.Ctx) error {
	report, fail := ctrl.findReport(c)
	if report == nil {
		return fail
	}
	return helper.JsonOK(c, "ok", dto.ToReportResponse(report))
}

// 🟢 POST /api/reports
// Reports are append-only snapshots; there is no update endpoint.
func (ctrl *ReportController) CreateReport(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	report := req.ToModel()
	if report.ReportAuthor == "" {
		report.ReportAuthor = authHelper.GetEmailFromToken(c)
	}

	if err := ctrl.DB.Create(report).Error; err != nil {
		log.Printf("[ERROR] create report: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create report")
	}

	return helper.JsonCreated(c, "Report created", dto.ToReportResponse(report))
}

// 🟢 GET /api/reports/:id/export
func (ctrl *ReportController) ExportReport(c *fiber.Ctx) error {
	report, fail := ctrl.findReport(c)
	if report == nil {
		return fail
	}

	buf, err := service.BuildWorkbook(report)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	filename := fmt.Sprintf("report_%s_%s.xlsx",
		report.ReportType, report.ReportCreatedAt.Format("2006-01-02"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(buf.Bytes())
}

// 🛑 DELETE /api/reports/:id
func (ctrl *ReportController) DeleteReport(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	res := ctrl.DB.Where("report_id = ?", id).Delete(&model.ReportModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete report")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Report not found")
	}

	return helper.JsonDeleted(c, "Report deleted", nil)
}

func (ctrl *ReportController) findReport(c *fiber.Ctx) (*model.ReportModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid ID format")
	}

	var report model.ReportModel
	if err := ctrl.DB.Where("report_id = ?", id).First(&report).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Report not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch report")
	}
	return &report, nil
}
