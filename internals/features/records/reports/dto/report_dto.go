package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ibt_backend/internals/features/records/reports/model"
)

// ================== REQUEST ==================
type CreateReportRequest struct {
	ReportType   string         `json:"report_type" validate:"required"`
	ReportAuthor string         `json:"report_author" validate:"required"`
	ReportData   datatypes.JSON `json:"report_data" validate:"required"`
}

// ================== RESPONSE ==================
type ReportResponse struct {
	ReportID        uuid.UUID      `json:"report_id"`
	ReportType      string         `json:"report_type"`
	ReportAuthor    string         `json:"report_author"`
	ReportData      datatypes.JSON `json:"report_data"`
	ReportCreatedAt string         `json:"report_created_at"`
}

// ================ CONVERSION =================
func (r *CreateReportRequest) ToModel() *model.ReportModel {
	return &model.ReportModel{
		ReportType:   r.ReportType,
		ReportAuthor: r.ReportAuthor,
		ReportData:   r.ReportData,
	}
}

func ToReportResponse(m *model.ReportModel) *ReportResponse {
	return &ReportResponse{
		ReportID:        m.ReportID,
		ReportType:      m.ReportType,
		ReportAuthor:    m.ReportAuthor,
		ReportData:      m.ReportData,
		ReportCreatedAt: m.ReportCreatedAt.Format(time.RFC3339),
	}
}

func ToReportResponseList(models []model.ReportModel) []ReportResponse {
	result := make([]ReportResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToReportResponse(&models[i]))
	}
	return result
}
