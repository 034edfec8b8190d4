package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"ibt_backend/internals/features/records/archive/model"
)

// ================== REQUEST ==================
type CreateArchiveRequest struct {
	ArchiveType         string         `json:"archive_type" validate:"required"`
	ArchiveDescription  string         `json:"archive_description"`
	ArchiveOriginalData datatypes.JSON `json:"archive_original_data" validate:"required"`
	ArchiveArchivedBy   string         `json:"archive_archived_by"`
}

// ================== RESPONSE ==================
type ArchiveResponse struct {
	ArchiveID           uuid.UUID      `json:"archive_id"`
	ArchiveType         string         `json:"archive_type"`
	ArchiveDescription  string         `json:"archive_description"`
	ArchiveOriginalData datatypes.JSON `json:"archive_original_data"`
	ArchiveArchivedBy   string         `json:"archive_archived_by"`
	ArchiveDateArchived string         `json:"archive_date_archived"`
}

// ================ CONVERSION =================
func (r *CreateArchiveRequest) ToModel() *model.ArchiveModel {
	return &model.ArchiveModel{
		ArchiveType:         r.ArchiveType,
		ArchiveDescription:  r.ArchiveDescription,
		ArchiveOriginalData: r.ArchiveOriginalData,
		ArchiveArchivedBy:   r.ArchiveArchivedBy,
	}
}

func ToArchiveResponse(m *model.ArchiveModel) *ArchiveResponse {
	return &ArchiveResponse{
		ArchiveID:           m.ArchiveID,
		ArchiveType:         m.ArchiveType,
		ArchiveDescription:  m.ArchiveDescription,
		ArchiveOriginalData: m.ArchiveOriginalData,
		ArchiveArchivedBy:   m.ArchiveArchivedBy,
		ArchiveDateArchived: m.ArchiveDateArchived.Format(time.RFC3339),
	}
}

func ToArchiveResponseList(models []model.ArchiveModel) []ArchiveResponse {
	result := make([]ArchiveResponse, 0, len(models))
	for i := range models {
		result = append(result, *ToArchiveResponse(&models[i]))
	}
	return result
}
