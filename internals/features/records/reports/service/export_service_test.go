package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gorm.io/datatypes"

	"ibt_backend/internals/features/records/reports/model"
)

func TestBuildWorkbookTabular(t *testing.T) {
	report := &model.ReportModel{
		ReportType: "parking-daily",
		ReportData: datatypes.JSON(`[
			{"ticket_no":"PK-1","price":20},
			{"ticket_no":"PK-2","price":40,"plate":"ABC-123"}
		]`),
	}

	buf, err := BuildWorkbook(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	// Header comes from the first row's keys; late keys are appended.
	assert.Equal(t, []string{"price", "ticket_no", "plate"}, rows[0])
	assert.Equal(t, "PK-1", rows[1][1])
	assert.Equal(t, "ABC-123", rows[2][2])
}

func TestBuildWorkbookKeyValue(t *testing.T) {
	report := &model.ReportModel{
		ReportType: "summary",
		ReportData: datatypes.JSON(`{"total_tickets":12,"total_revenue":340.5}`),
	}

	buf, err := BuildWorkbook(report)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Field", "Value"}, rows[0])
	assert.Equal(t, "total_revenue", rows[1][0])
	assert.Equal(t, "total_tickets", rows[2][0])
}

func TestBuildWorkbookRejectsScalar(t *testing.T) {
	report := &model.ReportModel{
		ReportType: "broken",
		ReportData: datatypes.JSON(`42`),
	}
	_, err := BuildWorkbook(report)
	assert.Error(t, err)
}
