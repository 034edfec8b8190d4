package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/xuri/excelize/v2"

	"ibt_backend/internals/features/records/reports/model"
)

// BuildWorkbook renders a report as an .xlsx workbook. An array of objects
// becomes a tabular sheet with a header row; any other JSON shape falls back
// to a two-column key/value sheet.
func BuildWorkbook(report *model.ReportModel) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	var rows []map[string]any
	if err := json.Unmarshal(report.ReportData, &rows); err == nil && len(rows) > 0 {
		writeTable(f, sheet, rows)
	} else {
		var obj map[string]any
		if err := json.Unmarshal(report.ReportData, &obj); err != nil {
			return nil, fmt.Errorf("report data is neither an object nor an array of objects: %w", err)
		}
		writePairs(f, sheet, obj)
	}

	return f.WriteToBuffer()
}

func writeTable(f *excelize.File, sheet string, rows []map[string]any) {
	headers := columnSet(rows)
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, h)
	}
	for r, row := range rows {
		for c, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(sheet, cell, cellValue(row[h]))
		}
	}
}

func writePairs(f *excelize.File, sheet string, obj map[string]any) {
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	f.SetCellValue(sheet, "A1", "Field")
	f.SetCellValue(sheet, "B1", "Value")
	for i, k := range keys {
		rowCell, _ := excelize.CoordinatesToCellName(1, i+2)
		valCell, _ := excelize.CoordinatesToCellName(2, i+2)
		f.SetCellValue(sheet, rowCell, k)
		f.SetCellValue(sheet, valCell, cellValue(obj[k]))
	}
}

// columnSet keeps first-seen order from the leading row, then appends keys
// that only show up in later rows, sorted for stability.
func columnSet(rows []map[string]any) []string {
	seen := map[string]bool{}
	var headers []string

	first := make([]string, 0, len(rows[0]))
	for k := range rows[0] {
		first = append(first, k)
	}
	sort.Strings(first)
	for _, k := range first {
		seen[k] = true
		headers = append(headers, k)
	}

	var extra []string
	for _, row := range rows[1:] {
		for k := range row {
			if !seen[k] {
				seen[k] = true
				extra = append(extra, k)
			}
		}
	}
	sort.Strings(extra)
	return append(headers, extra...)
}

func cellValue(v any) any {
	switch t := v.(type) {
	case nil:
		return ""
	case string, float64, bool:
		return t
	default:
		b, _ := json.Marshal(t)
		return string(b)
	}
}
