package businessflow

import (
	"fmt"
	"strconv"
	"time"

	"github.com/amirphl/copydesk/models"
	"github.com/amirphl/copydesk/utils"
	"github.com/xuri/excelize/v2"
)

// performanceSheet is the name of the single sheet of an export workbook
const performanceSheet = "performance"

var performanceHeader = []string{"id", "date", "impressions", "clicks", "conversions", "spend", "currency", "notes", "created_at"}

// performanceWorkbook renders records as one header row plus one row per record
func performanceWorkbook(records []*models.PerformanceRecord) ([]byte, error) {
	xl := excelize.NewFile()
	defer func() { _ = xl.Close() }()

	if err := xl.SetSheetName(xl.GetSheetName(0), performanceSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}

	header := performanceHeader
	if err := xl.SetSheetRow(performanceSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range records {
		row := performanceRow(r)
		cellRef, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := xl.SetSheetRow(performanceSheet, cellRef, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	buf, err := xl.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func performanceRow(r *models.PerformanceRecord) []string {
	date := ""
	if d := r.DateValue(); d != nil {
		date = utils.FormatDate(*d)
	}
	spend := ""
	if r.Spend != nil {
		spend = r.Spend.StringFixed(2)
	}
	return []string{
		r.ID.String(),
		date,
		formatCount(r.Impressions),
		formatCount(r.Clicks),
		formatCount(r.Conversions),
		spend,
		stringOrEmpty(r.Currency),
		stringOrEmpty(r.Notes),
		r.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func formatCount(v *int64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatInt(*v, 10)
}

func stringOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
