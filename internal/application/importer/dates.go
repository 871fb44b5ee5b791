package importer

import (
	"strconv"
	"strings"
	"time"

	"github.com/resinworks/backend/internal/domain/shared"
)

var dateLayouts = []string{
	"02/01/2006", // day first, the format the legacy spreadsheets use
	"2/1/2006",
	"2006-01-02",
	"02-01-2006",
}

// excelEpoch is day zero of the 1900 date system, adjusted for the
// spreadsheet leap year bug.
var excelEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// ParseWorkbookDate parses a spreadsheet cell into a calendar date. It
// accepts day-first dates (dd/mm/yyyy), ISO dates (yyyy-mm-dd) and raw
// Excel serial numbers.
func ParseWorkbookDate(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return time.Time{}, shared.NewDomainError("INVALID_DATE", "Date cell is empty")
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, cell); err == nil {
			return t, nil
		}
	}

	if serial, err := strconv.ParseFloat(cell, 64); err == nil && serial > 0 && serial < 200000 {
		return excelEpoch.AddDate(0, 0, int(serial)), nil
	}

	return time.Time{}, shared.NewDomainError("INVALID_DATE", "Unrecognized date format: "+cell)
}
