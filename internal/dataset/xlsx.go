package dataset

import (
	"fmt"
	"io"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/xuri/excelize/v2"
)

// SheetName - лист с инцидентами в книге Excel
const SheetName = "Incidentes"

// WriteXLSX записывает инциденты в книгу Excel с теми же колонками, что и CSV
func WriteXLSX(w io.Writer, incidents []models.Incident) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("xlsx: failed to rename sheet: %w", err)
	}

	header := make([]interface{}, len(Columns))
	for i, col := range Columns {
		header[i] = col
	}
	if err := f.SetSheetRow(SheetName, "A1", &header); err != nil {
		return fmt.Errorf("xlsx: failed to write header: %w", err)
	}

	for i, inc := range incidents {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("xlsx: %w", err)
		}
		row := []interface{}{
			inc.Date.Format(DateLayout),
			string(inc.Carrier),
			string(inc.RiskType),
			string(inc.Criticality),
			string(inc.Modal),
			string(inc.Region),
			inc.Cost,
			inc.CriticalRoute,
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("xlsx: failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.AutoFilter(SheetName, fmt.Sprintf("A1:H%d", len(incidents)+1), nil); err != nil {
		return fmt.Errorf("xlsx: failed to set autofilter: %w", err)
	}
	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("xlsx: failed to write workbook: %w", err)
	}
	return nil
}
