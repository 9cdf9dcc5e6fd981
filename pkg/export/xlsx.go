package export

import (
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// WorkbookWriter renders a Projection into an xlsx workbook: one sheet,
// a header row, string cells (so phone numbers survive untouched), an
// Excel table over the used range and a frozen header row. Contact
// photos are embedded into the Photo column.
type WorkbookWriter struct {
	SheetName  string
	TableStyle string
	Log        *zap.Logger
}

// NewWorkbookWriter returns a writer with the default sheet and table
// style.
func NewWorkbookWriter(log *zap.Logger) *WorkbookWriter {
	if log == nil {
		log = zap.NewNop()
	}
	return &WorkbookWriter{
		SheetName:  "Sheet1",
		TableStyle: "TableStyleMedium9",
		Log:        log,
	}
}

// Write saves the projection to path. A projection with zero rows is
// valid: the header is written and the table is skipped with a warning.
func (w *WorkbookWriter) Write(path string, p Projection) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := w.SheetName
	if sheet == "" {
		sheet = "Sheet1"
	}
	if sheet != "Sheet1" {
		if err := f.SetSheetName("Sheet1", sheet); err != nil {
			return fmt.Errorf("failed to name sheet: %w", err)
		}
	}

	for i, name := range p.Schema {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStr(sheet, cell, name); err != nil {
			return err
		}
	}
	for r, row := range p.Rows {
		for i, val := range row {
			if val == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(i+1, r+2)
			if err != nil {
				return err
			}
			if err := f.SetCellStr(sheet, cell, val); err != nil {
				return err
			}
		}
	}

	if len(p.Rows) > 0 && len(p.Schema) > 0 {
		last, err := excelize.CoordinatesToCellName(len(p.Schema), len(p.Rows)+1)
		if err != nil {
			return err
		}
		if err := f.AddTable(sheet, &excelize.Table{
			Range:     "A1:" + last,
			Name:      "Contacts",
			StyleName: w.TableStyle,
		}); err != nil {
			return fmt.Errorf("failed to add table: %w", err)
		}
	} else {
		w.Log.Warn("projection has no rows, writing header only", zap.String("sheet", sheet))
	}

	if len(p.Schema) > 0 {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return fmt.Errorf("failed to freeze header: %w", err)
		}
	}

	for _, ph := range p.Photos {
		cell, err := excelize.CoordinatesToCellName(p.PhotoCol, ph.Row+2)
		if err != nil {
			return err
		}
		if err := f.AddPictureFromBytes(sheet, cell, &excelize.Picture{
			Extension: photoExt(ph.Data),
			File:      ph.Data,
			Format:    &excelize.GraphicOptions{AutoFit: true},
		}); err != nil {
			// A bad image should not lose the rest of the export.
			w.Log.Warn("could not embed photo", zap.Int("row", ph.Row+1), zap.Error(err))
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// photoExt sniffs the image format of decoded photo bytes.
func photoExt(data []byte) string {
	switch http.DetectContentType(data) {
	case "image/png":
		return ".png"
	case "image/gif":
		return ".gif"
	default:
		return ".jpg"
	}
}
