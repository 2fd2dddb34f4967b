// Package workbook writes projected sheet fields into an xlsx workbook.
//
// A template workbook carries a mapping sheet named "Fields" whose rows are
// (field name, target cell) pairs such as ("Race ", "Sheet!C4"). Field names
// the mapping does not list are ignored. Without a template, fields are laid
// out as name/value rows on a single sheet.
package workbook

import (
	"io"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/KirkDiggler/rpg-companion/internal/errors"
	"github.com/KirkDiggler/rpg-companion/internal/services/sheet"
)

const (
	// MappingSheet is the template sheet listing field names and target cells
	MappingSheet = "Fields"

	// LayoutSheet is the sheet written when no template is used
	LayoutSheet = "Character"

	// CheckValue is written into cells of checked boxes
	CheckValue = "X"

	// Extension is the file extension of written workbooks
	Extension = "xlsx"
)

type cellRef struct {
	sheet string
	cell  string
}

// Workbook is a sheet.FieldSink backed by an excelize file
type Workbook struct {
	file  *excelize.File
	cells map[string]cellRef

	// layout mode appends unmapped names as new rows
	layout  bool
	nextRow int
}

// New creates a workbook that lists every written field as a name/value row
func New() (*Workbook, error) {
	file := excelize.NewFile()
	if err := file.SetSheetName("Sheet1", LayoutSheet); err != nil {
		return nil, errors.Wrap(err, "failed to name layout sheet")
	}
	if err := file.SetCellValue(LayoutSheet, "A1", "Field"); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}
	if err := file.SetCellValue(LayoutSheet, "B1", "Value"); err != nil {
		return nil, errors.Wrap(err, "failed to write header")
	}
	if err := file.SetColWidth(LayoutSheet, "A", "B", 28); err != nil {
		return nil, errors.Wrap(err, "failed to size columns")
	}

	return &Workbook{
		file:    file,
		cells:   make(map[string]cellRef),
		layout:  true,
		nextRow: 2,
	}, nil
}

// Open loads a template workbook from disk
func Open(path string) (*Workbook, error) {
	if path == "" {
		return nil, errors.InvalidArgument("template path is required")
	}
	if _, err := os.Stat(path); err != nil {
		return nil, errors.NotFoundf("template %s not found", path)
	}

	file, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open template %s", path)
	}
	return fromTemplate(file)
}

// OpenReader loads a template workbook from a reader
func OpenReader(r io.Reader) (*Workbook, error) {
	file, err := excelize.OpenReader(r)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read template")
	}
	return fromTemplate(file)
}

func fromTemplate(file *excelize.File) (*Workbook, error) {
	rows, err := file.GetRows(MappingSheet)
	if err != nil {
		_ = file.Close()
		return nil, errors.InvalidArgumentf("template has no %q mapping sheet", MappingSheet)
	}

	cells := make(map[string]cellRef, len(rows))
	for i, row := range rows {
		if len(row) < 2 || row[0] == "" {
			continue
		}
		ref, ok := parseRef(row[1])
		if !ok {
			_ = file.Close()
			return nil, errors.InvalidArgumentf("invalid cell reference %q for field %q", row[1], row[0]).
				WithMeta("row", i+1)
		}
		cells[row[0]] = ref
	}

	return &Workbook{file: file, cells: cells}, nil
}

// parseRef splits "Sheet!$C$4" or "'My Sheet'!C4" into sheet and cell
func parseRef(ref string) (cellRef, bool) {
	idx := strings.LastIndex(ref, "!")
	if idx <= 0 {
		return cellRef{}, false
	}
	sheetName := strings.Trim(ref[:idx], "'")
	cell := strings.ReplaceAll(ref[idx+1:], "$", "")
	if _, _, err := excelize.CellNameToCoordinates(cell); err != nil {
		return cellRef{}, false
	}
	return cellRef{sheet: sheetName, cell: cell}, true
}

func (w *Workbook) target(name string) (cellRef, bool) {
	if ref, ok := w.cells[name]; ok {
		return ref, true
	}
	if !w.layout {
		return cellRef{}, false
	}

	nameCell, err := excelize.CoordinatesToCellName(1, w.nextRow)
	if err != nil {
		return cellRef{}, false
	}
	valueCell, err := excelize.CoordinatesToCellName(2, w.nextRow)
	if err != nil {
		return cellRef{}, false
	}
	if err := w.file.SetCellValue(LayoutSheet, nameCell, name); err != nil {
		return cellRef{}, false
	}

	ref := cellRef{sheet: LayoutSheet, cell: valueCell}
	w.cells[name] = ref
	w.nextRow++
	return ref, true
}

// SetText implements sheet.FieldSink
func (w *Workbook) SetText(name, value string) error {
	ref, ok := w.target(name)
	if !ok {
		return nil
	}
	if err := w.file.SetCellValue(ref.sheet, ref.cell, value); err != nil {
		return errors.Wrapf(err, "failed to write %s!%s", ref.sheet, ref.cell)
	}
	return nil
}

// SetChecked implements sheet.FieldSink
func (w *Workbook) SetChecked(name string) error {
	return w.SetText(name, CheckValue)
}

// Value reads back the value written for a field
func (w *Workbook) Value(name string) (string, error) {
	ref, ok := w.cells[name]
	if !ok {
		return "", errors.NotFoundf("field %q", name)
	}
	return w.file.GetCellValue(ref.sheet, ref.cell)
}

// WriteTo writes the workbook as xlsx
func (w *Workbook) WriteTo(out io.Writer) (int64, error) {
	n, err := w.file.WriteTo(out)
	if err != nil {
		return n, errors.Wrap(err, "failed to write workbook")
	}
	return n, nil
}

// SaveAs writes the workbook to a file
func (w *Workbook) SaveAs(path string) error {
	if err := w.file.SaveAs(path); err != nil {
		return errors.Wrapf(err, "failed to save workbook %s", path)
	}
	return nil
}

// Close releases the workbook's temporary files
func (w *Workbook) Close() error {
	return w.file.Close()
}

var _ sheet.FieldSink = (*Workbook)(nil)
