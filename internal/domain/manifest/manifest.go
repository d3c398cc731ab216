// Package manifest reads supplier delivery files (CSV or XLSX) into product
// rows and a delivery summary.
package manifest

import (
	"context"
	"io"
	"path/filepath"
	"sort"
	"strings"

	"supplierintake/internal/core/apperror"
	"supplierintake/internal/core/numeric"
	"supplierintake/internal/domain/delivery"
	"supplierintake/internal/domain/lot"
)

// Format is a supported manifest file format.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// Row is one product line of a manifest.
type Row struct {
	// Line is the 1-based line number in the file, header included.
	Line int `json:"line"`

	// Cells holds the raw cell text keyed by header.
	Cells map[string]string `json:"cells"`

	// Fields holds the cells of mapped columns.
	Fields map[Field]string `json:"fields"`
}

// Get returns the trimmed value of a mapped field, or "".
func (r Row) Get(f Field) string {
	return strings.TrimSpace(r.Fields[f])
}

// LineItem converts the row into calculator input. Empty price or quantity
// cells stay nil.
func (r Row) LineItem() delivery.LineItem {
	item := delivery.LineItem{Currency: r.Get(FieldCurrency)}
	if v := r.Get(FieldPrice); v != "" {
		item.Price = v
	}
	if v := r.Get(FieldQuantity); v != "" {
		item.Quantity = v
	}
	return item
}

// Summary aggregates a manifest.
type Summary struct {
	ItemsCount int     `json:"itemsCount"`
	TotalValue float64 `json:"totalValue"`

	// Lots and Pallets are the distinct, sorted values of those columns.
	Lots    []string `json:"lots"`
	Pallets []string `json:"pallets"`

	// MappedColumns maps field names to the headers they were read from.
	MappedColumns map[Field]string `json:"mappedColumns"`
}

// LotAnalysis describes where the delivery's LOT number can come from.
type LotAnalysis struct {
	FoundInFilename string             `json:"foundInFilename,omitempty"`
	OriginalMatch   string             `json:"originalMatch,omitempty"`
	HasLotColumn    bool               `json:"hasLotColumn"`
	Values          lot.ValuesAnalysis `json:"values"`
}

// Manifest is a parsed delivery file.
type Manifest struct {
	Filename    string      `json:"filename"`
	Format      Format      `json:"format"`
	Headers     []string    `json:"headers"`
	Rows        []Row       `json:"rows"`
	Summary     Summary     `json:"summary"`
	LotAnalysis LotAnalysis `json:"lotAnalysis"`
}

// DetectFormat returns the manifest format of filename.
func DetectFormat(filename string) (Format, bool) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return FormatCSV, true
	case ".xlsx", ".xlsm":
		return FormatXLSX, true
	}
	return "", false
}

// LineItems converts every row into calculator input.
func (m *Manifest) LineItems() []delivery.LineItem {
	items := make([]delivery.LineItem, len(m.Rows))
	for i, r := range m.Rows {
		items[i] = r.LineItem()
	}
	return items
}

// LotNumber suggests the delivery LOT number: the one in the file name,
// else the first valid value of the LOT column, else the only distinct
// LOT column value.
func (m *Manifest) LotNumber() string {
	if m.LotAnalysis.FoundInFilename != "" {
		return m.LotAnalysis.FoundInFilename
	}
	for _, v := range m.LotAnalysis.Values.ValidLots {
		if formatted, ok := lot.Format(v); ok {
			return formatted
		}
	}
	if len(m.Summary.Lots) == 1 {
		return m.Summary.Lots[0]
	}
	return ""
}

// PalletNumber returns the pallet when the manifest names exactly one.
func (m *Manifest) PalletNumber() string {
	if len(m.Summary.Pallets) == 1 {
		return m.Summary.Pallets[0]
	}
	return ""
}

// Parse reads a manifest. The format is chosen by the file extension.
func Parse(ctx context.Context, filename string, r io.Reader) (*Manifest, error) {
	format, ok := DetectFormat(filename)
	if !ok {
		return nil, apperror.NewUnsupportedFormat(filename)
	}

	var (
		records [][]string
		err     error
	)
	switch format {
	case FormatCSV:
		records, err = readCSV(r)
	case FormatXLSX:
		records, err = readXLSX(r)
	}
	if err != nil {
		return nil, apperror.NewValidation("Cannot read the uploaded file").
			WithDetail("filename", filename).
			WithCause(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return build(filename, format, records)
}

func build(filename string, format Format, records [][]string) (*Manifest, error) {
	if len(records) == 0 || isBlankRecord(records[0]) {
		return nil, apperror.NewValidation("The file has no header row").
			WithDetail("filename", filename)
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}
	columns := mapColumns(headers)

	m := &Manifest{
		Filename: filename,
		Format:   format,
		Headers:  headers,
		Rows:     make([]Row, 0, len(records)-1),
	}

	for i, rec := range records[1:] {
		if isBlankRecord(rec) {
			continue
		}
		row := Row{
			Line:   i + 2,
			Cells:  make(map[string]string, len(headers)),
			Fields: make(map[Field]string, len(columns)),
		}
		for j, h := range headers {
			if h != "" {
				row.Cells[h] = cell(rec, j)
			}
		}
		for f, j := range columns {
			row.Fields[f] = cell(rec, j)
		}
		m.Rows = append(m.Rows, row)
	}

	m.Summary = summarize(m.Rows, headers, columns)
	m.LotAnalysis = analyzeLots(filename, headers, m.Rows, columns)
	return m, nil
}

func summarize(rows []Row, headers []string, columns map[Field]int) Summary {
	s := Summary{
		ItemsCount:    len(rows),
		MappedColumns: make(map[Field]string, len(columns)),
	}
	for f, j := range columns {
		s.MappedColumns[f] = headers[j]
	}

	for _, r := range rows {
		s.TotalValue += numeric.Or(r.Get(FieldValue), 0)
	}
	s.Lots = distinct(rows, FieldLot)
	s.Pallets = distinct(rows, FieldPallet)
	return s
}

func analyzeLots(filename string, headers []string, rows []Row, columns map[Field]int) LotAnalysis {
	var a LotAnalysis
	if match, ok := lot.AnalyzeFilename(filepath.Base(filename)); ok {
		a.FoundInFilename = match.Lot
		a.OriginalMatch = match.Original
	}

	_, mapped := columns[FieldLot]
	a.HasLotColumn = mapped || lot.HasLotColumn(headers)

	values := make([]string, 0, len(rows))
	if mapped {
		for _, r := range rows {
			values = append(values, r.Get(FieldLot))
		}
	}
	a.Values = lot.AnalyzeValues(values)
	return a
}

func distinct(rows []Row, f Field) []string {
	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range rows {
		v := r.Get(f)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

func cell(rec []string, i int) string {
	if i < len(rec) {
		return strings.TrimSpace(rec[i])
	}
	return ""
}

func isBlankRecord(rec []string) bool {
	for _, v := range rec {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}
