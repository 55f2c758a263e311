// Package export writes the merged rates mapping in alternate formats.
package export

import (
	"encoding/csv"
	"io"
	"sort"
	"strconv"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/vatsync/internal/rates"
)

// tabularHeader is the column layout shared by the CSV and XLSX exports.
// Country-level rows leave the state column empty; each state override gets
// its own row.
var tabularHeader = []string{
	"country", "state", "type", "currency", "standard_rate",
	"reduced_rate", "reduced_rate_alt", "super_reduced_rate", "parking_rate",
	"vat_name", "vat_abbr",
}

// WriteYAML writes the mapping as YAML with two-space indentation.
func WriteYAML(w io.Writer, records map[string]rates.Record) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(records); err != nil {
		return eris.Wrap(err, "export: encode yaml")
	}
	if err := enc.Close(); err != nil {
		return eris.Wrap(err, "export: close yaml encoder")
	}
	return nil
}

// WriteCSV writes the mapping as flattened CSV rows, one per jurisdiction.
func WriteCSV(w io.Writer, records map[string]rates.Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tabularHeader); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	for _, row := range flatten(records) {
		if err := cw.Write(row); err != nil {
			return eris.Wrap(err, "export: write csv row")
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "export: flush csv")
	}
	return nil
}

// WriteXLSX writes the mapping as a single-sheet workbook at path.
func WriteXLSX(path string, records map[string]rates.Record) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Rates")
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	header := sheet.AddRow()
	for _, col := range tabularHeader {
		header.AddCell().SetString(col)
	}
	for _, row := range flatten(records) {
		xr := sheet.AddRow()
		for _, val := range row {
			xr.AddCell().SetString(val)
		}
	}

	if err := file.Save(path); err != nil {
		return eris.Wrapf(err, "export: save %s", path)
	}
	return nil
}

// flatten produces tabular rows in stable country order, state rows directly
// after their country row.
func flatten(records map[string]rates.Record) [][]string {
	codes := make([]string, 0, len(records))
	for code := range records {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	var rows [][]string
	for _, code := range codes {
		rec := records[code]
		rows = append(rows, []string{
			code, "", rec.Type, rec.Currency, formatRate(rec.StandardRate),
			formatRatePtr(rec.ReducedRate), formatRatePtr(rec.ReducedRateAlt),
			formatRatePtr(rec.SuperReducedRate), formatRatePtr(rec.ParkingRate),
			strPtr(rec.VatName), strPtr(rec.VatAbbr),
		})

		stateCodes := make([]string, 0, len(rec.States))
		for sc := range rec.States {
			stateCodes = append(stateCodes, sc)
		}
		sort.Strings(stateCodes)
		for _, sc := range stateCodes {
			st := rec.States[sc]
			rows = append(rows, []string{
				code, sc, st.Type, rec.Currency, formatRate(st.StandardRate),
				"", "", "", "", "", "",
			})
		}
	}
	return rows
}

func formatRate(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatRatePtr(v *float64) string {
	if v == nil {
		return ""
	}
	return formatRate(*v)
}

func strPtr(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
