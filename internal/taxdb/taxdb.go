// Package taxdb answers rate lookups and tax calculations over a merged
// rates file produced by the sync pipeline.
package taxdb

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/vatsync/internal/rates"
)

var (
	// ErrCountryNotFound is returned when a country code is absent from the dataset.
	ErrCountryNotFound = eris.New("taxdb: country not found")
	// ErrStateNotFound is returned when a state code is absent or the country has no states.
	ErrStateNotFound = eris.New("taxdb: state not found")
	// ErrInvalidAmount is returned for negative calculation amounts.
	ErrInvalidAmount = eris.New("taxdb: invalid amount")
)

// DB holds the merged rates mapping in memory.
type DB struct {
	records map[string]rates.Record
}

// New creates a DB from an already-merged mapping.
func New(records map[string]rates.Record) *DB {
	return &DB{records: records}
}

// Load reads a merged rates file from disk.
func Load(path string) (*DB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "taxdb: read %s", path)
	}
	var records map[string]rates.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, eris.Wrapf(err, "taxdb: parse %s", path)
	}
	return New(records), nil
}

// Record returns the unified record for a country code.
func (db *DB) Record(country string) (rates.Record, error) {
	rec, ok := db.records[normalizeCode(country)]
	if !ok {
		return rates.Record{}, eris.Wrapf(ErrCountryNotFound, "%s", country)
	}
	return rec, nil
}

// Rate returns the effective standard rate for a jurisdiction. A state code,
// when given, must exist under the country and its rate overrides the
// country-level default.
func (db *DB) Rate(country, state string) (float64, error) {
	rec, err := db.Record(country)
	if err != nil {
		return 0, err
	}
	if state == "" {
		return rec.StandardRate, nil
	}
	st, ok := rec.States[normalizeCode(state)]
	if !ok {
		return 0, eris.Wrapf(ErrStateNotFound, "%s/%s", country, state)
	}
	return st.StandardRate, nil
}

// Countries returns all country codes in the dataset, sorted.
func (db *DB) Countries() []string {
	codes := make([]string, 0, len(db.records))
	for code := range db.records {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Len returns the number of countries in the dataset.
func (db *DB) Len() int {
	return len(db.records)
}

// Calculation is the result of applying a jurisdiction's standard rate to an amount.
type Calculation struct {
	Rate  float64 `json:"rate"`
	Tax   float64 `json:"tax"`
	Total float64 `json:"total"`
}

// Calculate applies the effective standard rate for the jurisdiction to amount.
func (db *DB) Calculate(amount float64, country, state string) (Calculation, error) {
	if amount < 0 {
		return Calculation{}, eris.Wrapf(ErrInvalidAmount, "%f", amount)
	}
	r, err := db.Rate(country, state)
	if err != nil {
		return Calculation{}, err
	}
	tax := amount * r
	return Calculation{
		Rate:  r,
		Tax:   tax,
		Total: amount + tax,
	}, nil
}

// Dataset keys are upper-case ISO codes.
func normalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
