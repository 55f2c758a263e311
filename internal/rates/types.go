// Package rates normalizes the upstream tax-rate datasets into the unified
// schema and merges them into a single mapping keyed by country code.
package rates

// TypeNone marks a jurisdiction with no (or unknown) tax regime.
const TypeNone = "none"

// TypeVAT marks a jurisdiction using value-added tax.
const TypeVAT = "vat"

// StateRecord is a sub-national rate override.
type StateRecord struct {
	StandardRate float64 `json:"standard_rate" yaml:"standard_rate"`
	Type         string  `json:"type" yaml:"type"`
}

// Record is the unified per-country schema both sources normalize into.
// All rates are fractions (0.20 = 20%). The VAT detail fields are pointers
// so they only appear in output when the EU VAT path produced them; the
// sales-tax path never sets them.
type Record struct {
	Type             string                 `json:"type" yaml:"type"`
	Currency         string                 `json:"currency" yaml:"currency"`
	StandardRate     float64                `json:"standard_rate" yaml:"standard_rate"`
	ReducedRate      *float64               `json:"reduced_rate,omitempty" yaml:"reduced_rate,omitempty"`
	ReducedRateAlt   *float64               `json:"reduced_rate_alt,omitempty" yaml:"reduced_rate_alt,omitempty"`
	SuperReducedRate *float64               `json:"super_reduced_rate,omitempty" yaml:"super_reduced_rate,omitempty"`
	ParkingRate      *float64               `json:"parking_rate,omitempty" yaml:"parking_rate,omitempty"`
	VatName          *string                `json:"vat_name,omitempty" yaml:"vat_name,omitempty"`
	VatAbbr          *string                `json:"vat_abbr,omitempty" yaml:"vat_abbr,omitempty"`
	States           map[string]StateRecord `json:"states,omitempty" yaml:"states,omitempty"`
}
