package rates

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

// euVATDocument is the eu-vat-rates dataset: a top-level rates mapping with
// percentage-valued fields (0-100).
type euVATDocument struct {
	Rates map[string]euVATCountry `json:"rates"`
}

type euVATCountry struct {
	StandardRate     float64 `json:"standard_rate"`
	ReducedRate      float64 `json:"reduced_rate"`
	ReducedRateAlt   float64 `json:"reduced_rate_alt"`
	SuperReducedRate float64 `json:"super_reduced_rate"`
	ParkingRate      float64 `json:"parking_rate"`
	VatName          string  `json:"vat_name"`
	VatAbbr          string  `json:"vat_abbr"`
}

// NormalizeEUVAT parses the EU VAT dataset and maps it into the unified
// schema. Percentages are converted to fractions; type and currency are
// constant ("vat", "EUR"). This path never emits a states mapping.
func NormalizeEUVAT(data []byte) (map[string]Record, error) {
	var doc euVATDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, eris.Wrap(err, "eu vat: parse")
	}

	out := make(map[string]Record, len(doc.Rates))
	for code, entry := range doc.Rates {
		out[code] = Record{
			Type:             TypeVAT,
			Currency:         "EUR",
			StandardRate:     entry.StandardRate / 100,
			ReducedRate:      ptr(entry.ReducedRate / 100),
			ReducedRateAlt:   ptr(entry.ReducedRateAlt / 100),
			SuperReducedRate: ptr(entry.SuperReducedRate / 100),
			ParkingRate:      ptr(entry.ParkingRate / 100),
			VatName:          ptr(entry.VatName),
			VatAbbr:          ptr(entry.VatAbbr),
		}
	}

	return out, nil
}

func ptr[T any](v T) *T { return &v }
