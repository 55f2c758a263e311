package rates

import (
	"encoding/json"

	"github.com/rotisserie/eris"
)

// salesTaxCountry is one entry of the node-sales-tax dataset. Every field is
// optional; rates are already fractions.
type salesTaxCountry struct {
	Type     *string                  `json:"type"`
	Currency *string                  `json:"currency"`
	Rate     *float64                 `json:"rate"`
	States   map[string]salesTaxState `json:"states"`
}

type salesTaxState struct {
	Rate *float64 `json:"rate"`
	Type *string  `json:"type"`
}

// NormalizeSalesTax parses the sales-tax dataset (country code -> entry) and
// maps it into the unified schema. Missing fields resolve to "none", "" and 0.
// Entries without a states mapping produce no states key at all.
func NormalizeSalesTax(data []byte) (map[string]Record, error) {
	var raw map[string]salesTaxCountry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, eris.Wrap(err, "sales tax: parse")
	}

	out := make(map[string]Record, len(raw))
	for code, entry := range raw {
		rec := Record{
			Type:         strOr(entry.Type, TypeNone),
			Currency:     strOr(entry.Currency, ""),
			StandardRate: floatOr(entry.Rate, 0),
		}

		if entry.States != nil {
			states := make(map[string]StateRecord, len(entry.States))
			for stateCode, state := range entry.States {
				states[stateCode] = StateRecord{
					StandardRate: floatOr(state.Rate, 0),
					Type:         strOr(state.Type, TypeNone),
				}
			}
			rec.States = states
		}

		out[code] = rec
	}

	return out, nil
}

func strOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}

func floatOr(f *float64, def float64) float64 {
	if f == nil {
		return def
	}
	return *f
}
