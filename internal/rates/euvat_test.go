package rates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEUVAT_PercentageToFraction(t *testing.T) {
	input := `{"rates": {
		"DE": {
			"standard_rate": 19,
			"reduced_rate": 7,
			"vat_name": "Mehrwertsteuer",
			"vat_abbr": "MwSt."
		}
	}}`
	out, err := NormalizeEUVAT([]byte(input))
	require.NoError(t, err)
	require.Contains(t, out, "DE")

	de := out["DE"]
	assert.Equal(t, "vat", de.Type)
	assert.Equal(t, "EUR", de.Currency)
	assert.Equal(t, 0.19, de.StandardRate)

	require.NotNil(t, de.ReducedRate)
	assert.Equal(t, 0.07, *de.ReducedRate)

	// Absent rate fields default to 0, still divided and still present.
	require.NotNil(t, de.ReducedRateAlt)
	assert.Equal(t, 0.0, *de.ReducedRateAlt)
	require.NotNil(t, de.SuperReducedRate)
	assert.Equal(t, 0.0, *de.SuperReducedRate)
	require.NotNil(t, de.ParkingRate)
	assert.Equal(t, 0.0, *de.ParkingRate)

	require.NotNil(t, de.VatName)
	assert.Equal(t, "Mehrwertsteuer", *de.VatName)
	require.NotNil(t, de.VatAbbr)
	assert.Equal(t, "MwSt.", *de.VatAbbr)
}

func TestNormalizeEUVAT_Defaults(t *testing.T) {
	out, err := NormalizeEUVAT([]byte(`{"rates": {"LU": {}}}`))
	require.NoError(t, err)

	lu := out["LU"]
	assert.Equal(t, "vat", lu.Type)
	assert.Equal(t, "EUR", lu.Currency)
	assert.Equal(t, 0.0, lu.StandardRate)
	require.NotNil(t, lu.VatName)
	assert.Equal(t, "", *lu.VatName)
}

func TestNormalizeEUVAT_NeverEmitsStates(t *testing.T) {
	out, err := NormalizeEUVAT([]byte(`{"rates": {"AT": {"standard_rate": 20}}}`))
	require.NoError(t, err)
	assert.Nil(t, out["AT"].States)
}

func TestNormalizeEUVAT_EmptyDocument(t *testing.T) {
	out, err := NormalizeEUVAT([]byte(`{}`))
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestNormalizeEUVAT_ParseError(t *testing.T) {
	_, err := NormalizeEUVAT([]byte(`[1,2,3`))
	assert.Error(t, err)
}
