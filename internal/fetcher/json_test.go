package fetcher

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeJSONObject(t *testing.T) {
	type payload struct {
		Rates map[string]float64 `json:"rates"`
	}

	obj, err := DecodeJSONObject[payload](strings.NewReader(`{"rates": {"DE": 19}}`))
	require.NoError(t, err)
	assert.Equal(t, 19.0, obj.Rates["DE"])
}

func TestDecodeJSONObject_Malformed(t *testing.T) {
	type payload struct{}
	_, err := DecodeJSONObject[payload](strings.NewReader(`{"rates":`))
	assert.Error(t, err)
}
