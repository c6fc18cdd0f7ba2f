package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-31")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-31", d.String())
	assert.Equal(t, "31/01/2024", d.FormatBR())

	_, err = ParseDate("31/01/2024")
	assert.Error(t, err)
}

func TestDateAddDaysCrossesMonth(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-02-14", d.AddDays(30).String())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-06-01")
	require.NoError(t, err)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-06-01"`, string(data))

	var back Date
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, d, back)

	var empty Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &empty))
	assert.True(t, empty.IsZero())
}

func TestDateScan(t *testing.T) {
	var d Date
	require.NoError(t, d.Scan(time.Date(2024, 3, 10, 15, 30, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-10", d.String())

	var null Date
	require.NoError(t, null.Scan(nil))
	assert.True(t, null.IsZero())
}

func TestCatalogPrice(t *testing.T) {
	plans := DefaultPlans()

	assert.InDelta(t, 50.0, CatalogPrice(plans, "Premium"), 0.001)
	assert.InDelta(t, 70.0, CatalogPrice(plans, "Ultimate"), 0.001)

	// Plano desconhecido cai no Básico
	assert.InDelta(t, 30.0, CatalogPrice(plans, "Inexistente"), 0.001)

	// Sem nem o Básico no catálogo, vale o preço padrão
	custom := []Plan{{Name: "Turbo", Price: 99}}
	assert.InDelta(t, float64(DefaultPlanPrice), CatalogPrice(custom, "Outro"), 0.001)
}
