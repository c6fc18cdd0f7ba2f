package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatusCycle(t *testing.T) {
	assert.Equal(t, StatusSuspended, NextStatus(StatusActive))
	assert.Equal(t, StatusInactive, NextStatus(StatusSuspended))
	assert.Equal(t, StatusActive, NextStatus(StatusInactive))
}

func TestNextStatusUnknownFallsBackToActive(t *testing.T) {
	assert.Equal(t, StatusActive, NextStatus(ClientStatus("qualquer")))
	assert.Equal(t, StatusActive, NextStatus(StatusCancelled))
}

func TestNextStatusNeverLeavesCycle(t *testing.T) {
	s := StatusActive
	for i := 0; i < 9; i++ {
		s = NextStatus(s)
		assert.Contains(t, []ClientStatus{StatusActive, StatusSuspended, StatusInactive}, s)
	}
	assert.Equal(t, StatusActive, s)
}

func TestIsExpiring(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	inThreeDays := ClientRecord{ExpiryDate: NewDate(now).AddDays(3)}
	assert.True(t, inThreeDays.IsExpiring(now))

	// Já vencido também conta como vencendo
	expired := ClientRecord{ExpiryDate: NewDate(now).AddDays(-10)}
	assert.True(t, expired.IsExpiring(now))

	farAway := ClientRecord{ExpiryDate: NewDate(now).AddDays(30)}
	assert.False(t, farAway.IsExpiring(now))

	noDate := ClientRecord{}
	assert.False(t, noDate.IsExpiring(now))
}

func TestDaysUntilExpiry(t *testing.T) {
	now := time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)

	c := ClientRecord{ExpiryDate: NewDate(now).AddDays(5)}
	assert.Equal(t, 5, c.DaysUntilExpiry(now))

	past := ClientRecord{ExpiryDate: NewDate(now).AddDays(-2)}
	assert.Equal(t, -2, past.DaysUntilExpiry(now))
	assert.True(t, past.IsExpired(now))
}

func TestMarshalJSONIncludesDerivedExpiryFields(t *testing.T) {
	now := time.Now()

	expired := ClientRecord{Name: "Maria", ExpiryDate: NewDate(now).AddDays(-10)}
	raw, err := json.Marshal(expired)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Contains(t, payload, "days_until_expiry")
	assert.Equal(t, true, payload["is_expired"])

	current := ClientRecord{Name: "João", ExpiryDate: NewDate(now).AddDays(30)}
	raw, err = json.Marshal(current)
	require.NoError(t, err)

	require.NoError(t, json.Unmarshal(raw, &payload))
	assert.Equal(t, false, payload["is_expired"])
	assert.Greater(t, payload["days_until_expiry"].(float64), float64(7))
}

func TestOwnerScopeValid(t *testing.T) {
	assert.True(t, ScopeOwner.Valid())
	assert.True(t, ScopePartner.Valid())
	assert.False(t, OwnerScope("admin").Valid())
	assert.False(t, OwnerScope("").Valid())
}
