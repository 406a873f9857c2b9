package domain

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

func TestServicePricesAreDecimal(t *testing.T) {
	s, err := schema.Parse(&Service{}, &sync.Map{}, schema.NamingStrategy{})
	require.NoError(t, err)

	for _, col := range []string{"hourly_rate", "fixed_price"} {
		f := s.LookUpField(col)
		require.NotNil(t, f, col)
		assert.Equal(t, schema.DataType("numeric(10,2)"), f.DataType, col)
	}
}

func TestBeforeSaveNormalizesToUTC(t *testing.T) {
	cet := time.FixedZone("CET", 3600)
	at := time.Date(2026, 3, 1, 12, 30, 0, 0, cet)

	u := &User{SubscriptionExpiresAt: &at, CreatedAt: at}
	require.NoError(t, u.BeforeSave(nil))
	assert.Equal(t, time.UTC, u.SubscriptionExpiresAt.Location())
	assert.True(t, u.SubscriptionExpiresAt.Equal(at))
	assert.Equal(t, time.UTC, u.CreatedAt.Location())
	assert.Equal(t, cet, at.Location(), "caller's value is not mutated")

	r := &Review{CreatedAt: at}
	require.NoError(t, r.BeforeSave(nil))
	assert.Equal(t, 11, r.CreatedAt.Hour())
	assert.Equal(t, time.UTC, r.CreatedAt.Location())

	empty := &User{}
	require.NoError(t, empty.BeforeSave(nil))
	assert.Nil(t, empty.SubscriptionExpiresAt)
	assert.True(t, empty.CreatedAt.IsZero())
}

func TestSubscriptionActive(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	later := now.Add(time.Minute)

	assert.True(t, (&User{SubscriptionStatus: SubscriptionActive, SubscriptionExpiresAt: &later}).SubscriptionActive(now))
	assert.False(t, (&User{SubscriptionStatus: SubscriptionActive, SubscriptionExpiresAt: &now}).SubscriptionActive(now))
	assert.False(t, (&User{SubscriptionStatus: SubscriptionActive}).SubscriptionActive(now))
	assert.False(t, (&User{SubscriptionStatus: SubscriptionExpired, SubscriptionExpiresAt: &later}).SubscriptionActive(now))
}
