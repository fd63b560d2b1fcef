package domain

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierTable_RateAt(t *testing.T) {
	tests := []struct {
		name     string
		depth    int
		expected int64
		ok       bool
	}{
		{name: "direct referrer", depth: 1, expected: 2000, ok: true},
		{name: "depth 2", depth: 2, expected: 1000, ok: true},
		{name: "depth 4", depth: 4, expected: 1000, ok: true},
		{name: "depth 5", depth: 5, expected: 500, ok: true},
		{name: "depth 10", depth: 10, expected: 500, ok: true},
		{name: "depth 11 outside window", depth: 11, ok: false},
		{name: "depth 0", depth: 0, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bps, ok := DefaultTierTable.RateAt(tt.depth)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, bps)
		})
	}

	assert.Equal(t, 10, DefaultTierTable.MaxDepth())
	assert.NoError(t, DefaultTierTable.Validate())
}

func TestTierTable_Validate(t *testing.T) {
	overlapping := TierTable{{MinDepth: 1, MaxDepth: 3, BasisPoints: 100}, {MinDepth: 3, MaxDepth: 4, BasisPoints: 100}}
	assert.Error(t, overlapping.Validate())

	tooDeep := TierTable{{MinDepth: 1, MaxDepth: 11, BasisPoints: 100}}
	assert.Error(t, tooDeep.Validate())

	badRate := TierTable{{MinDepth: 1, MaxDepth: 1, BasisPoints: 10_001}}
	assert.Error(t, badRate.Validate())
}

func TestApplyRate(t *testing.T) {
	tests := []struct {
		name     string
		amount   int64
		bps      int64
		expected int64
	}{
		{name: "20 percent of 10000", amount: 10_000, bps: 2000, expected: 2000},
		{name: "10 percent of 10000", amount: 10_000, bps: 1000, expected: 1000},
		{name: "5 percent of 10000", amount: 10_000, bps: 500, expected: 500},
		{name: "rounds half up", amount: 10, bps: 500, expected: 1},
		{name: "rounds down below half", amount: 9, bps: 500, expected: 0},
		{name: "5 percent of 333", amount: 333, bps: 500, expected: 17},
		{name: "zero amount", amount: 0, bps: 2000, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyRate(tt.amount, tt.bps)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := ApplyRate(-1, 2000)
	assert.True(t, errors.Is(err, ErrInvalidAmount))
}

func TestPoolContribution(t *testing.T) {
	got, err := PoolContribution(10_000, DefaultSalesToPoolBps)
	require.NoError(t, err)
	assert.Equal(t, int64(3_000), got)

	got, err = PoolContribution(333, DefaultSalesToPoolBps)
	require.NoError(t, err)
	assert.Equal(t, int64(99), got)
}

func TestPerTokenValue(t *testing.T) {
	value, remainder := PerTokenValue(100_000, 1_000)
	assert.Equal(t, int64(100), value)
	assert.Equal(t, int64(0), remainder)

	value, remainder = PerTokenValue(100_001, 1_000)
	assert.Equal(t, int64(100), value)
	assert.Equal(t, int64(1), remainder)

	value, remainder = PerTokenValue(5_000, 0)
	assert.Equal(t, int64(0), value)
	assert.Equal(t, int64(5_000), remainder)
}

func TestTokenShareBps(t *testing.T) {
	assert.Equal(t, int64(4000), TokenShareBps(400, 1000))
	assert.Equal(t, int64(0), TokenShareBps(400, 0))
	assert.Equal(t, int64(3333), TokenShareBps(1, 3))
}

func TestDaysRemaining(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, int64(10), DaysRemaining(now, now.Add(10*24*time.Hour)))
	assert.Equal(t, int64(1), DaysRemaining(now, now.Add(time.Hour)))
	assert.Equal(t, int64(0), DaysRemaining(now, now.Add(-time.Hour)))
}

func TestStatusTransitions(t *testing.T) {
	assert.True(t, PartnerStatusPending.CanTransitionTo(PartnerStatusActive))
	assert.True(t, PartnerStatusActive.CanTransitionTo(PartnerStatusSuspended))
	assert.True(t, PartnerStatusSuspended.CanTransitionTo(PartnerStatusActive))
	assert.False(t, PartnerStatusExpired.CanTransitionTo(PartnerStatusActive))
	assert.False(t, PartnerStatusActive.CanTransitionTo(PartnerStatusPending))

	assert.True(t, WithdrawalStatusPending.CanTransitionTo(WithdrawalStatusApproved))
	assert.True(t, WithdrawalStatusPending.CanTransitionTo(WithdrawalStatusRejected))
	assert.True(t, WithdrawalStatusApproved.CanTransitionTo(WithdrawalStatusCompleted))
	assert.False(t, WithdrawalStatusPending.CanTransitionTo(WithdrawalStatusCompleted))
	assert.False(t, WithdrawalStatusApproved.CanTransitionTo(WithdrawalStatusRejected))
	assert.False(t, WithdrawalStatusCompleted.CanTransitionTo(WithdrawalStatusRejected))
}
