package domain

import (
	"fmt"
	"math"
	"time"
)

const (
	// MaxReferralDepth is the number of ancestors that take part in commission and pool math
	MaxReferralDepth = 10

	// BasisPointsDenominator is 100% expressed in basis points
	BasisPointsDenominator = 10_000

	// DefaultSalesToPoolBps is the share of a qualifying sale added to the bonus pool
	DefaultSalesToPoolBps = 3_000

	// DefaultCycleLength is the length of a bonus pool cycle
	DefaultCycleLength = 10 * 24 * time.Hour

	// maxRatedAmount keeps amount*bps inside int64
	maxRatedAmount = math.MaxInt64 / BasisPointsDenominator
)

// TierRate applies BasisPoints to ancestors at depths MinDepth..MaxDepth inclusive
type TierRate struct {
	MinDepth    int   `mapstructure:"min_depth" json:"min_depth"`
	MaxDepth    int   `mapstructure:"max_depth" json:"max_depth"`
	BasisPoints int64 `mapstructure:"basis_points" json:"basis_points"`
}

// TierTable maps referral depth to a commission rate
type TierTable []TierRate

// DefaultTierTable pays 20% at depth 1, 10% at depths 2-4 and 5% at depths 5-10
var DefaultTierTable = TierTable{
	{MinDepth: 1, MaxDepth: 1, BasisPoints: 2_000},
	{MinDepth: 2, MaxDepth: 4, BasisPoints: 1_000},
	{MinDepth: 5, MaxDepth: 10, BasisPoints: 500},
}

// RateAt returns the basis points paid at depth, and false when depth is outside the table
func (t TierTable) RateAt(depth int) (int64, bool) {
	for _, r := range t {
		if depth >= r.MinDepth && depth <= r.MaxDepth {
			return r.BasisPoints, true
		}
	}
	return 0, false
}

// MaxDepth returns the deepest depth the table pays
func (t TierTable) MaxDepth() int {
	var depth int
	for _, r := range t {
		depth = max(depth, r.MaxDepth)
	}
	return depth
}

// Validate checks that ranges are well formed, non-overlapping and within MaxReferralDepth
func (t TierTable) Validate() error {
	seen := make(map[int]bool)
	for _, r := range t {
		if r.MinDepth < 1 || r.MaxDepth < r.MinDepth || r.MaxDepth > MaxReferralDepth {
			return fmt.Errorf("invalid tier range %d-%d", r.MinDepth, r.MaxDepth)
		}
		if r.BasisPoints < 0 || r.BasisPoints > BasisPointsDenominator {
			return fmt.Errorf("invalid tier rate %d bps", r.BasisPoints)
		}
		for d := r.MinDepth; d <= r.MaxDepth; d++ {
			if seen[d] {
				return fmt.Errorf("depth %d covered by more than one tier", d)
			}
			seen[d] = true
		}
	}
	return nil
}

// ApplyRate returns amount*bps/10000 rounded half up, in integer minor units
func ApplyRate(amount, bps int64) (int64, error) {
	if amount < 0 || amount > maxRatedAmount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	return (amount*bps + BasisPointsDenominator/2) / BasisPointsDenominator, nil
}

// PoolContribution returns the share of a sale added to the bonus pool, rounded down
func PoolContribution(amount, ratioBps int64) (int64, error) {
	if amount < 0 || amount > maxRatedAmount {
		return 0, fmt.Errorf("%w: %d", ErrInvalidAmount, amount)
	}
	return amount * ratioBps / BasisPointsDenominator, nil
}

// PerTokenValue divides the pool evenly across tokens.
// The remainder stays with the pool; zero tokens yields a zero value and the whole pool as remainder.
func PerTokenValue(pool, totalTokens int64) (value int64, remainder int64) {
	if totalTokens <= 0 || pool <= 0 {
		return 0, pool
	}
	value = pool / totalTokens
	return value, pool - value*totalTokens
}

// TokenShareBps returns held/total in basis points, rounded down
func TokenShareBps(held, total int64) int64 {
	if total <= 0 || held <= 0 {
		return 0
	}
	return held * BasisPointsDenominator / total
}

// DaysRemaining returns the whole days left until end, rounded up, never negative
func DaysRemaining(now, end time.Time) int64 {
	left := end.Sub(now)
	if left <= 0 {
		return 0
	}
	day := 24 * time.Hour
	return int64((left + day - 1) / day)
}
