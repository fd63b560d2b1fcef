package schema

import (
	"time"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// BonusPoolCycle represents the bonus_pool_cycles table.
// A partial unique index keeps exactly one active cycle.
type BonusPoolCycle struct {
	// ID is the internal database primary key
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// CycleNumber is sequential starting at 1
	CycleNumber int64 `gorm:"column:cycle_number;not null;uniqueIndex:idx_bonus_pool_cycles_number"`
	// StartsAt is the beginning of the cycle window
	StartsAt time.Time `gorm:"column:starts_at;not null;type:timestamptz"`
	// EndsAt is the moment the cycle becomes due for settlement
	EndsAt time.Time `gorm:"column:ends_at;not null;type:timestamptz"`
	// Status is active or settled
	Status domain.CycleStatus `gorm:"column:status;not null;type:text"`
	// PoolAmount is the accumulated pool in minor units
	PoolAmount int64 `gorm:"column:pool_amount;not null;default:0"`
	// TotalTokens is the number of RWA tokens issued during the cycle
	TotalTokens int64 `gorm:"column:total_tokens;not null;default:0"`
	// SalesTotal is the qualifying sales attributed to the cycle
	SalesTotal int64 `gorm:"column:sales_total;not null;default:0"`
	// PerTokenValue is frozen at settlement
	PerTokenValue *int64 `gorm:"column:per_token_value"`
	// ParticipatingPartners is frozen at settlement
	ParticipatingPartners *int64 `gorm:"column:participating_partners"`
	// Remainder is the part of the pool not divisible across tokens
	Remainder *int64 `gorm:"column:remainder"`
	// CarriedIn is the remainder carried over from the previous cycle
	CarriedIn int64 `gorm:"column:carried_in;not null;default:0"`
	// SettledAt is set when the cycle is settled
	SettledAt *time.Time `gorm:"column:settled_at;type:timestamptz"`
	// CreatedAt is the timestamp when this cycle was opened
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this cycle was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the BonusPoolCycle model
func (BonusPoolCycle) TableName() string {
	return "bonus_pool_cycles"
}
