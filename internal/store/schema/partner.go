package schema

import (
	"time"

	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// Partner represents the partners table - participants of the referral program.
// Rows are never deleted; suspension and expiry are status changes.
type Partner struct {
	// ID is issued by the identity subsystem
	ID uuid.UUID `gorm:"column:id;primaryKey;type:uuid"`
	// ReferrerID is the direct sponsor, nil for a forest root
	ReferrerID *uuid.UUID `gorm:"column:referrer_id;type:uuid;index:idx_partners_referrer_id"`
	// Tier is the enrollment package level
	Tier int `gorm:"column:tier;not null;default:0"`
	// Status is the enrollment status (pending, active, suspended, expired)
	Status domain.PartnerStatus `gorm:"column:status;not null;type:text"`
	// ReferralCode is the public code other partners sign up with
	ReferralCode string `gorm:"column:referral_code;not null;type:text;uniqueIndex:idx_partners_referral_code"`
	// CreatedAt is the timestamp when this partner was created
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
	// UpdatedAt is the timestamp when this partner was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;not null;default:now();type:timestamptz"`

	// Associations
	Accounts []PartnerAccount `gorm:"foreignKey:PartnerID"`
}

// TableName specifies the table name for the Partner model
func (Partner) TableName() string {
	return "partners"
}

// Balance returns the cached balance of the given account, 0 when the account is not loaded
func (p Partner) Balance(kind domain.AccountKind) int64 {
	for _, a := range p.Accounts {
		if a.AccountKind == kind {
			return a.Balance
		}
	}
	return 0
}
