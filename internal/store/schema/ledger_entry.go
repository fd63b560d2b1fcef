package schema

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// LedgerEntry represents the ledger_entries table - the immutable, append-only balance log.
// Corrections are new entries; rows are never updated or deleted.
type LedgerEntry struct {
	// ID orders entries of one account in the order they were applied
	ID int64 `gorm:"column:id;primaryKey;autoIncrement"`
	// PartnerID references the account owner
	PartnerID uuid.UUID `gorm:"column:partner_id;not null;type:uuid;uniqueIndex:idx_ledger_entries_reference,priority:1;index:idx_ledger_entries_account,priority:1"`
	// AccountKind is ly, cash or rwa
	AccountKind domain.AccountKind `gorm:"column:account_kind;not null;type:text;uniqueIndex:idx_ledger_entries_reference,priority:2;index:idx_ledger_entries_account,priority:2"`
	// Delta is the signed change applied to the balance
	Delta int64 `gorm:"column:delta;not null"`
	// BalanceAfter is the account balance once Delta is applied
	BalanceAfter int64 `gorm:"column:balance_after;not null"`
	// Reason is the reason code of the movement
	Reason domain.ReasonCode `gorm:"column:reason;not null;type:text;uniqueIndex:idx_ledger_entries_reference,priority:3"`
	// ReferenceID points at the triggering event, order, cycle or withdrawal
	ReferenceID string `gorm:"column:reference_id;not null;type:text;uniqueIndex:idx_ledger_entries_reference,priority:4;index:idx_ledger_entries_reference_id"`
	// Metadata carries context such as referral depth and applied rate
	Metadata datatypes.JSONMap `gorm:"column:metadata;type:jsonb"`
	// CreatedAt is the timestamp when the entry was written
	CreatedAt time.Time `gorm:"column:created_at;not null;default:now();type:timestamptz"`
}

// TableName specifies the table name for the LedgerEntry model
func (LedgerEntry) TableName() string {
	return "ledger_entries"
}
