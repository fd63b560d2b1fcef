package store

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// lockAccount locks one (partner, account kind) row until the transaction ends
func lockAccount(tx *gorm.DB, partnerID uuid.UUID, kind domain.AccountKind) (*schema.PartnerAccount, error) {
	var account schema.PartnerAccount
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("partner_id = ? AND account_kind = ?", partnerID, kind).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrPartnerNotFound, partnerID)
		}
		return nil, fmt.Errorf("failed to lock account: %w", err)
	}

	return &account, nil
}

// outstandingWithdrawals sums the cash reserved by pending and approved withdrawal requests
func outstandingWithdrawals(tx *gorm.DB, partnerID uuid.UUID) (int64, error) {
	var reserved int64
	err := tx.Model(&schema.WithdrawalRequest{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("partner_id = ? AND status IN ?", partnerID,
			[]domain.WithdrawalStatus{domain.WithdrawalStatusPending, domain.WithdrawalStatusApproved}).
		Scan(&reserved).Error
	if err != nil {
		return 0, fmt.Errorf("failed to sum outstanding withdrawals: %w", err)
	}

	return reserved, nil
}

// appendInTx appends one entry under the account row lock.
// A replay of the same (partner, kind, reason, reference) returns the stored entry and ErrDuplicateEvent.
func appendInTx(tx *gorm.DB, input AppendEntryInput) (*schema.LedgerEntry, error) {
	if !input.AccountKind.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidAccountKind, input.AccountKind)
	}
	if input.Delta == 0 {
		return nil, fmt.Errorf("%w: zero delta", domain.ErrInvalidAmount)
	}
	if input.ReferenceID == "" {
		return nil, errors.New("reference id is required")
	}

	account, err := lockAccount(tx, input.PartnerID, input.AccountKind)
	if err != nil {
		return nil, err
	}

	var existing schema.LedgerEntry
	err = tx.Where("partner_id = ? AND account_kind = ? AND reason = ? AND reference_id = ?",
		input.PartnerID, input.AccountKind, input.Reason, input.ReferenceID).
		First(&existing).Error
	if err == nil {
		return &existing, domain.ErrDuplicateEvent
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing entry: %w", err)
	}

	balanceAfter := account.Balance + input.Delta
	if input.Delta < 0 {
		if account.Frozen && !input.Reason.BypassesFreeze() {
			return nil, fmt.Errorf("%w: %s/%s", domain.ErrAccountFrozen, input.PartnerID, input.AccountKind)
		}

		negativeAllowed := input.AccountKind != domain.AccountRWA && input.Reason.AllowsNegativeBalance()
		if balanceAfter < 0 && !negativeAllowed {
			return nil, fmt.Errorf("%w: balance %d, delta %d", domain.ErrInsufficientBalance, account.Balance, input.Delta)
		}

		// Withdrawal reservations hold even against other cash debits
		if input.AccountKind == domain.AccountCash && input.Reason != domain.ReasonWithdrawal && !negativeAllowed {
			reserved, err := outstandingWithdrawals(tx, input.PartnerID)
			if err != nil {
				return nil, err
			}
			if balanceAfter < reserved {
				return nil, fmt.Errorf("%w: balance %d, reserved %d, delta %d",
					domain.ErrInsufficientBalance, account.Balance, reserved, input.Delta)
			}
		}
	}

	entry := schema.LedgerEntry{
		PartnerID:    input.PartnerID,
		AccountKind:  input.AccountKind,
		Delta:        input.Delta,
		BalanceAfter: balanceAfter,
		Reason:       input.Reason,
		ReferenceID:  input.ReferenceID,
		Metadata:     input.Metadata,
	}
	if err := tx.Clauses(clause.Returning{}).Create(&entry).Error; err != nil {
		return nil, fmt.Errorf("failed to insert ledger entry: %w", err)
	}

	if err := tx.Model(&schema.PartnerAccount{}).
		Where("partner_id = ? AND account_kind = ?", input.PartnerID, input.AccountKind).
		Update("balance", balanceAfter).Error; err != nil {
		return nil, fmt.Errorf("failed to update cached balance: %w", err)
	}

	return &entry, nil
}

// sortForLocking orders entries by (partner, account kind) so concurrent multi-account writers lock in the same order
func sortForLocking(entries []AppendEntryInput) []AppendEntryInput {
	sorted := make([]AppendEntryInput, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		if c := bytes.Compare(sorted[i].PartnerID[:], sorted[j].PartnerID[:]); c != 0 {
			return c < 0
		}
		return sorted[i].AccountKind < sorted[j].AccountKind
	})
	return sorted
}

// markEventProcessed records an event id for a scope.
// It returns false when the event was already recorded with the same payload hash.
func markEventProcessed(tx *gorm.DB, eventID string, scope domain.EventScope, payloadHash string) (bool, error) {
	if eventID == "" {
		return false, errors.New("event id is required")
	}

	processed := schema.ProcessedEvent{
		EventID:     eventID,
		Scope:       scope,
		PayloadHash: payloadHash,
	}
	result := tx.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "event_id"}, {Name: "scope"}},
		DoNothing: true,
	}).Create(&processed)
	if result.Error != nil {
		return false, fmt.Errorf("failed to record processed event: %w", result.Error)
	}
	if result.RowsAffected == 1 {
		return true, nil
	}

	var existing schema.ProcessedEvent
	if err := tx.Where("event_id = ? AND scope = ?", eventID, scope).First(&existing).Error; err != nil {
		return false, fmt.Errorf("failed to load processed event: %w", err)
	}
	if existing.PayloadHash != payloadHash {
		return false, fmt.Errorf("%w: %s", domain.ErrEventPayloadMismatch, eventID)
	}

	return false, nil
}

// AppendEntry appends one entry and updates the cached balance atomically
func (s *pgStore) AppendEntry(ctx context.Context, input AppendEntryInput) (*schema.LedgerEntry, error) {
	var entry *schema.LedgerEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		entry, err = appendInTx(tx, input)
		return err
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			return entry, err
		}
		return nil, err
	}

	return entry, nil
}

// ApplyDistribution records an event as processed and appends all of its entries in one transaction.
// A replayed event returns the entries written the first time together with ErrDuplicateEvent.
func (s *pgStore) ApplyDistribution(ctx context.Context, input ApplyDistributionInput) ([]schema.LedgerEntry, error) {
	var entries []schema.LedgerEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inserted, err := markEventProcessed(tx, input.EventID, input.Scope, input.PayloadHash)
		if err != nil {
			return err
		}
		if !inserted {
			if err := tx.Where("reference_id = ?", input.EventID).Order("id ASC").Find(&entries).Error; err != nil {
				return fmt.Errorf("failed to load distributed entries: %w", err)
			}
			return domain.ErrDuplicateEvent
		}

		for _, e := range sortForLocking(input.Entries) {
			entry, err := appendInTx(tx, e)
			if err != nil && !errors.Is(err, domain.ErrDuplicateEvent) {
				return fmt.Errorf("failed to append entry for %s: %w", e.PartnerID, err)
			}
			entries = append(entries, *entry)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			return entries, err
		}
		return nil, err
	}

	return entries, nil
}

// GetBalance returns the cached balance of an account
func (s *pgStore) GetBalance(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind) (int64, error) {
	var account schema.PartnerAccount
	err := s.db.WithContext(ctx).
		Where("partner_id = ? AND account_kind = ?", partnerID, kind).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, fmt.Errorf("%w: %s", domain.ErrPartnerNotFound, partnerID)
		}
		return 0, fmt.Errorf("failed to get balance: %w", err)
	}

	return account.Balance, nil
}

// GetAvailableCash returns the cash balance minus outstanding withdrawal reservations
func (s *pgStore) GetAvailableCash(ctx context.Context, partnerID uuid.UUID) (int64, error) {
	balance, err := s.GetBalance(ctx, partnerID, domain.AccountCash)
	if err != nil {
		return 0, err
	}

	reserved, err := outstandingWithdrawals(s.db.WithContext(ctx), partnerID)
	if err != nil {
		return 0, err
	}

	return balance - reserved, nil
}

// ListLedgerEntries returns entries newest-first along with the total count
func (s *pgStore) ListLedgerEntries(ctx context.Context, filter LedgerEntryFilter) ([]schema.LedgerEntry, int64, error) {
	limit, offset := normalizePage(filter.Limit, filter.Offset)

	query := s.db.WithContext(ctx).Model(&schema.LedgerEntry{}).
		Where("partner_id = ? AND account_kind = ?", filter.PartnerID, filter.AccountKind)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count ledger entries: %w", err)
	}

	var entries []schema.LedgerEntry
	if err := query.Order("id DESC").Limit(limit).Offset(offset).Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list ledger entries: %w", err)
	}

	return entries, total, nil
}

// GetEntriesByReference returns every entry written for a reference id
func (s *pgStore) GetEntriesByReference(ctx context.Context, referenceID string) ([]schema.LedgerEntry, error) {
	var entries []schema.LedgerEntry
	err := s.db.WithContext(ctx).Where("reference_id = ?", referenceID).Order("id ASC").Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get entries by reference: %w", err)
	}

	return entries, nil
}

// FindBalanceDrift compares cached balances with ledger sums for the next batch of partners after the cursor
func (s *pgStore) FindBalanceDrift(ctx context.Context, afterPartnerID uuid.UUID, limit int) (*DriftBatch, error) {
	if limit <= 0 {
		limit = 500
	}

	var partnerIDs []uuid.UUID
	err := s.db.WithContext(ctx).Model(&schema.Partner{}).
		Where("id > ?", afterPartnerID).
		Order("id ASC").
		Limit(limit).
		Pluck("id", &partnerIDs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list partners for reconciliation: %w", err)
	}

	batch := &DriftBatch{Checked: len(partnerIDs)}
	if len(partnerIDs) == 0 {
		return batch, nil
	}
	batch.LastPartnerID = partnerIDs[len(partnerIDs)-1]

	err = s.db.WithContext(ctx).Raw(`
		SELECT a.partner_id, a.account_kind, a.balance AS cached_balance, COALESCE(SUM(e.delta), 0) AS ledger_sum
		FROM partner_accounts a
		LEFT JOIN ledger_entries e ON e.partner_id = a.partner_id AND e.account_kind = a.account_kind
		WHERE a.partner_id IN ?
		GROUP BY a.partner_id, a.account_kind, a.balance
		HAVING a.balance <> COALESCE(SUM(e.delta), 0)
		ORDER BY a.partner_id, a.account_kind
	`, partnerIDs).Scan(&batch.Drifts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance drift: %w", err)
	}

	return batch, nil
}

// CheckAccountBalance re-derives one account's ledger sum under its lock
func (s *pgStore) CheckAccountBalance(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind) (*domain.BalanceDrift, error) {
	var drift *domain.BalanceDrift
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, partnerID, kind)
		if err != nil {
			return err
		}

		var sum int64
		err = tx.Model(&schema.LedgerEntry{}).
			Select("COALESCE(SUM(delta), 0)").
			Where("partner_id = ? AND account_kind = ?", partnerID, kind).
			Scan(&sum).Error
		if err != nil {
			return fmt.Errorf("failed to sum ledger entries: %w", err)
		}

		if sum != account.Balance {
			drift = &domain.BalanceDrift{
				PartnerID:     partnerID,
				AccountKind:   kind,
				CachedBalance: account.Balance,
				LedgerSum:     sum,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return drift, nil
}

// FreezeAccount blocks further debits on an account
func (s *pgStore) FreezeAccount(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind, reason string) error {
	result := s.db.WithContext(ctx).Model(&schema.PartnerAccount{}).
		Where("partner_id = ? AND account_kind = ?", partnerID, kind).
		Updates(map[string]interface{}{
			"frozen":        true,
			"frozen_reason": reason,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to freeze account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPartnerNotFound, partnerID)
	}

	return nil
}

// UnfreezeAccount lifts a freeze after manual reconciliation
func (s *pgStore) UnfreezeAccount(ctx context.Context, partnerID uuid.UUID, kind domain.AccountKind) error {
	result := s.db.WithContext(ctx).Model(&schema.PartnerAccount{}).
		Where("partner_id = ? AND account_kind = ?", partnerID, kind).
		Updates(map[string]interface{}{
			"frozen":        false,
			"frozen_reason": nil,
		})
	if result.Error != nil {
		return fmt.Errorf("failed to unfreeze account: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", domain.ErrPartnerNotFound, partnerID)
	}

	return nil
}
