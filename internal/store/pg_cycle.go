package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// lockActiveCycle locks the active cycle row.
// A settlement committing while we wait flips the row to settled, so the lookup is retried once
// with a fresh snapshot to pick up the cycle it opened.
func lockActiveCycle(tx *gorm.DB) (*schema.BonusPoolCycle, error) {
	for range 2 {
		var cycle schema.BonusPoolCycle
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("status = ?", domain.CycleStatusActive).
			First(&cycle).Error
		if err == nil {
			return &cycle, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to lock active cycle: %w", err)
		}
	}

	return nil, domain.ErrNoActiveCycle
}

// EnsureActiveCycle returns the active cycle, opening the next cycle when none is active
func (s *pgStore) EnsureActiveCycle(ctx context.Context, startsAt time.Time, length time.Duration) (*schema.BonusPoolCycle, error) {
	if length <= 0 {
		return nil, fmt.Errorf("invalid cycle length %s", length)
	}

	var cycle schema.BonusPoolCycle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("status = ?", domain.CycleStatusActive).First(&cycle).Error
		if err == nil {
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to get active cycle: %w", err)
		}

		var lastNumber int64
		if err := tx.Model(&schema.BonusPoolCycle{}).
			Select("COALESCE(MAX(cycle_number), 0)").
			Scan(&lastNumber).Error; err != nil {
			return fmt.Errorf("failed to get last cycle number: %w", err)
		}

		cycle = schema.BonusPoolCycle{
			CycleNumber: lastNumber + 1,
			StartsAt:    startsAt.UTC(),
			EndsAt:      startsAt.UTC().Add(length),
			Status:      domain.CycleStatusActive,
		}
		if err := tx.Create(&cycle).Error; err != nil {
			return fmt.Errorf("failed to open cycle: %w", err)
		}

		return nil
	})
	if err != nil {
		// Another worker opened the cycle first
		if isUniqueViolation(err) {
			active, getErr := s.GetActiveCycle(ctx)
			if getErr != nil {
				return nil, getErr
			}
			if active != nil {
				return active, nil
			}
		}
		return nil, err
	}

	return &cycle, nil
}

// GetActiveCycle returns the active cycle
func (s *pgStore) GetActiveCycle(ctx context.Context) (*schema.BonusPoolCycle, error) {
	var cycle schema.BonusPoolCycle
	err := s.db.WithContext(ctx).Where("status = ?", domain.CycleStatusActive).First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active cycle: %w", err)
	}

	return &cycle, nil
}

// GetCycleByNumber returns a cycle by its sequential number
func (s *pgStore) GetCycleByNumber(ctx context.Context, number int64) (*schema.BonusPoolCycle, error) {
	var cycle schema.BonusPoolCycle
	err := s.db.WithContext(ctx).Where("cycle_number = ?", number).First(&cycle).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get cycle: %w", err)
	}

	return &cycle, nil
}

// AccumulateSales adds a sale's pool contribution to the active cycle, once per order id
func (s *pgStore) AccumulateSales(ctx context.Context, input AccumulateSalesInput) (*schema.BonusPoolCycle, error) {
	if input.Amount <= 0 || input.Contribution < 0 {
		return nil, fmt.Errorf("%w: amount %d, contribution %d", domain.ErrInvalidAmount, input.Amount, input.Contribution)
	}

	var cycle *schema.BonusPoolCycle
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		inserted, err := markEventProcessed(tx, input.OrderID, domain.EventScopePoolSales, input.PayloadHash)
		if err != nil {
			return err
		}
		if !inserted {
			return domain.ErrDuplicateEvent
		}

		cycle, err = lockActiveCycle(tx)
		if err != nil {
			return err
		}

		err = tx.Model(cycle).Updates(map[string]interface{}{
			"pool_amount": gorm.Expr("pool_amount + ?", input.Contribution),
			"sales_total": gorm.Expr("sales_total + ?", input.Amount),
		}).Error
		if err != nil {
			return fmt.Errorf("failed to accumulate sales: %w", err)
		}

		return tx.Where("id = ?", cycle.ID).First(cycle).Error
	})
	if err != nil {
		return nil, err
	}

	return cycle, nil
}

// IssueTokens credits rwa tokens and increments the active cycle's token total in one transaction.
// The ledger reference (source:referenceID) makes a replay a no-op.
func (s *pgStore) IssueTokens(ctx context.Context, input IssueTokensInput) (*schema.LedgerEntry, error) {
	if input.Count <= 0 {
		return nil, fmt.Errorf("%w: token count %d", domain.ErrInvalidAmount, input.Count)
	}
	if !input.Source.Valid() {
		return nil, fmt.Errorf("invalid token source %q", input.Source)
	}

	var entry *schema.LedgerEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		cycle, err := lockActiveCycle(tx)
		if err != nil {
			return err
		}

		entry, err = appendInTx(tx, AppendEntryInput{
			PartnerID:   input.PartnerID,
			AccountKind: domain.AccountRWA,
			Delta:       input.Count,
			Reason:      domain.ReasonTokenIssuance,
			ReferenceID: fmt.Sprintf("%s:%s", input.Source, input.ReferenceID),
			Metadata: map[string]interface{}{
				"source":       string(input.Source),
				"cycle_number": cycle.CycleNumber,
			},
		})
		if err != nil {
			return err
		}

		if err := tx.Model(cycle).Update("total_tokens", gorm.Expr("total_tokens + ?", input.Count)).Error; err != nil {
			return fmt.Errorf("failed to increment cycle tokens: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			return entry, err
		}
		return nil, err
	}

	return entry, nil
}

type settlementHolder struct {
	account schema.PartnerAccount
	tokens  int64
}

// SettleCycle settles the given active cycle and opens the next one in one transaction.
// A concurrent settler of the same cycle gets ErrSettlementInProgress; a settler arriving after commit
// gets ErrCycleAlreadySettled. Either way each holder is paid exactly once.
func (s *pgStore) SettleCycle(ctx context.Context, input SettleCycleInput) (*SettlementResult, error) {
	if input.NextLength <= 0 {
		return nil, fmt.Errorf("invalid cycle length %s", input.NextLength)
	}

	var result SettlementResult
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var acquired bool
		if err := tx.Raw("SELECT pg_try_advisory_xact_lock(?::int, ?::int)", settlementLockClass, input.CycleID).
			Scan(&acquired).Error; err != nil {
			return fmt.Errorf("failed to acquire settlement lock: %w", err)
		}
		if !acquired {
			return fmt.Errorf("%w: cycle %d", domain.ErrSettlementInProgress, input.CycleID)
		}

		var cycle schema.BonusPoolCycle
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", input.CycleID).First(&cycle).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %d", domain.ErrCycleNotFound, input.CycleID)
			}
			return fmt.Errorf("failed to lock cycle: %w", err)
		}
		if cycle.Status == domain.CycleStatusSettled {
			return fmt.Errorf("%w: cycle %d", domain.ErrCycleAlreadySettled, cycle.CycleNumber)
		}

		// Lock cash before rwa for every holder, in partner order
		var accounts []schema.PartnerAccount
		if err := tx.Where("account_kind = ? AND balance > 0", domain.AccountRWA).
			Order("partner_id ASC").
			Find(&accounts).Error; err != nil {
			return fmt.Errorf("failed to list token holders: %w", err)
		}

		holders := make([]settlementHolder, 0, len(accounts))
		var heldTokens int64
		for _, a := range accounts {
			if _, err := lockAccount(tx, a.PartnerID, domain.AccountCash); err != nil {
				return err
			}
			locked, err := lockAccount(tx, a.PartnerID, domain.AccountRWA)
			if err != nil {
				return err
			}
			if locked.Balance <= 0 {
				continue
			}
			holders = append(holders, settlementHolder{account: *locked, tokens: locked.Balance})
			heldTokens += locked.Balance
		}

		// Never pay out more than the pool, even if rwa balances were adjusted outside issuance
		divisor := max(cycle.TotalTokens, heldTokens)
		perTokenValue, _ := domain.PerTokenValue(cycle.PoolAmount, divisor)
		reference := fmt.Sprintf("cycle:%d", cycle.ID)

		var totalPaid int64
		for _, h := range holders {
			if dividend := h.tokens * perTokenValue; dividend > 0 {
				_, err := appendInTx(tx, AppendEntryInput{
					PartnerID:   h.account.PartnerID,
					AccountKind: domain.AccountCash,
					Delta:       dividend,
					Reason:      domain.ReasonPoolDividend,
					ReferenceID: reference,
					Metadata: map[string]interface{}{
						"cycle_number":    cycle.CycleNumber,
						"tokens":          h.tokens,
						"per_token_value": perTokenValue,
					},
				})
				if err != nil && !errors.Is(err, domain.ErrDuplicateEvent) {
					return fmt.Errorf("failed to credit dividend to %s: %w", h.account.PartnerID, err)
				}
				totalPaid += dividend
			}

			_, err := appendInTx(tx, AppendEntryInput{
				PartnerID:   h.account.PartnerID,
				AccountKind: domain.AccountRWA,
				Delta:       -h.tokens,
				Reason:      domain.ReasonCycleRollover,
				ReferenceID: reference,
				Metadata: map[string]interface{}{
					"cycle_number": cycle.CycleNumber,
				},
			})
			if err != nil && !errors.Is(err, domain.ErrDuplicateEvent) {
				return fmt.Errorf("failed to roll over tokens of %s: %w", h.account.PartnerID, err)
			}
		}

		// The pool not paid out includes tokens held by nobody (e.g. adjusted away)
		remainder := cycle.PoolAmount - totalPaid
		participants := int64(len(holders))
		settledAt := input.SettledAt.UTC()

		update := tx.Model(&schema.BonusPoolCycle{}).
			Where("id = ? AND status = ?", cycle.ID, domain.CycleStatusActive).
			Updates(map[string]interface{}{
				"status":                 domain.CycleStatusSettled,
				"per_token_value":        perTokenValue,
				"participating_partners": participants,
				"remainder":              remainder,
				"settled_at":             settledAt,
			})
		if update.Error != nil {
			return fmt.Errorf("failed to mark cycle settled: %w", update.Error)
		}
		if update.RowsAffected != 1 {
			return fmt.Errorf("%w: cycle %d", domain.ErrCycleAlreadySettled, cycle.CycleNumber)
		}

		nextStart := cycle.EndsAt.UTC()
		if nextStart.Add(input.NextLength).Before(settledAt) {
			nextStart = settledAt
		}
		next := schema.BonusPoolCycle{
			CycleNumber: cycle.CycleNumber + 1,
			StartsAt:    nextStart,
			EndsAt:      nextStart.Add(input.NextLength),
			Status:      domain.CycleStatusActive,
		}
		if input.CarryRemainder {
			next.PoolAmount = remainder
			next.CarriedIn = remainder
		}
		if err := tx.Create(&next).Error; err != nil {
			return fmt.Errorf("failed to open next cycle: %w", err)
		}

		if err := tx.Where("id = ?", cycle.ID).First(&cycle).Error; err != nil {
			return fmt.Errorf("failed to reload settled cycle: %w", err)
		}

		result = SettlementResult{
			Settled:       cycle,
			Next:          next,
			PerTokenValue: perTokenValue,
			Remainder:     remainder,
			Participants:  participants,
			TotalPaid:     totalPaid,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &result, nil
}
