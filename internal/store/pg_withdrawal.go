package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// CreateWithdrawal reserves cash for a new pending request.
// The availability check and the insert run under the cash account lock, so concurrent requests
// for one partner see each other's reservations.
func (s *pgStore) CreateWithdrawal(ctx context.Context, input CreateWithdrawalInput) (*schema.WithdrawalRequest, error) {
	if input.Amount <= 0 {
		return nil, fmt.Errorf("%w: %d", domain.ErrInvalidAmount, input.Amount)
	}
	if input.ID == uuid.Nil {
		input.ID = uuid.New()
	}

	var request schema.WithdrawalRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		account, err := lockAccount(tx, input.PartnerID, domain.AccountCash)
		if err != nil {
			return err
		}
		if account.Frozen {
			return fmt.Errorf("%w: %s/%s", domain.ErrAccountFrozen, input.PartnerID, domain.AccountCash)
		}

		reserved, err := outstandingWithdrawals(tx, input.PartnerID)
		if err != nil {
			return err
		}

		available := account.Balance - reserved
		if input.Amount > available {
			return fmt.Errorf("%w: requested %d, available %d", domain.ErrInsufficientBalance, input.Amount, available)
		}

		request = schema.WithdrawalRequest{
			ID:        input.ID,
			PartnerID: input.PartnerID,
			Amount:    input.Amount,
			Status:    domain.WithdrawalStatusPending,
		}
		if err := tx.Create(&request).Error; err != nil {
			return fmt.Errorf("failed to create withdrawal request: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &request, nil
}

// GetWithdrawal retrieves a withdrawal request
func (s *pgStore) GetWithdrawal(ctx context.Context, id uuid.UUID) (*schema.WithdrawalRequest, error) {
	var request schema.WithdrawalRequest
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get withdrawal request: %w", err)
	}

	return &request, nil
}

// ListWithdrawals lists a partner's requests newest-first
func (s *pgStore) ListWithdrawals(ctx context.Context, filter WithdrawalFilter) ([]schema.WithdrawalRequest, int64, error) {
	limit, offset := normalizePage(filter.Limit, filter.Offset)

	query := s.db.WithContext(ctx).Model(&schema.WithdrawalRequest{}).Where("partner_id = ?", filter.PartnerID)
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count withdrawal requests: %w", err)
	}

	var requests []schema.WithdrawalRequest
	if err := query.Order("created_at DESC, id DESC").Limit(limit).Offset(offset).Find(&requests).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list withdrawal requests: %w", err)
	}

	return requests, total, nil
}

// TransitionWithdrawal moves a request to a new status.
// Completion is the only transition that moves money: it appends the cash debit in the same transaction.
func (s *pgStore) TransitionWithdrawal(ctx context.Context, input TransitionWithdrawalInput) (*schema.WithdrawalRequest, error) {
	var request schema.WithdrawalRequest
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", input.ID).First(&request).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrWithdrawalNotFound, input.ID)
			}
			return fmt.Errorf("failed to lock withdrawal request: %w", err)
		}

		if !request.Status.CanTransitionTo(input.To) {
			return fmt.Errorf("%w: withdrawal %s -> %s", domain.ErrInvalidTransition, request.Status, input.To)
		}

		updates := map[string]interface{}{
			"status": input.To,
		}

		switch input.To {
		case domain.WithdrawalStatusRejected:
			if input.Reason != nil {
				updates["reject_reason"] = *input.Reason
			}
		case domain.WithdrawalStatusCompleted:
			entry, err := appendInTx(tx, AppendEntryInput{
				PartnerID:   request.PartnerID,
				AccountKind: domain.AccountCash,
				Delta:       -request.Amount,
				Reason:      domain.ReasonWithdrawal,
				ReferenceID: fmt.Sprintf("withdrawal:%s", request.ID),
			})
			if err != nil && !errors.Is(err, domain.ErrDuplicateEvent) {
				return fmt.Errorf("failed to debit withdrawal: %w", err)
			}
			if entry == nil {
				return fmt.Errorf("withdrawal %s debit returned no ledger entry", request.ID)
			}
			updates["ledger_entry_id"] = entry.ID
		}

		if err := tx.Model(&request).Updates(updates).Error; err != nil {
			return fmt.Errorf("failed to update withdrawal request: %w", err)
		}

		return tx.Where("id = ?", input.ID).First(&request).Error
	})
	if err != nil {
		return nil, err
	}

	return &request, nil
}
