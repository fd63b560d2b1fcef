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

// unboundedWalk caps the acyclicity walk; the forest is acyclic so it only guards against corrupted data
const unboundedWalk = 1_000_000

const ancestorsQuery = `
	WITH RECURSIVE chain AS (
		SELECT p.referrer_id AS partner_id, 1 AS depth
		FROM partners p
		WHERE p.id = ? AND p.referrer_id IS NOT NULL
		UNION ALL
		SELECT p.referrer_id, c.depth + 1
		FROM chain c
		JOIN partners p ON p.id = c.partner_id
		WHERE p.referrer_id IS NOT NULL AND c.depth < ?
	)
	SELECT c.partner_id, c.depth, p.status
	FROM chain c
	JOIN partners p ON p.id = c.partner_id
	ORDER BY c.depth`

const descendantsQuery = `
	WITH RECURSIVE downline AS (
		SELECT p.id AS partner_id, p.referrer_id, 1 AS depth, p.status
		FROM partners p
		WHERE p.referrer_id = ?
		UNION ALL
		SELECT p.id, p.referrer_id, d.depth + 1, p.status
		FROM partners p
		JOIN downline d ON p.referrer_id = d.partner_id
		WHERE d.depth < ?
	)
	SELECT partner_id, referrer_id, depth, status
	FROM downline
	ORDER BY depth, partner_id`

const levelCountsQuery = `
	WITH RECURSIVE downline AS (
		SELECT p.id AS partner_id, 1 AS depth
		FROM partners p
		WHERE p.referrer_id = ?
		UNION ALL
		SELECT p.id, d.depth + 1
		FROM partners p
		JOIN downline d ON p.referrer_id = d.partner_id
		WHERE d.depth < ?
	)
	SELECT depth, COUNT(*) AS count
	FROM downline
	GROUP BY depth
	ORDER BY depth`

// CreatePartner creates a partner with its three empty accounts and, when given, its referral edge.
// With an EventID the enrollment is recorded once; a replay returns the partner with ErrDuplicateEvent.
func (s *pgStore) CreatePartner(ctx context.Context, input CreatePartnerInput) (*schema.Partner, error) {
	if input.Status == "" {
		input.Status = domain.PartnerStatusPending
	}
	if input.ReferralCode == "" {
		return nil, errors.New("referral code is required")
	}

	var partner schema.Partner
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if input.EventID != "" {
			inserted, err := markEventProcessed(tx, input.EventID, domain.EventScopePartnerJoined, input.PayloadHash)
			if err != nil {
				return err
			}
			if !inserted {
				return domain.ErrDuplicateEvent
			}
		}

		partner = schema.Partner{
			ID:           input.ID,
			Tier:         input.Tier,
			Status:       input.Status,
			ReferralCode: input.ReferralCode,
		}

		// Conflicts on either the id or the referral code
		result := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&partner)
		if result.Error != nil {
			return fmt.Errorf("failed to create partner: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", domain.ErrPartnerAlreadyExists, input.ID)
		}

		accounts := make([]schema.PartnerAccount, 0, len(domain.AccountKinds))
		for _, kind := range domain.AccountKinds {
			accounts = append(accounts, schema.PartnerAccount{PartnerID: input.ID, AccountKind: kind})
		}
		if err := tx.Create(&accounts).Error; err != nil {
			return fmt.Errorf("failed to create partner accounts: %w", err)
		}

		if input.ReferrerID != nil {
			if err := assignReferrerInTx(tx, input.ID, *input.ReferrerID); err != nil {
				return err
			}
		}

		return tx.Preload("Accounts").Where("id = ?", input.ID).First(&partner).Error
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateEvent) {
			existing, getErr := s.GetPartner(ctx, input.ID)
			if getErr != nil {
				return nil, getErr
			}
			return existing, err
		}
		return nil, err
	}

	return &partner, nil
}

// GetPartner retrieves a partner with its accounts
func (s *pgStore) GetPartner(ctx context.Context, id uuid.UUID) (*schema.Partner, error) {
	var partner schema.Partner
	err := s.db.WithContext(ctx).Preload("Accounts").Where("id = ?", id).First(&partner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}

	return &partner, nil
}

// GetPartnerByReferralCode retrieves a partner by its referral code
func (s *pgStore) GetPartnerByReferralCode(ctx context.Context, code string) (*schema.Partner, error) {
	var partner schema.Partner
	err := s.db.WithContext(ctx).Preload("Accounts").Where("referral_code = ?", code).First(&partner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get partner by referral code: %w", err)
	}

	return &partner, nil
}

// UpdatePartnerStatus moves a partner to a new status if the transition is allowed.
// Setting the current status again is a no-op.
func (s *pgStore) UpdatePartnerStatus(ctx context.Context, id uuid.UUID, status domain.PartnerStatus) (*schema.Partner, error) {
	var partner schema.Partner
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", id).First(&partner).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: %s", domain.ErrPartnerNotFound, id)
			}
			return fmt.Errorf("failed to lock partner: %w", err)
		}

		if partner.Status != status {
			if !partner.Status.CanTransitionTo(status) {
				return fmt.Errorf("%w: partner %s -> %s", domain.ErrInvalidTransition, partner.Status, status)
			}
			if err := tx.Model(&partner).Update("status", status).Error; err != nil {
				return fmt.Errorf("failed to update partner status: %w", err)
			}
		}

		return tx.Preload("Accounts").Where("id = ?", id).First(&partner).Error
	})
	if err != nil {
		return nil, err
	}

	return &partner, nil
}

// AssignReferrer creates the referral edge partnerID -> referrerID
func (s *pgStore) AssignReferrer(ctx context.Context, partnerID, referrerID uuid.UUID) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return assignReferrerInTx(tx, partnerID, referrerID)
	})
}

// assignReferrerInTx rejects the edge when referrerID is partnerID or one of its descendants,
// i.e. when partnerID already appears among referrerID's ancestors.
// Assigning the same referrer twice is a no-op.
func assignReferrerInTx(tx *gorm.DB, partnerID, referrerID uuid.UUID) error {
	if partnerID == referrerID {
		return fmt.Errorf("%w: %s cannot refer itself", domain.ErrCyclicReferral, partnerID)
	}

	if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", referralEdgeLockKey).Error; err != nil {
		return fmt.Errorf("failed to acquire referral edge lock: %w", err)
	}

	var partner schema.Partner
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("id = ?", partnerID).First(&partner).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: %s", domain.ErrPartnerNotFound, partnerID)
		}
		return fmt.Errorf("failed to lock partner: %w", err)
	}

	if partner.ReferrerID != nil {
		if *partner.ReferrerID == referrerID {
			return nil
		}
		return fmt.Errorf("%w: %s", domain.ErrReferrerAlreadySet, partnerID)
	}

	var referrerCount int64
	if err := tx.Model(&schema.Partner{}).Where("id = ?", referrerID).Count(&referrerCount).Error; err != nil {
		return fmt.Errorf("failed to look up referrer: %w", err)
	}
	if referrerCount == 0 {
		return fmt.Errorf("%w: referrer %s", domain.ErrPartnerNotFound, referrerID)
	}

	ancestors, err := ancestorsInTx(tx, referrerID, unboundedWalk)
	if err != nil {
		return err
	}
	for _, a := range ancestors {
		if a.PartnerID == partnerID {
			return fmt.Errorf("%w: %s is already an ancestor of %s", domain.ErrCyclicReferral, partnerID, referrerID)
		}
	}

	if err := tx.Model(&partner).Update("referrer_id", referrerID).Error; err != nil {
		return fmt.Errorf("failed to assign referrer: %w", err)
	}

	return nil
}

func ancestorsInTx(tx *gorm.DB, partnerID uuid.UUID, maxDepth int) ([]domain.Ancestor, error) {
	var ancestors []domain.Ancestor
	if maxDepth <= 0 {
		return ancestors, nil
	}

	if err := tx.Raw(ancestorsQuery, partnerID, maxDepth).Scan(&ancestors).Error; err != nil {
		return nil, fmt.Errorf("failed to walk ancestors: %w", err)
	}

	return ancestors, nil
}

// GetAncestors walks up to maxDepth referrers starting at depth 1 in a single query
func (s *pgStore) GetAncestors(ctx context.Context, partnerID uuid.UUID, maxDepth int) ([]domain.Ancestor, error) {
	return ancestorsInTx(s.db.WithContext(ctx), partnerID, maxDepth)
}

// GetDescendants walks the downline up to maxDepth levels in a single query
func (s *pgStore) GetDescendants(ctx context.Context, partnerID uuid.UUID, maxDepth int) ([]domain.Descendant, error) {
	var descendants []domain.Descendant
	if maxDepth <= 0 {
		return descendants, nil
	}

	if err := s.db.WithContext(ctx).Raw(descendantsQuery, partnerID, maxDepth).Scan(&descendants).Error; err != nil {
		return nil, fmt.Errorf("failed to walk descendants: %w", err)
	}

	return descendants, nil
}

// GetReferralSummary counts the downline per level up to maxDepth levels
func (s *pgStore) GetReferralSummary(ctx context.Context, partnerID uuid.UUID, maxDepth int) (*domain.ReferralSummary, error) {
	var exists int64
	if err := s.db.WithContext(ctx).Model(&schema.Partner{}).Where("id = ?", partnerID).Count(&exists).Error; err != nil {
		return nil, fmt.Errorf("failed to look up partner: %w", err)
	}
	if exists == 0 {
		return nil, fmt.Errorf("%w: %s", domain.ErrPartnerNotFound, partnerID)
	}

	summary := &domain.ReferralSummary{
		PartnerID:   partnerID,
		LevelCounts: []int64{},
	}
	if maxDepth <= 0 {
		return summary, nil
	}

	var rows []struct {
		Depth int
		Count int64
	}
	if err := s.db.WithContext(ctx).Raw(levelCountsQuery, partnerID, maxDepth).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count downline: %w", err)
	}

	for _, row := range rows {
		for len(summary.LevelCounts) < row.Depth {
			summary.LevelCounts = append(summary.LevelCounts, 0)
		}
		summary.LevelCounts[row.Depth-1] = row.Count
		summary.TotalDownline += row.Count
	}
	if len(summary.LevelCounts) > 0 {
		summary.DirectCount = summary.LevelCounts[0]
	}

	return summary, nil
}
