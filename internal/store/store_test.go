package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

// =============================================================================
// Test Data Builders
// =============================================================================

// buildTestPartner creates a test partner input
func buildTestPartner(referrer *uuid.UUID) CreatePartnerInput {
	id := uuid.New()
	return CreatePartnerInput{
		ID:           id,
		ReferrerID:   referrer,
		Tier:         1,
		Status:       domain.PartnerStatusActive,
		ReferralCode: fmt.Sprintf("REF-%s", id.String()[:8]),
	}
}

// createTestPartner creates a partner and fails the test on error
func createTestPartner(t *testing.T, store Store, referrer *uuid.UUID) *schema.Partner {
	t.Helper()
	partner, err := store.CreatePartner(context.Background(), buildTestPartner(referrer))
	require.NoError(t, err)
	require.NotNil(t, partner)
	return partner
}

// createTestChain creates n partners where each one is referred by the previous one; index 0 is the root
func createTestChain(t *testing.T, store Store, n int) []*schema.Partner {
	t.Helper()
	chain := make([]*schema.Partner, 0, n)
	var referrer *uuid.UUID
	for range n {
		p := createTestPartner(t, store, referrer)
		chain = append(chain, p)
		id := p.ID
		referrer = &id
	}
	return chain
}

// credit appends a positive entry and fails the test on error
func credit(t *testing.T, store Store, partnerID uuid.UUID, kind domain.AccountKind, amount int64) *schema.LedgerEntry {
	t.Helper()
	entry, err := store.AppendEntry(context.Background(), AppendEntryInput{
		PartnerID:   partnerID,
		AccountKind: kind,
		Delta:       amount,
		Reason:      domain.ReasonAdminAdjustment,
		ReferenceID: fmt.Sprintf("seed:%s", uuid.NewString()),
	})
	require.NoError(t, err)
	return entry
}

// =============================================================================
// Test: Partners
// =============================================================================

func testCreatePartner(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("creates partner with three empty accounts", func(t *testing.T) {
		input := buildTestPartner(nil)

		partner, err := store.CreatePartner(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, input.ID, partner.ID)
		assert.Equal(t, input.ReferralCode, partner.ReferralCode)
		assert.Equal(t, domain.PartnerStatusActive, partner.Status)
		assert.Nil(t, partner.ReferrerID)
		require.Len(t, partner.Accounts, 3)
		for _, kind := range domain.AccountKinds {
			assert.Equal(t, int64(0), partner.Balance(kind))
		}
	})

	t.Run("defaults to pending", func(t *testing.T) {
		input := buildTestPartner(nil)
		input.Status = ""

		partner, err := store.CreatePartner(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, domain.PartnerStatusPending, partner.Status)
	})

	t.Run("creates referral edge", func(t *testing.T) {
		root := createTestPartner(t, store, nil)
		child := createTestPartner(t, store, &root.ID)

		require.NotNil(t, child.ReferrerID)
		assert.Equal(t, root.ID, *child.ReferrerID)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		input := buildTestPartner(nil)
		_, err := store.CreatePartner(ctx, input)
		require.NoError(t, err)

		input.ReferralCode = "OTHER-" + input.ReferralCode
		_, err = store.CreatePartner(ctx, input)
		assert.ErrorIs(t, err, domain.ErrPartnerAlreadyExists)
	})

	t.Run("enrollment event is applied once", func(t *testing.T) {
		input := buildTestPartner(nil)
		input.EventID = "join-" + uuid.NewString()
		input.PayloadHash = "h1"

		first, err := store.CreatePartner(ctx, input)
		require.NoError(t, err)

		replayed, err := store.CreatePartner(ctx, input)
		assert.ErrorIs(t, err, domain.ErrDuplicateEvent)
		require.NotNil(t, replayed)
		assert.Equal(t, first.ID, replayed.ID)

		input.PayloadHash = "h2"
		_, err = store.CreatePartner(ctx, input)
		assert.ErrorIs(t, err, domain.ErrEventPayloadMismatch)
	})

	t.Run("duplicate referral code is rejected", func(t *testing.T) {
		first := buildTestPartner(nil)
		_, err := store.CreatePartner(ctx, first)
		require.NoError(t, err)

		second := buildTestPartner(nil)
		second.ReferralCode = first.ReferralCode
		_, err = store.CreatePartner(ctx, second)
		assert.ErrorIs(t, err, domain.ErrPartnerAlreadyExists)
	})

	t.Run("unknown referrer is rejected", func(t *testing.T) {
		missing := uuid.New()
		_, err := store.CreatePartner(ctx, buildTestPartner(&missing))
		assert.ErrorIs(t, err, domain.ErrPartnerNotFound)
	})

	t.Run("missing referral code is rejected", func(t *testing.T) {
		input := buildTestPartner(nil)
		input.ReferralCode = ""
		_, err := store.CreatePartner(ctx, input)
		assert.Error(t, err)
	})
}

func testGetPartner(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("by id and referral code", func(t *testing.T) {
		created := createTestPartner(t, store, nil)

		byID, err := store.GetPartner(ctx, created.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, created.ReferralCode, byID.ReferralCode)
		assert.Len(t, byID.Accounts, 3)

		byCode, err := store.GetPartnerByReferralCode(ctx, created.ReferralCode)
		require.NoError(t, err)
		require.NotNil(t, byCode)
		assert.Equal(t, created.ID, byCode.ID)
	})

	t.Run("missing partner returns nil", func(t *testing.T) {
		partner, err := store.GetPartner(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, partner)

		partner, err = store.GetPartnerByReferralCode(ctx, "NOPE")
		require.NoError(t, err)
		assert.Nil(t, partner)
	})
}

func testUpdatePartnerStatus(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("allowed transitions", func(t *testing.T) {
		input := buildTestPartner(nil)
		input.Status = domain.PartnerStatusPending
		partner, err := store.CreatePartner(ctx, input)
		require.NoError(t, err)

		partner, err = store.UpdatePartnerStatus(ctx, partner.ID, domain.PartnerStatusActive)
		require.NoError(t, err)
		assert.Equal(t, domain.PartnerStatusActive, partner.Status)

		partner, err = store.UpdatePartnerStatus(ctx, partner.ID, domain.PartnerStatusSuspended)
		require.NoError(t, err)
		assert.Equal(t, domain.PartnerStatusSuspended, partner.Status)

		partner, err = store.UpdatePartnerStatus(ctx, partner.ID, domain.PartnerStatusActive)
		require.NoError(t, err)
		assert.Equal(t, domain.PartnerStatusActive, partner.Status)
	})

	t.Run("same status is a no-op", func(t *testing.T) {
		partner := createTestPartner(t, store, nil)
		updated, err := store.UpdatePartnerStatus(ctx, partner.ID, domain.PartnerStatusActive)
		require.NoError(t, err)
		assert.Equal(t, domain.PartnerStatusActive, updated.Status)
	})

	t.Run("expired is terminal", func(t *testing.T) {
		partner := createTestPartner(t, store, nil)
		_, err := store.UpdatePartnerStatus(ctx, partner.ID, domain.PartnerStatusExpired)
		require.NoError(t, err)

		_, err = store.UpdatePartnerStatus(ctx, partner.ID, domain.PartnerStatusActive)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("missing partner", func(t *testing.T) {
		_, err := store.UpdatePartnerStatus(ctx, uuid.New(), domain.PartnerStatusActive)
		assert.ErrorIs(t, err, domain.ErrPartnerNotFound)
	})
}

// =============================================================================
// Test: Referral forest
// =============================================================================

func testAssignReferrer(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("self referral is rejected", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		err := store.AssignReferrer(ctx, p.ID, p.ID)
		assert.ErrorIs(t, err, domain.ErrCyclicReferral)
	})

	t.Run("descendant as referrer is rejected", func(t *testing.T) {
		chain := createTestChain(t, store, 4)

		err := store.AssignReferrer(ctx, chain[0].ID, chain[3].ID)
		assert.ErrorIs(t, err, domain.ErrCyclicReferral)

		root, err := store.GetPartner(ctx, chain[0].ID)
		require.NoError(t, err)
		assert.Nil(t, root.ReferrerID)
	})

	t.Run("cycle deeper than the commission depth is still rejected", func(t *testing.T) {
		chain := createTestChain(t, store, domain.MaxReferralDepth+3)

		err := store.AssignReferrer(ctx, chain[0].ID, chain[len(chain)-1].ID)
		assert.ErrorIs(t, err, domain.ErrCyclicReferral)
	})

	t.Run("re-parenting is rejected", func(t *testing.T) {
		a := createTestPartner(t, store, nil)
		b := createTestPartner(t, store, nil)
		child := createTestPartner(t, store, &a.ID)

		err := store.AssignReferrer(ctx, child.ID, b.ID)
		assert.ErrorIs(t, err, domain.ErrReferrerAlreadySet)
	})

	t.Run("same referrer again is a no-op", func(t *testing.T) {
		a := createTestPartner(t, store, nil)
		child := createTestPartner(t, store, &a.ID)

		err := store.AssignReferrer(ctx, child.ID, a.ID)
		assert.NoError(t, err)
	})

	t.Run("joins two trees", func(t *testing.T) {
		a := createTestPartner(t, store, nil)
		b := createTestPartner(t, store, nil)

		require.NoError(t, store.AssignReferrer(ctx, b.ID, a.ID))

		ancestors, err := store.GetAncestors(ctx, b.ID, domain.MaxReferralDepth)
		require.NoError(t, err)
		require.Len(t, ancestors, 1)
		assert.Equal(t, a.ID, ancestors[0].PartnerID)
	})
}

func testReferralWalks(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("ancestors in depth order, bounded", func(t *testing.T) {
		chain := createTestChain(t, store, 13)
		leaf := chain[12]

		ancestors, err := store.GetAncestors(ctx, leaf.ID, domain.MaxReferralDepth)
		require.NoError(t, err)
		require.Len(t, ancestors, domain.MaxReferralDepth)
		for i, a := range ancestors {
			assert.Equal(t, i+1, a.Depth)
			assert.Equal(t, chain[11-i].ID, a.PartnerID)
			assert.Equal(t, domain.PartnerStatusActive, a.Status)
		}
	})

	t.Run("root has no ancestors", func(t *testing.T) {
		root := createTestPartner(t, store, nil)
		ancestors, err := store.GetAncestors(ctx, root.ID, domain.MaxReferralDepth)
		require.NoError(t, err)
		assert.Empty(t, ancestors)
	})

	t.Run("zero depth returns nothing", func(t *testing.T) {
		chain := createTestChain(t, store, 2)
		ancestors, err := store.GetAncestors(ctx, chain[1].ID, 0)
		require.NoError(t, err)
		assert.Empty(t, ancestors)
	})

	t.Run("descendants and summary", func(t *testing.T) {
		root := createTestPartner(t, store, nil)
		c1 := createTestPartner(t, store, &root.ID)
		c2 := createTestPartner(t, store, &root.ID)
		g1 := createTestPartner(t, store, &c1.ID)
		createTestPartner(t, store, &g1.ID)
		createTestPartner(t, store, &c2.ID)

		descendants, err := store.GetDescendants(ctx, root.ID, domain.MaxReferralDepth)
		require.NoError(t, err)
		assert.Len(t, descendants, 5)
		assert.Equal(t, 1, descendants[0].Depth)

		limited, err := store.GetDescendants(ctx, root.ID, 1)
		require.NoError(t, err)
		assert.Len(t, limited, 2)

		summary, err := store.GetReferralSummary(ctx, root.ID, domain.MaxReferralDepth)
		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.DirectCount)
		assert.Equal(t, int64(5), summary.TotalDownline)
		assert.Equal(t, []int64{2, 2, 1}, summary.LevelCounts)
	})

	t.Run("summary of a leaf", func(t *testing.T) {
		leaf := createTestPartner(t, store, nil)
		summary, err := store.GetReferralSummary(ctx, leaf.ID, domain.MaxReferralDepth)
		require.NoError(t, err)
		assert.Equal(t, int64(0), summary.DirectCount)
		assert.Empty(t, summary.LevelCounts)
	})

	t.Run("summary of a missing partner", func(t *testing.T) {
		_, err := store.GetReferralSummary(ctx, uuid.New(), domain.MaxReferralDepth)
		assert.ErrorIs(t, err, domain.ErrPartnerNotFound)
	})
}

// =============================================================================
// Test: Ledger
// =============================================================================

func testAppendEntry(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("credit and debit update the cached balance", func(t *testing.T) {
		p := createTestPartner(t, store, nil)

		entry, err := store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountLY,
			Delta:       500,
			Reason:      domain.ReasonPurchaseBonus,
			ReferenceID: "order-1",
			Metadata:    map[string]interface{}{"depth": 1},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(500), entry.BalanceAfter)
		assert.NotZero(t, entry.ID)

		entry, err = store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountLY,
			Delta:       -200,
			Reason:      domain.ReasonRedemption,
			ReferenceID: "redeem-1",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(300), entry.BalanceAfter)

		balance, err := store.GetBalance(ctx, p.ID, domain.AccountLY)
		require.NoError(t, err)
		assert.Equal(t, int64(300), balance)

		drift, err := store.CheckAccountBalance(ctx, p.ID, domain.AccountLY)
		require.NoError(t, err)
		assert.Nil(t, drift)
	})

	t.Run("replay returns the stored entry", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		input := AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountCash,
			Delta:       100,
			Reason:      domain.ReasonReferralReward,
			ReferenceID: "evt-replay",
		}

		first, err := store.AppendEntry(ctx, input)
		require.NoError(t, err)

		second, err := store.AppendEntry(ctx, input)
		assert.ErrorIs(t, err, domain.ErrDuplicateEvent)
		require.NotNil(t, second)
		assert.Equal(t, first.ID, second.ID)

		balance, err := store.GetBalance(ctx, p.ID, domain.AccountCash)
		require.NoError(t, err)
		assert.Equal(t, int64(100), balance)
	})

	t.Run("overdraft is rejected without side effects", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		credit(t, store, p.ID, domain.AccountLY, 50)

		_, err := store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountLY,
			Delta:       -51,
			Reason:      domain.ReasonRedemption,
			ReferenceID: "redeem-over",
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		entries, total, err := store.ListLedgerEntries(ctx, LedgerEntryFilter{PartnerID: p.ID, AccountKind: domain.AccountLY})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		assert.Len(t, entries, 1)
	})

	t.Run("corrections may go negative except rwa", func(t *testing.T) {
		p := createTestPartner(t, store, nil)

		entry, err := store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountCash,
			Delta:       -10,
			Reason:      domain.ReasonCorrection,
			ReferenceID: "fix-1",
		})
		require.NoError(t, err)
		assert.Equal(t, int64(-10), entry.BalanceAfter)

		_, err = store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountRWA,
			Delta:       -1,
			Reason:      domain.ReasonCorrection,
			ReferenceID: "fix-2",
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	})

	t.Run("invalid input", func(t *testing.T) {
		p := createTestPartner(t, store, nil)

		_, err := store.AppendEntry(ctx, AppendEntryInput{PartnerID: p.ID, AccountKind: "points", Delta: 1, Reason: domain.ReasonAdminAdjustment, ReferenceID: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidAccountKind)

		_, err = store.AppendEntry(ctx, AppendEntryInput{PartnerID: p.ID, AccountKind: domain.AccountLY, Delta: 0, Reason: domain.ReasonAdminAdjustment, ReferenceID: "x"})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = store.AppendEntry(ctx, AppendEntryInput{PartnerID: uuid.New(), AccountKind: domain.AccountLY, Delta: 1, Reason: domain.ReasonAdminAdjustment, ReferenceID: "x"})
		assert.ErrorIs(t, err, domain.ErrPartnerNotFound)
	})

	t.Run("frozen account blocks debits but not credits", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		credit(t, store, p.ID, domain.AccountCash, 100)

		require.NoError(t, store.FreezeAccount(ctx, p.ID, domain.AccountCash, "drift"))

		_, err := store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountCash,
			Delta:       -10,
			Reason:      domain.ReasonRedemption,
			ReferenceID: "frozen-debit",
		})
		assert.ErrorIs(t, err, domain.ErrAccountFrozen)

		credit(t, store, p.ID, domain.AccountCash, 5)

		_, err = store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountCash,
			Delta:       -10,
			Reason:      domain.ReasonCorrection,
			ReferenceID: "frozen-correction",
		})
		assert.NoError(t, err)

		require.NoError(t, store.UnfreezeAccount(ctx, p.ID, domain.AccountCash))
		_, err = store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountCash,
			Delta:       -10,
			Reason:      domain.ReasonRedemption,
			ReferenceID: "thawed-debit",
		})
		assert.NoError(t, err)
	})

	t.Run("freeze of a missing account", func(t *testing.T) {
		err := store.FreezeAccount(ctx, uuid.New(), domain.AccountCash, "drift")
		assert.ErrorIs(t, err, domain.ErrPartnerNotFound)
	})
}

func testApplyDistribution(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("tiered distribution over a chain of twelve", func(t *testing.T) {
		chain := createTestChain(t, store, 12)
		buyer := chain[11]

		ancestors, err := store.GetAncestors(ctx, buyer.ID, domain.MaxReferralDepth)
		require.NoError(t, err)
		require.Len(t, ancestors, 10)

		var entries []AppendEntryInput
		for _, a := range ancestors {
			bps, ok := domain.DefaultTierTable.RateAt(a.Depth)
			require.True(t, ok)
			amount, err := domain.ApplyRate(10_000, bps)
			require.NoError(t, err)
			entries = append(entries, AppendEntryInput{
				PartnerID:   a.PartnerID,
				AccountKind: domain.AccountCash,
				Delta:       amount,
				Reason:      domain.ReasonReferralReward,
				ReferenceID: "evt-tier",
				Metadata:    map[string]interface{}{"depth": a.Depth, "bps": bps},
			})
		}

		written, err := store.ApplyDistribution(ctx, ApplyDistributionInput{
			EventID:     "evt-tier",
			Scope:       domain.EventScopeDistribution,
			PayloadHash: "hash-1",
			Entries:     entries,
		})
		require.NoError(t, err)
		assert.Len(t, written, 10)

		expected := map[int]int64{1: 2000, 2: 1000, 3: 1000, 4: 1000, 5: 500, 6: 500, 7: 500, 8: 500, 9: 500, 10: 500}
		for depth, amount := range expected {
			balance, err := store.GetBalance(ctx, chain[11-depth].ID, domain.AccountCash)
			require.NoError(t, err)
			assert.Equal(t, amount, balance, "depth %d", depth)
		}

		// The root and the buyer are outside the paid window
		for _, p := range []*schema.Partner{chain[0], buyer} {
			balance, err := store.GetBalance(ctx, p.ID, domain.AccountCash)
			require.NoError(t, err)
			assert.Equal(t, int64(0), balance)
		}

		stored, err := store.GetEntriesByReference(ctx, "evt-tier")
		require.NoError(t, err)
		assert.Len(t, stored, 10)
	})

	t.Run("replay is a no-op returning the original entries", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		input := ApplyDistributionInput{
			EventID:     "evt-replay-dist",
			Scope:       domain.EventScopeDistribution,
			PayloadHash: "hash-a",
			Entries: []AppendEntryInput{{
				PartnerID:   p.ID,
				AccountKind: domain.AccountLY,
				Delta:       70,
				Reason:      domain.ReasonPurchaseBonus,
				ReferenceID: "evt-replay-dist",
			}},
		}

		first, err := store.ApplyDistribution(ctx, input)
		require.NoError(t, err)
		require.Len(t, first, 1)

		second, err := store.ApplyDistribution(ctx, input)
		assert.ErrorIs(t, err, domain.ErrDuplicateEvent)
		require.Len(t, second, 1)
		assert.Equal(t, first[0].ID, second[0].ID)

		balance, err := store.GetBalance(ctx, p.ID, domain.AccountLY)
		require.NoError(t, err)
		assert.Equal(t, int64(70), balance)
	})

	t.Run("replay with a different payload is rejected", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		input := ApplyDistributionInput{
			EventID:     "evt-mismatch",
			Scope:       domain.EventScopeDistribution,
			PayloadHash: "hash-a",
			Entries: []AppendEntryInput{{
				PartnerID:   p.ID,
				AccountKind: domain.AccountLY,
				Delta:       70,
				Reason:      domain.ReasonPurchaseBonus,
				ReferenceID: "evt-mismatch",
			}},
		}
		_, err := store.ApplyDistribution(ctx, input)
		require.NoError(t, err)

		input.PayloadHash = "hash-b"
		_, err = store.ApplyDistribution(ctx, input)
		assert.ErrorIs(t, err, domain.ErrEventPayloadMismatch)
	})

	t.Run("one failing entry rolls back the whole event", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		input := ApplyDistributionInput{
			EventID:     "evt-atomic",
			Scope:       domain.EventScopeDistribution,
			PayloadHash: "hash-atomic",
			Entries: []AppendEntryInput{
				{PartnerID: p.ID, AccountKind: domain.AccountLY, Delta: 10, Reason: domain.ReasonPurchaseBonus, ReferenceID: "evt-atomic"},
				{PartnerID: uuid.New(), AccountKind: domain.AccountCash, Delta: 10, Reason: domain.ReasonReferralReward, ReferenceID: "evt-atomic"},
			},
		}

		_, err := store.ApplyDistribution(ctx, input)
		require.Error(t, err)

		balance, err := store.GetBalance(ctx, p.ID, domain.AccountLY)
		require.NoError(t, err)
		assert.Equal(t, int64(0), balance)

		// The event was not marked processed, so a corrected retry applies
		input.Entries = input.Entries[:1]
		_, err = store.ApplyDistribution(ctx, input)
		require.NoError(t, err)
	})

	t.Run("missing event id", func(t *testing.T) {
		_, err := store.ApplyDistribution(ctx, ApplyDistributionInput{Scope: domain.EventScopeDistribution})
		assert.Error(t, err)
	})
}

func testListLedgerEntries(t *testing.T, store Store) {
	ctx := context.Background()

	p := createTestPartner(t, store, nil)
	for i := 1; i <= 5; i++ {
		credit(t, store, p.ID, domain.AccountLY, int64(i))
	}
	credit(t, store, p.ID, domain.AccountCash, 99)

	entries, total, err := store.ListLedgerEntries(ctx, LedgerEntryFilter{PartnerID: p.ID, AccountKind: domain.AccountLY, Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, entries, 2)
	assert.Equal(t, int64(5), entries[0].Delta)
	assert.Equal(t, int64(15), entries[0].BalanceAfter)
	assert.Equal(t, int64(4), entries[1].Delta)

	entries, _, err = store.ListLedgerEntries(ctx, LedgerEntryFilter{PartnerID: p.ID, AccountKind: domain.AccountLY, Limit: 2, Offset: 4})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), entries[0].Delta)
}

func testBalanceDrift(t *testing.T, store Store) {
	ctx := context.Background()

	a := createTestPartner(t, store, nil)
	b := createTestPartner(t, store, nil)
	credit(t, store, a.ID, domain.AccountLY, 10)
	credit(t, store, b.ID, domain.AccountLY, 10)

	// Simulate a cached balance drifting from its ledger
	ps := store.(*pgStore)
	require.NoError(t, ps.db.Model(&schema.PartnerAccount{}).
		Where("partner_id = ? AND account_kind = ?", b.ID, domain.AccountLY).
		Update("balance", 12).Error)

	batch, err := store.FindBalanceDrift(ctx, uuid.Nil, 500)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, batch.Checked, 2)
	require.Len(t, batch.Drifts, 1)
	assert.Equal(t, b.ID, batch.Drifts[0].PartnerID)
	assert.Equal(t, domain.AccountLY, batch.Drifts[0].AccountKind)
	assert.Equal(t, int64(12), batch.Drifts[0].CachedBalance)
	assert.Equal(t, int64(10), batch.Drifts[0].LedgerSum)

	drift, err := store.CheckAccountBalance(ctx, b.ID, domain.AccountLY)
	require.NoError(t, err)
	require.NotNil(t, drift)
	assert.Equal(t, int64(10), drift.LedgerSum)

	empty, err := store.FindBalanceDrift(ctx, batch.LastPartnerID, 500)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Checked)
}

// =============================================================================
// Test: Bonus pool cycles
// =============================================================================

func testEnsureActiveCycle(t *testing.T, store Store) {
	ctx := context.Background()
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	cycle, err := store.EnsureActiveCycle(ctx, start, domain.DefaultCycleLength)
	require.NoError(t, err)
	assert.Equal(t, int64(1), cycle.CycleNumber)
	assert.Equal(t, domain.CycleStatusActive, cycle.Status)
	assert.True(t, cycle.EndsAt.Equal(start.Add(domain.DefaultCycleLength)))

	again, err := store.EnsureActiveCycle(ctx, start.Add(time.Hour), domain.DefaultCycleLength)
	require.NoError(t, err)
	assert.Equal(t, cycle.ID, again.ID)

	active, err := store.GetActiveCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, cycle.ID, active.ID)

	byNumber, err := store.GetCycleByNumber(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, byNumber)
	assert.Equal(t, cycle.ID, byNumber.ID)

	missing, err := store.GetCycleByNumber(ctx, 99)
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = store.EnsureActiveCycle(ctx, start, 0)
	assert.Error(t, err)
}

func testAccumulateSales(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("no active cycle", func(t *testing.T) {
		_, err := store.AccumulateSales(ctx, AccumulateSalesInput{OrderID: "order-none", Amount: 100, Contribution: 30, PayloadHash: "h"})
		assert.ErrorIs(t, err, domain.ErrNoActiveCycle)
	})

	_, err := store.EnsureActiveCycle(ctx, time.Now().UTC(), domain.DefaultCycleLength)
	require.NoError(t, err)

	cycle, err := store.AccumulateSales(ctx, AccumulateSalesInput{OrderID: "order-1", Amount: 10_000, Contribution: 3_000, PayloadHash: "h1"})
	require.NoError(t, err)
	assert.Equal(t, int64(3_000), cycle.PoolAmount)
	assert.Equal(t, int64(10_000), cycle.SalesTotal)

	_, err = store.AccumulateSales(ctx, AccumulateSalesInput{OrderID: "order-1", Amount: 10_000, Contribution: 3_000, PayloadHash: "h1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEvent)

	_, err = store.AccumulateSales(ctx, AccumulateSalesInput{OrderID: "order-1", Amount: 20_000, Contribution: 6_000, PayloadHash: "h2"})
	assert.ErrorIs(t, err, domain.ErrEventPayloadMismatch)

	cycle, err = store.AccumulateSales(ctx, AccumulateSalesInput{OrderID: "order-2", Amount: 5_000, Contribution: 1_500, PayloadHash: "h3"})
	require.NoError(t, err)
	assert.Equal(t, int64(4_500), cycle.PoolAmount)

	_, err = store.AccumulateSales(ctx, AccumulateSalesInput{OrderID: "order-3", Amount: 0, Contribution: 0, PayloadHash: "h4"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}

func testIssueTokens(t *testing.T, store Store) {
	ctx := context.Background()
	p := createTestPartner(t, store, nil)

	t.Run("no active cycle", func(t *testing.T) {
		_, err := store.IssueTokens(ctx, IssueTokensInput{PartnerID: p.ID, Count: 1, Source: domain.TokenSourcePackage, ReferenceID: "pkg-0"})
		assert.ErrorIs(t, err, domain.ErrNoActiveCycle)
	})

	_, err := store.EnsureActiveCycle(ctx, time.Now().UTC(), domain.DefaultCycleLength)
	require.NoError(t, err)

	entry, err := store.IssueTokens(ctx, IssueTokensInput{PartnerID: p.ID, Count: 5, Source: domain.TokenSourcePackage, ReferenceID: "pkg-1"})
	require.NoError(t, err)
	assert.Equal(t, int64(5), entry.BalanceAfter)
	assert.Equal(t, domain.ReasonTokenIssuance, entry.Reason)
	assert.Equal(t, "package:pkg-1", entry.ReferenceID)

	_, err = store.IssueTokens(ctx, IssueTokensInput{PartnerID: p.ID, Count: 5, Source: domain.TokenSourcePackage, ReferenceID: "pkg-1"})
	assert.ErrorIs(t, err, domain.ErrDuplicateEvent)

	// The same reference under another source is a separate issuance
	_, err = store.IssueTokens(ctx, IssueTokensInput{PartnerID: p.ID, Count: 2, Source: domain.TokenSourceMilestone, ReferenceID: "pkg-1"})
	require.NoError(t, err)

	cycle, err := store.GetActiveCycle(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), cycle.TotalTokens)

	balance, err := store.GetBalance(ctx, p.ID, domain.AccountRWA)
	require.NoError(t, err)
	assert.Equal(t, int64(7), balance)

	_, err = store.IssueTokens(ctx, IssueTokensInput{PartnerID: p.ID, Count: 0, Source: domain.TokenSourcePackage, ReferenceID: "pkg-2"})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)

	_, err = store.IssueTokens(ctx, IssueTokensInput{PartnerID: p.ID, Count: 1, Source: "gift", ReferenceID: "pkg-3"})
	assert.Error(t, err)
}

func testSettleCycle(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("pro-rata payout and rollover", func(t *testing.T) {
		now := time.Now().UTC().Truncate(time.Second)
		cycle, err := store.EnsureActiveCycle(ctx, now.Add(-11*24*time.Hour), domain.DefaultCycleLength)
		require.NoError(t, err)

		a := createTestPartner(t, store, nil)
		b := createTestPartner(t, store, nil)
		c := createTestPartner(t, store, nil)
		idle := createTestPartner(t, store, nil)

		for _, h := range []struct {
			id     uuid.UUID
			tokens int64
		}{{a.ID, 400}, {b.ID, 350}, {c.ID, 250}} {
			_, err := store.IssueTokens(ctx, IssueTokensInput{PartnerID: h.id, Count: h.tokens, Source: domain.TokenSourcePackage, ReferenceID: h.id.String()})
			require.NoError(t, err)
		}
		_, err = store.AccumulateSales(ctx, AccumulateSalesInput{OrderID: "order-pool", Amount: 333_334, Contribution: 100_000, PayloadHash: "h"})
		require.NoError(t, err)

		result, err := store.SettleCycle(ctx, SettleCycleInput{CycleID: cycle.ID, SettledAt: now, NextLength: domain.DefaultCycleLength})
		require.NoError(t, err)
		assert.Equal(t, int64(100), result.PerTokenValue)
		assert.Equal(t, int64(0), result.Remainder)
		assert.Equal(t, int64(3), result.Participants)
		assert.Equal(t, int64(100_000), result.TotalPaid)

		assert.Equal(t, domain.CycleStatusSettled, result.Settled.Status)
		require.NotNil(t, result.Settled.PerTokenValue)
		assert.Equal(t, int64(100), *result.Settled.PerTokenValue)
		require.NotNil(t, result.Settled.SettledAt)

		for id, expected := range map[uuid.UUID]int64{a.ID: 40_000, b.ID: 35_000, c.ID: 25_000, idle.ID: 0} {
			cash, err := store.GetBalance(ctx, id, domain.AccountCash)
			require.NoError(t, err)
			assert.Equal(t, expected, cash)

			rwa, err := store.GetBalance(ctx, id, domain.AccountRWA)
			require.NoError(t, err)
			assert.Equal(t, int64(0), rwa)
		}

		// The next cycle continues from the previous window and starts empty
		assert.Equal(t, cycle.CycleNumber+1, result.Next.CycleNumber)
		assert.True(t, result.Next.StartsAt.Equal(cycle.EndsAt))
		assert.Equal(t, int64(0), result.Next.PoolAmount)
		assert.Equal(t, int64(0), result.Next.TotalTokens)

		active, err := store.GetActiveCycle(ctx)
		require.NoError(t, err)
		assert.Equal(t, result.Next.ID, active.ID)

		_, err = store.SettleCycle(ctx, SettleCycleInput{CycleID: cycle.ID, SettledAt: now, NextLength: domain.DefaultCycleLength})
		assert.ErrorIs(t, err, domain.ErrCycleAlreadySettled)

		dividends, err := store.GetEntriesByReference(ctx, fmt.Sprintf("cycle:%d", cycle.ID))
		require.NoError(t, err)
		assert.Len(t, dividends, 6)
	})
}

func testSettleCycleRemainder(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	cycle, err := store.EnsureActiveCycle(ctx, now.Add(-40*24*time.Hour), domain.DefaultCycleLength)
	require.NoError(t, err)

	a := createTestPartner(t, store, nil)
	b := createTestPartner(t, store, nil)
	_, err = store.IssueTokens(ctx, IssueTokensInput{PartnerID: a.ID, Count: 2, Source: domain.TokenSourcePackage, ReferenceID: "a"})
	require.NoError(t, err)
	_, err = store.IssueTokens(ctx, IssueTokensInput{PartnerID: b.ID, Count: 1, Source: domain.TokenSourcePackage, ReferenceID: "b"})
	require.NoError(t, err)
	_, err = store.AccumulateSales(ctx, AccumulateSalesInput{OrderID: "order-r", Amount: 100, Contribution: 100, PayloadHash: "h"})
	require.NoError(t, err)

	result, err := store.SettleCycle(ctx, SettleCycleInput{
		CycleID:        cycle.ID,
		SettledAt:      now,
		NextLength:     domain.DefaultCycleLength,
		CarryRemainder: true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(33), result.PerTokenValue)
	assert.Equal(t, int64(1), result.Remainder)
	assert.Equal(t, int64(99), result.TotalPaid)

	// Carried into the next cycle
	assert.Equal(t, int64(1), result.Next.PoolAmount)
	assert.Equal(t, int64(1), result.Next.CarriedIn)

	// A cycle that ended long ago does not open an already-expired successor
	assert.True(t, result.Next.StartsAt.Equal(now))
}

func testSettleEmptyCycle(t *testing.T, store Store) {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Second)

	cycle, err := store.EnsureActiveCycle(ctx, now.Add(-domain.DefaultCycleLength), domain.DefaultCycleLength)
	require.NoError(t, err)
	_, err = store.AccumulateSales(ctx, AccumulateSalesInput{OrderID: "order-e", Amount: 1000, Contribution: 300, PayloadHash: "h"})
	require.NoError(t, err)

	result, err := store.SettleCycle(ctx, SettleCycleInput{CycleID: cycle.ID, SettledAt: now, NextLength: domain.DefaultCycleLength})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.PerTokenValue)
	assert.Equal(t, int64(300), result.Remainder)
	assert.Equal(t, int64(0), result.Participants)
	assert.Equal(t, int64(0), result.Next.PoolAmount)

	_, err = store.SettleCycle(ctx, SettleCycleInput{CycleID: 999_999, SettledAt: now, NextLength: domain.DefaultCycleLength})
	assert.ErrorIs(t, err, domain.ErrCycleNotFound)
}

// =============================================================================
// Test: Withdrawals
// =============================================================================

func testWithdrawals(t *testing.T, store Store) {
	ctx := context.Background()

	t.Run("reservation and completion", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		credit(t, store, p.ID, domain.AccountCash, 1_000)

		request, err := store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: p.ID, Amount: 600})
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusPending, request.Status)
		assert.NotEqual(t, uuid.Nil, request.ID)

		available, err := store.GetAvailableCash(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(400), available)

		_, err = store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: p.ID, Amount: 401})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		// Other cash debits cannot eat into the reservation
		_, err = store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountCash,
			Delta:       -500,
			Reason:      domain.ReasonRedemption,
			ReferenceID: "redeem-reserved",
		})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		_, err = store.TransitionWithdrawal(ctx, TransitionWithdrawalInput{ID: request.ID, To: domain.WithdrawalStatusCompleted})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)

		request, err = store.TransitionWithdrawal(ctx, TransitionWithdrawalInput{ID: request.ID, To: domain.WithdrawalStatusApproved})
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusApproved, request.Status)

		request, err = store.TransitionWithdrawal(ctx, TransitionWithdrawalInput{ID: request.ID, To: domain.WithdrawalStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusCompleted, request.Status)
		require.NotNil(t, request.LedgerEntryID)

		balance, err := store.GetBalance(ctx, p.ID, domain.AccountCash)
		require.NoError(t, err)
		assert.Equal(t, int64(400), balance)

		available, err = store.GetAvailableCash(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(400), available)

		entries, err := store.GetEntriesByReference(ctx, fmt.Sprintf("withdrawal:%s", request.ID))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, int64(-600), entries[0].Delta)
		assert.Equal(t, *request.LedgerEntryID, entries[0].ID)

		_, err = store.TransitionWithdrawal(ctx, TransitionWithdrawalInput{ID: request.ID, To: domain.WithdrawalStatusRejected})
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("completion links an existing debit", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		credit(t, store, p.ID, domain.AccountCash, 500)

		request, err := store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: p.ID, Amount: 200})
		require.NoError(t, err)
		request, err = store.TransitionWithdrawal(ctx, TransitionWithdrawalInput{ID: request.ID, To: domain.WithdrawalStatusApproved})
		require.NoError(t, err)

		debit, err := store.AppendEntry(ctx, AppendEntryInput{
			PartnerID:   p.ID,
			AccountKind: domain.AccountCash,
			Delta:       -200,
			Reason:      domain.ReasonWithdrawal,
			ReferenceID: fmt.Sprintf("withdrawal:%s", request.ID),
		})
		require.NoError(t, err)

		request, err = store.TransitionWithdrawal(ctx, TransitionWithdrawalInput{ID: request.ID, To: domain.WithdrawalStatusCompleted})
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusCompleted, request.Status)
		require.NotNil(t, request.LedgerEntryID)
		assert.Equal(t, debit.ID, *request.LedgerEntryID)

		balance, err := store.GetBalance(ctx, p.ID, domain.AccountCash)
		require.NoError(t, err)
		assert.Equal(t, int64(300), balance)

		entries, err := store.GetEntriesByReference(ctx, fmt.Sprintf("withdrawal:%s", request.ID))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejection releases the reservation", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		credit(t, store, p.ID, domain.AccountCash, 300)

		request, err := store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: p.ID, Amount: 300})
		require.NoError(t, err)

		reason := "kyc incomplete"
		request, err = store.TransitionWithdrawal(ctx, TransitionWithdrawalInput{ID: request.ID, To: domain.WithdrawalStatusRejected, Reason: &reason})
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusRejected, request.Status)
		require.NotNil(t, request.RejectReason)
		assert.Equal(t, reason, *request.RejectReason)

		available, err := store.GetAvailableCash(ctx, p.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(300), available)
	})

	t.Run("list and get", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		credit(t, store, p.ID, domain.AccountCash, 1_000)

		first, err := store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: p.ID, Amount: 100})
		require.NoError(t, err)
		_, err = store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: p.ID, Amount: 200})
		require.NoError(t, err)
		_, err = store.TransitionWithdrawal(ctx, TransitionWithdrawalInput{ID: first.ID, To: domain.WithdrawalStatusApproved})
		require.NoError(t, err)

		requests, total, err := store.ListWithdrawals(ctx, WithdrawalFilter{PartnerID: p.ID})
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		assert.Len(t, requests, 2)

		pending := domain.WithdrawalStatusPending
		requests, total, err = store.ListWithdrawals(ctx, WithdrawalFilter{PartnerID: p.ID, Status: &pending})
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, requests, 1)
		assert.Equal(t, int64(200), requests[0].Amount)

		got, err := store.GetWithdrawal(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, domain.WithdrawalStatusApproved, got.Status)

		missing, err := store.GetWithdrawal(ctx, uuid.New())
		require.NoError(t, err)
		assert.Nil(t, missing)
	})

	t.Run("invalid requests", func(t *testing.T) {
		p := createTestPartner(t, store, nil)

		_, err := store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: p.ID, Amount: 0})
		assert.ErrorIs(t, err, domain.ErrInvalidAmount)

		_, err = store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: p.ID, Amount: 1})
		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)

		_, err = store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: uuid.New(), Amount: 1})
		assert.ErrorIs(t, err, domain.ErrPartnerNotFound)

		_, err = store.TransitionWithdrawal(ctx, TransitionWithdrawalInput{ID: uuid.New(), To: domain.WithdrawalStatusApproved})
		assert.ErrorIs(t, err, domain.ErrWithdrawalNotFound)
	})

	t.Run("frozen cash blocks new requests", func(t *testing.T) {
		p := createTestPartner(t, store, nil)
		credit(t, store, p.ID, domain.AccountCash, 100)
		require.NoError(t, store.FreezeAccount(ctx, p.ID, domain.AccountCash, "drift"))

		_, err := store.CreateWithdrawal(ctx, CreateWithdrawalInput{PartnerID: p.ID, Amount: 10})
		assert.ErrorIs(t, err, domain.ErrAccountFrozen)
	})
}

// =============================================================================
// Test: Cursors
// =============================================================================

func testCursors(t *testing.T, store Store) {
	ctx := context.Background()

	value, err := store.GetCursor(ctx, "reconciliation")
	require.NoError(t, err)
	assert.Empty(t, value)

	require.NoError(t, store.SetCursor(ctx, "reconciliation", "a"))
	require.NoError(t, store.SetCursor(ctx, "reconciliation", "b"))

	value, err = store.GetCursor(ctx, "reconciliation")
	require.NoError(t, err)
	assert.Equal(t, "b", value)
}

// RunStoreTests runs all store tests
func RunStoreTests(t *testing.T, initDB func(t *testing.T) Store, cleanupDB func(t *testing.T)) {
	tests := []struct {
		name string
		fn   func(*testing.T, Store)
	}{
		{"CreatePartner", testCreatePartner},
		{"GetPartner", testGetPartner},
		{"UpdatePartnerStatus", testUpdatePartnerStatus},
		{"AssignReferrer", testAssignReferrer},
		{"ReferralWalks", testReferralWalks},
		{"AppendEntry", testAppendEntry},
		{"ApplyDistribution", testApplyDistribution},
		{"ListLedgerEntries", testListLedgerEntries},
		{"BalanceDrift", testBalanceDrift},
		{"EnsureActiveCycle", testEnsureActiveCycle},
		{"AccumulateSales", testAccumulateSales},
		{"IssueTokens", testIssueTokens},
		{"SettleCycle", testSettleCycle},
		{"SettleCycleRemainder", testSettleCycleRemainder},
		{"SettleEmptyCycle", testSettleEmptyCycle},
		{"Withdrawals", testWithdrawals},
		{"Cursors", testCursors},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := initDB(t)
			defer cleanupDB(t)
			tt.fn(t, store)
		})
	}
}
