package commission_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-partner-ledger/internal/commission"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/mocks"
	"github.com/feral-file/ff-partner-ledger/internal/store"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

type distributorMocks struct {
	graph  *mocks.MockReferralGraph
	ledger *mocks.MockLedgerStore
	hasher *mocks.MockPayloadHasher
}

func setupDistributor(t *testing.T, cfg commission.Config) (commission.Distributor, *distributorMocks) {
	ctrl := gomock.NewController(t)
	m := &distributorMocks{
		graph:  mocks.NewMockReferralGraph(ctrl),
		ledger: mocks.NewMockLedgerStore(ctrl),
		hasher: mocks.NewMockPayloadHasher(ctrl),
	}

	d, err := commission.NewDistributor(cfg, m.graph, m.ledger, m.hasher, nil)
	require.NoError(t, err)
	return d, m
}

func TestDistributor_Plan(t *testing.T) {
	buyer := uuid.New()
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name        string
		cfg         commission.Config
		event       domain.QualifyingEvent
		setupMocks  func(*distributorMocks)
		expected    map[uuid.UUID]int64
		expectedErr error
	}{
		{
			name:  "tiered credits, depth 11 is never requested",
			event: domain.QualifyingEvent{ID: "ord-1", PartnerID: buyer, Amount: 10_000, Kind: domain.EventKindPurchase},
			setupMocks: func(m *distributorMocks) {
				m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return([]domain.Ancestor{
					{PartnerID: a, Depth: 1, Status: domain.PartnerStatusActive},
					{PartnerID: b, Depth: 2, Status: domain.PartnerStatusActive},
					{PartnerID: c, Depth: 5, Status: domain.PartnerStatusActive},
				}, nil)
			},
			expected: map[uuid.UUID]int64{a: 2_000, b: 1_000, c: 500},
		},
		{
			name:  "ancestor beyond the table is ignored",
			event: domain.QualifyingEvent{ID: "ord-2", PartnerID: buyer, Amount: 10_000, Kind: domain.EventKindPurchase},
			setupMocks: func(m *distributorMocks) {
				m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return([]domain.Ancestor{
					{PartnerID: a, Depth: 1, Status: domain.PartnerStatusActive},
					{PartnerID: d, Depth: 11, Status: domain.PartnerStatusActive},
				}, nil)
			},
			expected: map[uuid.UUID]int64{a: 2_000},
		},
		{
			name:  "active only policy skips suspended ancestors without shifting depth",
			cfg:   commission.Config{Eligibility: commission.CreditActiveOnly},
			event: domain.QualifyingEvent{ID: "ord-3", PartnerID: buyer, Amount: 10_000, Kind: domain.EventKindPurchase},
			setupMocks: func(m *distributorMocks) {
				m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return([]domain.Ancestor{
					{PartnerID: a, Depth: 1, Status: domain.PartnerStatusSuspended},
					{PartnerID: b, Depth: 2, Status: domain.PartnerStatusActive},
				}, nil)
			},
			expected: map[uuid.UUID]int64{b: 1_000},
		},
		{
			name:  "credits rounding to zero are dropped",
			event: domain.QualifyingEvent{ID: "ord-4", PartnerID: buyer, Amount: 5, Kind: domain.EventKindPurchase},
			setupMocks: func(m *distributorMocks) {
				m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return([]domain.Ancestor{
					{PartnerID: a, Depth: 1, Status: domain.PartnerStatusActive},
					{PartnerID: c, Depth: 5, Status: domain.PartnerStatusActive},
				}, nil)
			},
			expected: map[uuid.UUID]int64{a: 1},
		},
		{
			name:       "root partner produces no credits",
			event:      domain.QualifyingEvent{ID: "ord-5", PartnerID: buyer, Amount: 10_000, Kind: domain.EventKindPurchase},
			setupMocks: func(m *distributorMocks) { m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return(nil, nil) },
			expected:   map[uuid.UUID]int64{},
		},
		{
			name:        "zero amount",
			event:       domain.QualifyingEvent{ID: "ord-6", PartnerID: buyer, Amount: 0, Kind: domain.EventKindPurchase},
			setupMocks:  func(*distributorMocks) {},
			expectedErr: domain.ErrInvalidAmount,
		},
		{
			name:  "graph failure",
			event: domain.QualifyingEvent{ID: "ord-7", PartnerID: buyer, Amount: 10, Kind: domain.EventKindResupply},
			setupMocks: func(m *distributorMocks) {
				m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return(nil, errors.New("boom"))
			},
			expectedErr: errors.New("failed to resolve ancestors: boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, m := setupDistributor(t, tt.cfg)
			tt.setupMocks(m)

			entries, err := d.Plan(context.Background(), tt.event)
			if tt.expectedErr != nil {
				require.Error(t, err)
				if errors.Is(tt.expectedErr, domain.ErrInvalidAmount) {
					assert.ErrorIs(t, err, domain.ErrInvalidAmount)
				} else {
					assert.EqualError(t, err, tt.expectedErr.Error())
				}
				return
			}
			require.NoError(t, err)

			got := make(map[uuid.UUID]int64, len(entries))
			for _, e := range entries {
				assert.Equal(t, tt.event.ID, e.ReferenceID)
				assert.Equal(t, domain.AccountCash, e.AccountKind)
				got[e.PartnerID] = e.Delta
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDistributor_PlanReasons(t *testing.T) {
	buyer, a, b := uuid.New(), uuid.New(), uuid.New()
	d, m := setupDistributor(t, commission.Config{})

	m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return([]domain.Ancestor{
		{PartnerID: a, Depth: 1},
		{PartnerID: b, Depth: 2},
	}, nil)

	entries, err := d.Plan(context.Background(), domain.QualifyingEvent{
		ID: "join-1", PartnerID: buyer, Amount: 1_000, Kind: domain.EventKindReferralSignup,
	})
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, domain.ReasonReferralReward, entries[0].Reason)
	assert.Equal(t, domain.AccountLY, entries[0].AccountKind)
	assert.Equal(t, 1, entries[0].Metadata["depth"])
	assert.Equal(t, int64(2_000), entries[0].Metadata["rate_bps"])
	assert.Equal(t, domain.ReasonNetworkOverride, entries[1].Reason)
}

func TestDistributor_Distribute(t *testing.T) {
	buyer, a := uuid.New(), uuid.New()
	event := domain.QualifyingEvent{ID: "ord-9", PartnerID: buyer, Amount: 10_000, Kind: domain.EventKindPurchase}
	written := []schema.LedgerEntry{{ID: 1, PartnerID: a, AccountKind: domain.AccountCash, Delta: 2_000, BalanceAfter: 2_000, Reason: domain.ReasonPurchaseBonus, ReferenceID: "ord-9"}}

	tests := []struct {
		name        string
		setupMocks  func(*distributorMocks)
		expected    []schema.LedgerEntry
		expectedErr error
	}{
		{
			name: "applies entries under the distribution scope",
			setupMocks: func(m *distributorMocks) {
				m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return([]domain.Ancestor{{PartnerID: a, Depth: 1}}, nil)
				m.hasher.EXPECT().Hash(event).Return("hash", nil)
				m.ledger.EXPECT().ApplyDistribution(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, in store.ApplyDistributionInput) ([]schema.LedgerEntry, error) {
						assert.Equal(t, "ord-9", in.EventID)
						assert.Equal(t, domain.EventScopeDistribution, in.Scope)
						assert.Equal(t, "hash", in.PayloadHash)
						require.Len(t, in.Entries, 1)
						assert.Equal(t, int64(2_000), in.Entries[0].Delta)
						return written, nil
					})
			},
			expected: written,
		},
		{
			name: "replay returns the original entries",
			setupMocks: func(m *distributorMocks) {
				m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return([]domain.Ancestor{{PartnerID: a, Depth: 1}}, nil)
				m.hasher.EXPECT().Hash(event).Return("hash", nil)
				m.ledger.EXPECT().ApplyDistribution(gomock.Any(), gomock.Any()).Return(written, domain.ErrDuplicateEvent)
			},
			expected:    written,
			expectedErr: domain.ErrDuplicateEvent,
		},
		{
			name: "payload mismatch is surfaced",
			setupMocks: func(m *distributorMocks) {
				m.graph.EXPECT().AncestorsOf(gomock.Any(), buyer, 10).Return([]domain.Ancestor{{PartnerID: a, Depth: 1}}, nil)
				m.hasher.EXPECT().Hash(event).Return("other", nil)
				m.ledger.EXPECT().ApplyDistribution(gomock.Any(), gomock.Any()).Return(nil, domain.ErrEventPayloadMismatch)
			},
			expectedErr: domain.ErrEventPayloadMismatch,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, m := setupDistributor(t, commission.Config{})
			tt.setupMocks(m)

			got, err := d.Distribute(context.Background(), event)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestNewDistributor_RejectsInvalidConfig(t *testing.T) {
	_, err := commission.NewDistributor(commission.Config{
		Tiers: domain.TierTable{{MinDepth: 1, MaxDepth: 3, BasisPoints: 100}, {MinDepth: 3, MaxDepth: 4, BasisPoints: 50}},
	}, nil, nil, nil, nil)
	assert.Error(t, err)

	_, err = commission.NewDistributor(commission.Config{
		Accounts: map[domain.EventKind]domain.AccountKind{"bogus": domain.AccountCash},
	}, nil, nil, nil, nil)
	assert.Error(t, err)
}

func TestPolicyByName(t *testing.T) {
	p, err := commission.PolicyByName("")
	require.NoError(t, err)
	assert.True(t, p(domain.Ancestor{Status: domain.PartnerStatusExpired}))

	p, err = commission.PolicyByName(commission.PolicyActiveOnly)
	require.NoError(t, err)
	assert.False(t, p(domain.Ancestor{Status: domain.PartnerStatusPending}))
	assert.True(t, p(domain.Ancestor{Status: domain.PartnerStatusActive}))

	_, err = commission.PolicyByName("nope")
	assert.Error(t, err)
}
