package bonuspool_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-partner-ledger/internal/bonuspool"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/mocks"
	"github.com/feral-file/ff-partner-ledger/internal/store"
	"github.com/feral-file/ff-partner-ledger/internal/store/schema"
)

var now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

type managerMocks struct {
	cycles *mocks.MockCycleStore
	ledger *mocks.MockLedgerStore
	hasher *mocks.MockPayloadHasher
	clock  *mocks.MockClock
}

func setupManager(t *testing.T, cfg bonuspool.Config) (bonuspool.Manager, *managerMocks) {
	ctrl := gomock.NewController(t)
	m := &managerMocks{
		cycles: mocks.NewMockCycleStore(ctrl),
		ledger: mocks.NewMockLedgerStore(ctrl),
		hasher: mocks.NewMockPayloadHasher(ctrl),
		clock:  mocks.NewMockClock(ctrl),
	}
	m.clock.EXPECT().Now().Return(now).AnyTimes()

	return bonuspool.NewManager(cfg, m.cycles, m.ledger, m.hasher, m.clock, nil), m
}

func activeCycle(endsAt time.Time) *schema.BonusPoolCycle {
	return &schema.BonusPoolCycle{
		ID:          7,
		CycleNumber: 3,
		StartsAt:    endsAt.Add(-domain.DefaultCycleLength),
		EndsAt:      endsAt,
		Status:      domain.CycleStatusActive,
		PoolAmount:  100_000,
		TotalTokens: 1_000,
	}
}

func TestManager_AccumulateSales(t *testing.T) {
	tests := []struct {
		name        string
		orderID     string
		amount      int64
		setupMocks  func(*managerMocks)
		expectedErr error
	}{
		{
			name:    "adds thirty percent floored",
			orderID: "ord-1",
			amount:  1_001,
			setupMocks: func(m *managerMocks) {
				m.hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
				m.cycles.EXPECT().EnsureActiveCycle(gomock.Any(), now, domain.DefaultCycleLength).Return(activeCycle(now.Add(time.Hour)), nil)
				m.cycles.EXPECT().AccumulateSales(gomock.Any(), store.AccumulateSalesInput{
					OrderID: "ord-1", Amount: 1_001, Contribution: 300, PayloadHash: "h",
				}).Return(activeCycle(now.Add(time.Hour)), nil)
			},
		},
		{
			name:    "replayed order",
			orderID: "ord-1",
			amount:  1_001,
			setupMocks: func(m *managerMocks) {
				m.hasher.EXPECT().Hash(gomock.Any()).Return("h", nil)
				m.cycles.EXPECT().EnsureActiveCycle(gomock.Any(), now, domain.DefaultCycleLength).Return(activeCycle(now.Add(time.Hour)), nil)
				m.cycles.EXPECT().AccumulateSales(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateEvent)
			},
			expectedErr: domain.ErrDuplicateEvent,
		},
		{
			name:        "non positive amount",
			orderID:     "ord-2",
			amount:      0,
			setupMocks:  func(*managerMocks) {},
			expectedErr: domain.ErrInvalidAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, m := setupManager(t, bonuspool.Config{})
			tt.setupMocks(m)

			cycle, err := mgr.AccumulateSales(context.Background(), tt.orderID, tt.amount)
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cycle)
		})
	}
}

func TestManager_CheckAndSettle(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*managerMocks)
		settled    bool
		wantErr    bool
	}{
		{
			name: "not due yet",
			setupMocks: func(m *managerMocks) {
				m.cycles.EXPECT().EnsureActiveCycle(gomock.Any(), now, gomock.Any()).Return(activeCycle(now.Add(time.Minute)), nil)
			},
		},
		{
			name: "due cycle is settled",
			setupMocks: func(m *managerMocks) {
				m.cycles.EXPECT().EnsureActiveCycle(gomock.Any(), now, gomock.Any()).Return(activeCycle(now), nil)
				m.cycles.EXPECT().SettleCycle(gomock.Any(), store.SettleCycleInput{
					CycleID: 7, SettledAt: now, NextLength: domain.DefaultCycleLength,
				}).Return(&store.SettlementResult{
					Settled:       schema.BonusPoolCycle{CycleNumber: 3, PoolAmount: 100_000},
					Next:          schema.BonusPoolCycle{CycleNumber: 4},
					PerTokenValue: 100,
					Participants:  3,
					TotalPaid:     100_000,
				}, nil)
			},
			settled: true,
		},
		{
			name: "settled by another scheduler",
			setupMocks: func(m *managerMocks) {
				m.cycles.EXPECT().EnsureActiveCycle(gomock.Any(), now, gomock.Any()).Return(activeCycle(now.Add(-time.Minute)), nil)
				m.cycles.EXPECT().SettleCycle(gomock.Any(), gomock.Any()).Return(nil, domain.ErrSettlementInProgress)
			},
		},
		{
			name: "store failure",
			setupMocks: func(m *managerMocks) {
				m.cycles.EXPECT().EnsureActiveCycle(gomock.Any(), now, gomock.Any()).Return(activeCycle(now.Add(-time.Minute)), nil)
				m.cycles.EXPECT().SettleCycle(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mgr, m := setupManager(t, bonuspool.Config{})
			tt.setupMocks(m)

			result, err := mgr.CheckAndSettle(context.Background())
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.settled, result != nil)
		})
	}
}

func TestManager_SettlePassesCarryRemainder(t *testing.T) {
	mgr, m := setupManager(t, bonuspool.Config{CycleLength: 48 * time.Hour, CarryRemainder: true})

	m.cycles.EXPECT().SettleCycle(gomock.Any(), store.SettleCycleInput{
		CycleID: 9, SettledAt: now, NextLength: 48 * time.Hour, CarryRemainder: true,
	}).Return(&store.SettlementResult{Remainder: 1}, nil)

	result, err := mgr.Settle(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.Remainder)
}

func TestManager_Summary(t *testing.T) {
	partnerID := uuid.New()
	mgr, m := setupManager(t, bonuspool.Config{})

	m.cycles.EXPECT().EnsureActiveCycle(gomock.Any(), now, gomock.Any()).Return(activeCycle(now.Add(36*time.Hour)), nil).Times(2)
	m.ledger.EXPECT().GetBalance(gomock.Any(), partnerID, domain.AccountRWA).Return(int64(250), nil)

	summary, err := mgr.Summary(context.Background(), &partnerID)
	require.NoError(t, err)
	assert.Equal(t, int64(3), summary.CycleNumber)
	assert.Equal(t, int64(2), summary.DaysRemaining)
	assert.Equal(t, int64(250), summary.PartnerTokens)
	assert.Equal(t, int64(2_500), summary.ShareBps)

	summary, err = mgr.Summary(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, summary.PartnerID)
	assert.Zero(t, summary.ShareBps)
}

func TestManager_GetCycle(t *testing.T) {
	mgr, m := setupManager(t, bonuspool.Config{})

	m.cycles.EXPECT().GetCycleByNumber(gomock.Any(), int64(42)).Return(nil, nil)
	_, err := mgr.GetCycle(context.Background(), 42)
	assert.ErrorIs(t, err, domain.ErrCycleNotFound)

	m.cycles.EXPECT().GetCycleByNumber(gomock.Any(), int64(3)).Return(activeCycle(now), nil)
	cycle, err := mgr.GetCycle(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, int64(3), cycle.CycleNumber)
}

func TestManager_TokenRules(t *testing.T) {
	mgr, _ := setupManager(t, bonuspool.Config{
		PackageTokens:  map[int]int64{1: 10, 2: 25},
		AmountPerToken: 1_000,
	})

	assert.Equal(t, int64(25), mgr.PackageTokens(2))
	assert.Zero(t, mgr.PackageTokens(9))
	assert.Equal(t, int64(3), mgr.TokensForAmount(3_999))
	assert.Zero(t, mgr.TokensForAmount(999))

	noRate, _ := setupManager(t, bonuspool.Config{})
	assert.Zero(t, noRate.TokensForAmount(1_000_000))
}
