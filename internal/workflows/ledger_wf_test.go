package workflows_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/testsuite"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
	"github.com/feral-file/ff-partner-ledger/internal/mocks"
	"github.com/feral-file/ff-partner-ledger/internal/workflows"
)

// LedgerWorkflowTestSuite is the test suite for the ledger workflows
type LedgerWorkflowTestSuite struct {
	suite.Suite
	testsuite.WorkflowTestSuite

	env        *testsuite.TestWorkflowEnvironment
	ctrl       *gomock.Controller
	executor   *mocks.MockExecutor
	workerCore workflows.WorkerCore
}

// SetupTest is called before each test
func (s *LedgerWorkflowTestSuite) SetupTest() {
	_ = logger.Initialize(logger.Config{
		Debug: true,
	})

	s.env = s.NewTestWorkflowEnvironment()
	s.ctrl = gomock.NewController(s.T())
	s.executor = mocks.NewMockExecutor(s.ctrl)
	s.workerCore = workflows.NewWorkerCore(s.executor, workflows.WorkerCoreConfig{
		SignupAmounts: map[int]int64{1: 5_000},
	})
}

// TearDownTest is called after each test
func (s *LedgerWorkflowTestSuite) TearDownTest() {
	s.env.AssertExpectations(s.T())
	s.ctrl.Finish()
}

// TestLedgerWorkflowTestSuite runs the test suite
func TestLedgerWorkflowTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerWorkflowTestSuite))
}

// ====================================================================================
// OrderPaid
// ====================================================================================

func (s *LedgerWorkflowTestSuite) TestOrderPaid_Success() {
	buyer := uuid.New()
	event := domain.OrderPaidEvent{EventID: "evt-1", OrderID: "ord-1", PartnerID: buyer, Amount: 10_000}

	s.env.OnActivity(s.executor.DistributeCommission, mock.Anything, domain.QualifyingEvent{
		ID: "order:ord-1", PartnerID: buyer, Amount: 10_000, Kind: domain.EventKindPurchase,
	}).Return(&workflows.DistributionResult{Entries: 3, Total: 3_500}, nil)
	s.env.OnActivity(s.executor.AccumulatePoolSales, mock.Anything, "ord-1", int64(10_000)).Return(nil)
	s.env.OnActivity(s.executor.IssueTokens, mock.Anything, workflows.TokenGrant{
		PartnerID: buyer, Source: domain.TokenSourceNetworkOrder, ReferenceID: "ord-1", Amount: 10_000,
	}).Return(int64(10), nil)

	s.env.ExecuteWorkflow(s.workerCore.OrderPaid, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *LedgerWorkflowTestSuite) TestOrderPaid_ResubmittedOrderSharesKeys() {
	buyer := uuid.New()
	var distributionKeys, poolKeys []string

	// Each delivery runs in its own workflow, as the bridge would start it
	for _, eventID := range []string{"01J-A", "01J-B"} {
		env := s.NewTestWorkflowEnvironment()
		env.OnActivity(s.executor.DistributeCommission, mock.Anything, mock.Anything).Return(
			func(_ context.Context, event domain.QualifyingEvent) (*workflows.DistributionResult, error) {
				distributionKeys = append(distributionKeys, event.ID)
				return &workflows.DistributionResult{}, nil
			})
		env.OnActivity(s.executor.AccumulatePoolSales, mock.Anything, mock.Anything, mock.Anything).Return(
			func(_ context.Context, orderID string, _ int64) error {
				poolKeys = append(poolKeys, orderID)
				return nil
			})
		env.OnActivity(s.executor.IssueTokens, mock.Anything, mock.Anything).Return(int64(0), nil)

		env.ExecuteWorkflow(s.workerCore.OrderPaid, domain.OrderPaidEvent{
			EventID: eventID, OrderID: "ord-42", PartnerID: buyer, Amount: 5_000,
		})
		s.True(env.IsWorkflowCompleted())
		s.NoError(env.GetWorkflowError())
	}

	s.Equal([]string{"order:ord-42", "order:ord-42"}, distributionKeys)
	s.Equal([]string{"ord-42", "ord-42"}, poolKeys)
}

func (s *LedgerWorkflowTestSuite) TestOrderPaid_WithoutOrderIDUsesEventID() {
	buyer := uuid.New()
	event := domain.OrderPaidEvent{EventID: "evt-9", PartnerID: buyer, Amount: 100}

	s.env.OnActivity(s.executor.DistributeCommission, mock.Anything, domain.QualifyingEvent{
		ID: "evt-9", PartnerID: buyer, Amount: 100, Kind: domain.EventKindPurchase,
	}).Return(&workflows.DistributionResult{}, nil)
	s.env.OnActivity(s.executor.AccumulatePoolSales, mock.Anything, "evt-9", int64(100)).Return(nil)
	s.env.OnActivity(s.executor.IssueTokens, mock.Anything, mock.Anything).Return(int64(0), nil)

	s.env.ExecuteWorkflow(s.workerCore.OrderPaid, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *LedgerWorkflowTestSuite) TestOrderPaid_DistributionFailureStopsTheWorkflow() {
	event := domain.OrderPaidEvent{EventID: "evt-2", OrderID: "ord-2", PartnerID: uuid.New(), Amount: 10}

	s.env.OnActivity(s.executor.DistributeCommission, mock.Anything, mock.Anything).
		Return(nil, temporal.NewNonRetryableApplicationError("payload mismatch", "EventPayloadMismatch", errors.New("mismatch")))

	s.env.ExecuteWorkflow(s.workerCore.OrderPaid, event)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

func (s *LedgerWorkflowTestSuite) TestOrderPaid_RejectsNonOrderKind() {
	event := domain.OrderPaidEvent{EventID: "evt-3", PartnerID: uuid.New(), Amount: 10, Kind: domain.EventKindMilestone}

	s.env.ExecuteWorkflow(s.workerCore.OrderPaid, event)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

// ====================================================================================
// PartnerJoined
// ====================================================================================

func (s *LedgerWorkflowTestSuite) TestPartnerJoined_WithReferrer() {
	partnerID, referrerID := uuid.New(), uuid.New()
	event := domain.PartnerJoinedEvent{EventID: "join-1", PartnerID: partnerID, ReferrerID: &referrerID, Tier: 1, ReferralCode: "NEW1"}

	s.env.OnActivity(s.executor.EnrollPartner, mock.Anything, mock.Anything).
		Return(&workflows.EnrollmentResult{PartnerID: partnerID, ReferrerID: &referrerID, Tier: 1}, nil)
	s.env.OnActivity(s.executor.IssueTokens, mock.Anything, workflows.TokenGrant{
		PartnerID: partnerID, Source: domain.TokenSourcePackage, ReferenceID: "join-1", Tier: 1,
	}).Return(int64(10), nil)
	s.env.OnActivity(s.executor.DistributeCommission, mock.Anything, domain.QualifyingEvent{
		ID: "join-1", PartnerID: partnerID, Amount: 5_000, Kind: domain.EventKindReferralSignup,
	}).Return(&workflows.DistributionResult{Entries: 1, Total: 1_000}, nil)

	s.env.ExecuteWorkflow(s.workerCore.PartnerJoined, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *LedgerWorkflowTestSuite) TestPartnerJoined_RootPartnerGetsNoReward() {
	partnerID := uuid.New()
	event := domain.PartnerJoinedEvent{EventID: "join-2", PartnerID: partnerID, Tier: 1, ReferralCode: "ROOT"}

	s.env.OnActivity(s.executor.EnrollPartner, mock.Anything, mock.Anything).
		Return(&workflows.EnrollmentResult{PartnerID: partnerID, Tier: 1}, nil)
	s.env.OnActivity(s.executor.IssueTokens, mock.Anything, mock.Anything).Return(int64(10), nil)

	s.env.ExecuteWorkflow(s.workerCore.PartnerJoined, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *LedgerWorkflowTestSuite) TestPartnerJoined_CyclicReferralFails() {
	event := domain.PartnerJoinedEvent{EventID: "join-3", PartnerID: uuid.New(), ReferrerCode: "SELF", ReferralCode: "SELF"}

	s.env.OnActivity(s.executor.EnrollPartner, mock.Anything, mock.Anything).
		Return(nil, temporal.NewNonRetryableApplicationError("cyclic referral", "CyclicReferral", domain.ErrCyclicReferral))

	s.env.ExecuteWorkflow(s.workerCore.PartnerJoined, event)

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

// ====================================================================================
// Milestone
// ====================================================================================

func (s *LedgerWorkflowTestSuite) TestMilestone_CommissionAndTokens() {
	partnerID := uuid.New()
	event := domain.MilestoneEvent{EventID: "ms-1", PartnerID: partnerID, Amount: 2_000, Tokens: 5}

	s.env.OnActivity(s.executor.DistributeCommission, mock.Anything, domain.QualifyingEvent{
		ID: "ms-1", PartnerID: partnerID, Amount: 2_000, Kind: domain.EventKindMilestone,
	}).Return(&workflows.DistributionResult{}, nil)
	s.env.OnActivity(s.executor.IssueTokens, mock.Anything, workflows.TokenGrant{
		PartnerID: partnerID, Source: domain.TokenSourceMilestone, ReferenceID: "ms-1", Count: 5,
	}).Return(int64(5), nil)

	s.env.ExecuteWorkflow(s.workerCore.Milestone, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *LedgerWorkflowTestSuite) TestMilestone_TokensOnly() {
	partnerID := uuid.New()
	event := domain.MilestoneEvent{EventID: "ms-2", PartnerID: partnerID, Tokens: 2}

	s.env.OnActivity(s.executor.IssueTokens, mock.Anything, mock.Anything).Return(int64(2), nil)

	s.env.ExecuteWorkflow(s.workerCore.Milestone, event)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())
}

func (s *LedgerWorkflowTestSuite) TestMilestone_EmptyEventFails() {
	s.env.ExecuteWorkflow(s.workerCore.Milestone, domain.MilestoneEvent{EventID: "ms-3", PartnerID: uuid.New()})

	s.True(s.env.IsWorkflowCompleted())
	s.Error(s.env.GetWorkflowError())
}

// ====================================================================================
// SettleCycle
// ====================================================================================

func (s *LedgerWorkflowTestSuite) TestSettleCycle() {
	req := workflows.SettleCycleRequest{CycleID: 11, CycleNumber: 3}
	s.env.OnActivity(s.executor.SettlePoolCycle, mock.Anything, req).
		Return(&workflows.SettlementSummary{Settled: true, CycleNumber: 3, PerTokenValue: 100, TotalPaid: 100_000, NextCycle: 4}, nil)

	s.env.ExecuteWorkflow(s.workerCore.SettleCycle, req)

	s.True(s.env.IsWorkflowCompleted())
	s.NoError(s.env.GetWorkflowError())

	var summary workflows.SettlementSummary
	s.NoError(s.env.GetWorkflowResult(&summary))
	s.True(summary.Settled)
	s.Equal(int64(100), summary.PerTokenValue)
}

func (s *LedgerWorkflowTestSuite) TestWorkflowIDs() {
	s.Equal("order_paid-evt-1", workflows.WorkflowID(domain.SubjectOrderPaid, "evt-1"))
	s.Equal("settle-cycle-7", workflows.SettlementWorkflowID(7))
}
