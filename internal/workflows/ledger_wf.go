package workflows

import (
	"time"

	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/logger"
)

// ledgerActivityOptions applies to every ledger write.
// Writes are idempotent, so retrying a timed out attempt is safe.
func ledgerActivityOptions(ctx workflow.Context) workflow.Context {
	return workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 30 * time.Second,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    2 * time.Second,
			BackoffCoefficient: 2.0,
			MaximumInterval:    time.Minute,
			MaximumAttempts:    10,
		},
	})
}

// OrderPaid distributes commission for a paid order, adds it to the bonus pool and issues network tokens
func (w *workerCore) OrderPaid(ctx workflow.Context, event domain.OrderPaidEvent) error {
	logger.InfoWf(ctx, "Processing paid order",
		zap.String("eventID", event.EventID),
		zap.String("orderID", event.OrderID),
		zap.Int64("amount", event.Amount))

	kind := event.Kind
	if kind == "" {
		kind = domain.EventKindPurchase
	}
	if kind != domain.EventKindPurchase && kind != domain.EventKindResupply {
		return temporal.NewNonRetryableApplicationError("order kind must be purchase or resupply", "InvalidEvent", nil)
	}

	actCtx := ledgerActivityOptions(ctx)

	// Commission, pool and tokens are all keyed by order so a resubmitted order is applied once
	orderKey := event.OrderKey()

	var distribution DistributionResult
	err := workflow.ExecuteActivity(actCtx, w.executor.DistributeCommission, domain.QualifyingEvent{
		ID:        orderKey,
		PartnerID: event.PartnerID,
		Amount:    event.Amount,
		Kind:      kind,
	}).Get(actCtx, &distribution)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("eventID", event.EventID), zap.String("orderKey", orderKey))
		return err
	}

	orderID := event.OrderID
	if orderID == "" {
		orderID = event.EventID
	}
	err = workflow.ExecuteActivity(actCtx, w.executor.AccumulatePoolSales, orderID, event.Amount).Get(actCtx, nil)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("orderID", orderID))
		return err
	}

	var issued int64
	err = workflow.ExecuteActivity(actCtx, w.executor.IssueTokens, TokenGrant{
		PartnerID:   event.PartnerID,
		Source:      domain.TokenSourceNetworkOrder,
		ReferenceID: orderID,
		Amount:      event.Amount,
	}).Get(actCtx, &issued)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("orderID", orderID))
		return err
	}

	logger.InfoWf(ctx, "Paid order processed",
		zap.String("eventID", event.EventID),
		zap.Int("credits", distribution.Entries),
		zap.Int64("commission", distribution.Total),
		zap.Bool("duplicate", distribution.Duplicate),
		zap.Int64("tokens", issued))

	return nil
}

// PartnerJoined enrolls a partner, issues its package tokens and rewards its referral chain
func (w *workerCore) PartnerJoined(ctx workflow.Context, event domain.PartnerJoinedEvent) error {
	logger.InfoWf(ctx, "Processing partner enrollment",
		zap.String("eventID", event.EventID),
		zap.String("partnerID", event.PartnerID.String()),
		zap.Int("tier", event.Tier))

	actCtx := ledgerActivityOptions(ctx)

	var enrollment EnrollmentResult
	err := workflow.ExecuteActivity(actCtx, w.executor.EnrollPartner, event).Get(actCtx, &enrollment)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("eventID", event.EventID))
		return err
	}

	var issued int64
	err = workflow.ExecuteActivity(actCtx, w.executor.IssueTokens, TokenGrant{
		PartnerID:   enrollment.PartnerID,
		Source:      domain.TokenSourcePackage,
		ReferenceID: event.EventID,
		Tier:        enrollment.Tier,
	}).Get(actCtx, &issued)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("eventID", event.EventID))
		return err
	}

	signupAmount := w.config.SignupAmounts[enrollment.Tier]
	if enrollment.ReferrerID == nil || signupAmount <= 0 {
		logger.InfoWf(ctx, "No referral reward for enrollment",
			zap.String("eventID", event.EventID),
			zap.Bool("hasReferrer", enrollment.ReferrerID != nil))
		return nil
	}

	var distribution DistributionResult
	err = workflow.ExecuteActivity(actCtx, w.executor.DistributeCommission, domain.QualifyingEvent{
		ID:        event.EventID,
		PartnerID: enrollment.PartnerID,
		Amount:    signupAmount,
		Kind:      domain.EventKindReferralSignup,
	}).Get(actCtx, &distribution)
	if err != nil {
		logger.ErrorWf(ctx, err, zap.String("eventID", event.EventID))
		return err
	}

	logger.InfoWf(ctx, "Partner enrollment processed",
		zap.String("eventID", event.EventID),
		zap.Int64("tokens", issued),
		zap.Int64("reward", distribution.Total))

	return nil
}

// Milestone distributes a milestone commission and issues milestone tokens
func (w *workerCore) Milestone(ctx workflow.Context, event domain.MilestoneEvent) error {
	logger.InfoWf(ctx, "Processing milestone",
		zap.String("eventID", event.EventID),
		zap.Int64("amount", event.Amount),
		zap.Int64("tokens", event.Tokens))

	if event.Amount <= 0 && event.Tokens <= 0 {
		return temporal.NewNonRetryableApplicationError("milestone carries neither amount nor tokens", "InvalidEvent", nil)
	}

	actCtx := ledgerActivityOptions(ctx)

	if event.Amount > 0 {
		err := workflow.ExecuteActivity(actCtx, w.executor.DistributeCommission, domain.QualifyingEvent{
			ID:        event.EventID,
			PartnerID: event.PartnerID,
			Amount:    event.Amount,
			Kind:      domain.EventKindMilestone,
		}).Get(actCtx, nil)
		if err != nil {
			logger.ErrorWf(ctx, err, zap.String("eventID", event.EventID))
			return err
		}
	}

	if event.Tokens > 0 {
		err := workflow.ExecuteActivity(actCtx, w.executor.IssueTokens, TokenGrant{
			PartnerID:   event.PartnerID,
			Source:      domain.TokenSourceMilestone,
			ReferenceID: event.EventID,
			Count:       event.Tokens,
		}).Get(actCtx, nil)
		if err != nil {
			logger.ErrorWf(ctx, err, zap.String("eventID", event.EventID))
			return err
		}
	}

	return nil
}

// SettleCycle settles the requested bonus pool cycle
func (w *workerCore) SettleCycle(ctx workflow.Context, req SettleCycleRequest) (*SettlementSummary, error) {
	// Settlement is a single transaction pinned to req.CycleID; a retry after a late commit reports it as already settled
	actCtx := workflow.WithActivityOptions(ctx, workflow.ActivityOptions{
		StartToCloseTimeout: 5 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval: 10 * time.Second,
			MaximumAttempts: 5,
		},
	})

	var summary SettlementSummary
	if err := workflow.ExecuteActivity(actCtx, w.executor.SettlePoolCycle, req).Get(actCtx, &summary); err != nil {
		logger.ErrorWf(ctx, err)
		return nil, err
	}

	switch {
	case summary.Settled:
		logger.InfoWf(ctx, "Cycle settled",
			zap.Int64("cycle", summary.CycleNumber),
			zap.Int64("perTokenValue", summary.PerTokenValue),
			zap.Int64("totalPaid", summary.TotalPaid))
	case summary.AlreadySettled:
		logger.InfoWf(ctx, "Cycle was already settled", zap.Int64("cycle", summary.CycleNumber))
	default:
		logger.InfoWf(ctx, "No cycle settled")
	}

	return &summary, nil
}
