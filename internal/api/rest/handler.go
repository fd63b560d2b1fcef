package rest

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/api/middleware"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/executor"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// Handler defines the interface for REST API handlers
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// GetPartner returns a partner's balances
	// GET /api/v1/partners/:id
	GetPartner(c *gin.Context)

	// GetLedger returns a page of one account's history
	// GET /api/v1/partners/:id/ledger/:kind?limit=<limit>&offset=<offset>
	GetLedger(c *gin.Context)

	// GetReferralSummary counts the downline per level
	// GET /api/v1/partners/:id/referrals/summary?depth=<depth>
	GetReferralSummary(c *gin.Context)

	// ListWithdrawals lists a partner's withdrawal requests
	// GET /api/v1/partners/:id/withdrawals?status=<status>&limit=<limit>&offset=<offset>
	ListWithdrawals(c *gin.Context)

	// CreateWithdrawal requests a withdrawal from the cash wallet
	// POST /api/v1/partners/:id/withdrawals
	CreateWithdrawal(c *gin.Context)

	// GetActiveCycle returns the active bonus pool cycle
	// GET /api/v1/cycles/active?partner_id=<id>
	GetActiveCycle(c *gin.Context)

	// GetCycle returns a bonus pool cycle by number
	// GET /api/v1/cycles/:number
	GetCycle(c *gin.Context)

	// IngestOrderPaid publishes an order_paid event (API key only)
	// POST /api/v1/events/order-paid
	IngestOrderPaid(c *gin.Context)

	// IngestPartnerJoined publishes a partner_joined event (API key only)
	// POST /api/v1/events/partner-joined
	IngestPartnerJoined(c *gin.Context)

	// IngestMilestone publishes a milestone event (API key only)
	// POST /api/v1/events/milestone
	IngestMilestone(c *gin.Context)

	// ApproveWithdrawal approves a pending withdrawal
	// POST /api/v1/admin/withdrawals/:id/approve
	ApproveWithdrawal(c *gin.Context)

	// RejectWithdrawal rejects a pending withdrawal and releases its reservation
	// POST /api/v1/admin/withdrawals/:id/reject
	RejectWithdrawal(c *gin.Context)

	// CompleteWithdrawal completes an approved withdrawal and debits cash
	// POST /api/v1/admin/withdrawals/:id/complete
	CompleteWithdrawal(c *gin.Context)

	// ActivatePartner moves a partner to active
	// POST /api/v1/admin/partners/:id/activate
	ActivatePartner(c *gin.Context)

	// SuspendPartner moves a partner to suspended
	// POST /api/v1/admin/partners/:id/suspend
	SuspendPartner(c *gin.Context)

	// ExpirePartner moves a partner to expired
	// POST /api/v1/admin/partners/:id/expire
	ExpirePartner(c *gin.Context)

	// PostAdjustment appends an admin adjustment entry
	// POST /api/v1/admin/partners/:id/adjustments
	PostAdjustment(c *gin.Context)

	// FreezeAccount blocks debits on an account
	// POST /api/v1/admin/partners/:id/accounts/:kind/freeze
	FreezeAccount(c *gin.Context)

	// UnfreezeAccount lifts an account freeze
	// POST /api/v1/admin/partners/:id/accounts/:kind/unfreeze
	UnfreezeAccount(c *gin.Context)

	// SettleCycle settles the active cycle and waits for the result
	// POST /api/v1/admin/cycles/settle
	SettleCycle(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	debug    bool
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(debug bool, exec executor.Executor) Handler {
	return &handler{
		debug:    debug,
		executor: exec,
	}
}

// parseID reads a uuid route parameter, responding 400 when it is malformed
func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		respondBadRequest(c, "Invalid "+param, c.Param(param))
		return uuid.Nil, false
	}
	return id, true
}

// parseAccountKind reads the :kind route parameter
func parseAccountKind(c *gin.Context) (domain.AccountKind, bool) {
	kind := domain.AccountKind(c.Param("kind"))
	if !kind.Valid() {
		respondBadRequest(c, "Invalid account kind", string(kind))
		return "", false
	}
	return kind, true
}

// GetPartner returns a partner's balances
func (h *handler) GetPartner(c *gin.Context) {
	partnerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	partner, err := h.executor.GetPartner(c.Request.Context(), partnerID)
	if err != nil {
		respondError(c, err, "Failed to get partner")
		return
	}
	if partner == nil {
		respondNotFound(c, "Partner not found")
		return
	}

	c.JSON(http.StatusOK, partner)
}

// GetLedger returns a page of one account's history
func (h *handler) GetLedger(c *gin.Context) {
	partnerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	kind, ok := parseAccountKind(c)
	if !ok {
		return
	}

	params, err := ParseLedgerQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.GetLedger(c.Request.Context(), partnerID, kind, params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to get ledger")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetReferralSummary counts the downline per level
func (h *handler) GetReferralSummary(c *gin.Context) {
	partnerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	params, err := ParseReferralSummaryQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.GetReferralSummary(c.Request.Context(), partnerID, params.Depth)
	if err != nil {
		respondError(c, err, "Failed to get referral summary")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ListWithdrawals lists a partner's withdrawal requests
func (h *handler) ListWithdrawals(c *gin.Context) {
	partnerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	params, err := ParseListWithdrawalsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.ListWithdrawals(c.Request.Context(), partnerID, params.StatusFilter(), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err, "Failed to list withdrawals")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateWithdrawal requests a withdrawal from the cash wallet
func (h *handler) CreateWithdrawal(c *gin.Context) {
	partnerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.RequestWithdrawal(c.Request.Context(), partnerID, req.Amount)
	if err != nil {
		respondError(c, err, "Failed to request withdrawal")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// GetActiveCycle returns the active bonus pool cycle.
// Partners get their own stake; operators may name any partner or none.
func (h *handler) GetActiveCycle(c *gin.Context) {
	raw := c.Query("partner_id")
	if raw == "" && !middleware.IsOperator(c) {
		raw = middleware.AuthSubject(c)
	}

	var partnerID *uuid.UUID
	if raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			respondBadRequest(c, "Invalid partner_id", raw)
			return
		}
		if !middleware.CanAccessPartner(c, id.String()) {
			respondAPIError(c, apierrors.NewForbiddenError("Access to this partner is not allowed"))
			return
		}
		partnerID = &id
	}

	resp, err := h.executor.GetActiveCycle(c.Request.Context(), partnerID)
	if err != nil {
		respondError(c, err, "Failed to get active cycle")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetCycle returns a bonus pool cycle by number
func (h *handler) GetCycle(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil || number <= 0 {
		respondBadRequest(c, "Invalid cycle number", c.Param("number"))
		return
	}

	resp, err := h.executor.GetCycle(c.Request.Context(), number)
	if err != nil {
		respondError(c, err, "Failed to get cycle")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// validatable is a request body with its own validation
type validatable interface {
	Validate() error
}

// ingest binds, validates and publishes an event request
func ingest[T any, PT interface {
	*T
	validatable
}](h *handler, c *gin.Context, subject domain.EventSubject) {
	var req T
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := PT(&req).Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.PublishEvent(c.Request.Context(), subject, req)
	if err != nil {
		respondError(c, err, "Failed to publish event")
		return
	}

	c.JSON(http.StatusAccepted, resp)
}

// IngestOrderPaid publishes an order_paid event
func (h *handler) IngestOrderPaid(c *gin.Context) {
	ingest[dto.OrderPaidRequest](h, c, domain.SubjectOrderPaid)
}

// IngestPartnerJoined publishes a partner_joined event
func (h *handler) IngestPartnerJoined(c *gin.Context) {
	ingest[dto.PartnerJoinedRequest](h, c, domain.SubjectPartnerJoined)
}

// IngestMilestone publishes a milestone event
func (h *handler) IngestMilestone(c *gin.Context) {
	ingest[dto.MilestoneRequest](h, c, domain.SubjectMilestone)
}

func (h *handler) transitionWithdrawal(c *gin.Context, to domain.WithdrawalStatus, reason string) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.executor.TransitionWithdrawal(c.Request.Context(), id, to, reason)
	if err != nil {
		respondError(c, err, "Failed to update withdrawal")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ApproveWithdrawal approves a pending withdrawal
func (h *handler) ApproveWithdrawal(c *gin.Context) {
	h.transitionWithdrawal(c, domain.WithdrawalStatusApproved, "")
}

// RejectWithdrawal rejects a pending withdrawal
func (h *handler) RejectWithdrawal(c *gin.Context) {
	var req dto.RejectWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	h.transitionWithdrawal(c, domain.WithdrawalStatusRejected, req.Reason)
}

// CompleteWithdrawal completes an approved withdrawal
func (h *handler) CompleteWithdrawal(c *gin.Context) {
	h.transitionWithdrawal(c, domain.WithdrawalStatusCompleted, "")
}

func (h *handler) updatePartnerStatus(c *gin.Context, status domain.PartnerStatus) {
	partnerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	resp, err := h.executor.UpdatePartnerStatus(c.Request.Context(), partnerID, status)
	if err != nil {
		respondError(c, err, "Failed to update partner status")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// ActivatePartner moves a partner to active
func (h *handler) ActivatePartner(c *gin.Context) {
	h.updatePartnerStatus(c, domain.PartnerStatusActive)
}

// SuspendPartner moves a partner to suspended
func (h *handler) SuspendPartner(c *gin.Context) {
	h.updatePartnerStatus(c, domain.PartnerStatusSuspended)
}

// ExpirePartner moves a partner to expired
func (h *handler) ExpirePartner(c *gin.Context) {
	h.updatePartnerStatus(c, domain.PartnerStatusExpired)
}

// PostAdjustment appends an admin adjustment entry
func (h *handler) PostAdjustment(c *gin.Context) {
	partnerID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.PostAdjustment(c.Request.Context(), partnerID, req)
	if err != nil {
		respondError(c, err, "Failed to post adjustment")
		return
	}

	status := http.StatusCreated
	if resp.Duplicate {
		status = http.StatusOK
	}
	c.JSON(status, resp)
}

// FreezeAccount blocks debits on an account
func (h *handler) FreezeAccount(c *gin.Context) {
	partnerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	kind, ok := parseAccountKind(c)
	if !ok {
		return
	}

	var req dto.FreezeAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "Invalid request body", err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	resp, err := h.executor.SetAccountFrozen(c.Request.Context(), partnerID, kind, true, req.Reason)
	if err != nil {
		respondError(c, err, "Failed to freeze account")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UnfreezeAccount lifts an account freeze
func (h *handler) UnfreezeAccount(c *gin.Context) {
	partnerID, ok := parseID(c, "id")
	if !ok {
		return
	}
	kind, ok := parseAccountKind(c)
	if !ok {
		return
	}

	resp, err := h.executor.SetAccountFrozen(c.Request.Context(), partnerID, kind, false, "")
	if err != nil {
		respondError(c, err, "Failed to unfreeze account")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SettleCycle settles the active cycle
func (h *handler) SettleCycle(c *gin.Context) {
	resp, err := h.executor.SettleCycle(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to settle cycle")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}
