package rest

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-partner-ledger/internal/api/shared/constants"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

// PageQueryParams holds pagination query parameters
type PageQueryParams struct {
	Limit  int `form:"limit"`
	Offset int `form:"offset,default=0"`
}

// normalize applies the default limit and caps it
func (p *PageQueryParams) normalize(defaultLimit int) error {
	if p.Limit < 0 || p.Offset < 0 {
		return fmt.Errorf("limit and offset must not be negative")
	}
	if p.Limit == 0 {
		p.Limit = defaultLimit
	}
	if p.Limit > constants.MAX_PAGE_SIZE {
		p.Limit = constants.MAX_PAGE_SIZE
	}
	return nil
}

// ParseLedgerQuery parses query parameters for GET /partners/:id/ledger/:kind
func ParseLedgerQuery(c *gin.Context) (*PageQueryParams, error) {
	var params PageQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.normalize(constants.DEFAULT_LEDGER_LIMIT); err != nil {
		return nil, err
	}
	return &params, nil
}

// ListWithdrawalsQueryParams holds query parameters for GET /partners/:id/withdrawals
type ListWithdrawalsQueryParams struct {
	PageQueryParams
	Status string `form:"status"`
}

// StatusFilter returns the status filter, nil when unset
func (p *ListWithdrawalsQueryParams) StatusFilter() *domain.WithdrawalStatus {
	if p.Status == "" {
		return nil
	}
	s := domain.WithdrawalStatus(p.Status)
	return &s
}

// ParseListWithdrawalsQuery parses query parameters for GET /partners/:id/withdrawals
func ParseListWithdrawalsQuery(c *gin.Context) (*ListWithdrawalsQueryParams, error) {
	var params ListWithdrawalsQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if err := params.normalize(constants.DEFAULT_WITHDRAWAL_LIMIT); err != nil {
		return nil, err
	}

	switch domain.WithdrawalStatus(params.Status) {
	case "", domain.WithdrawalStatusPending, domain.WithdrawalStatusApproved,
		domain.WithdrawalStatusCompleted, domain.WithdrawalStatusRejected:
	default:
		return nil, fmt.Errorf("invalid status: %s", params.Status)
	}

	return &params, nil
}

// ReferralSummaryQueryParams holds query parameters for GET /partners/:id/referrals/summary
type ReferralSummaryQueryParams struct {
	Depth int `form:"depth"`
}

// ParseReferralSummaryQuery parses query parameters for GET /partners/:id/referrals/summary
func ParseReferralSummaryQuery(c *gin.Context) (*ReferralSummaryQueryParams, error) {
	var params ReferralSummaryQueryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		return nil, err
	}
	if params.Depth < 0 || params.Depth > domain.MaxReferralDepth {
		return nil, fmt.Errorf("depth must be between 1 and %d", domain.MaxReferralDepth)
	}
	if params.Depth == 0 {
		params.Depth = constants.DEFAULT_REFERRAL_DEPTH
	}
	return &params, nil
}
