package rest_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/json"
	"encoding/pem"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-partner-ledger/internal/api/middleware"
	"github.com/feral-file/ff-partner-ledger/internal/api/rest"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
	"github.com/feral-file/ff-partner-ledger/internal/mocks"
)

const testAPIKey = "operator-key"

func init() {
	gin.SetMode(gin.TestMode)
}

type routeTest struct {
	name           string
	method         string
	path           string
	body           string
	setupMocks     func(*mocks.MockAPIExecutor)
	expectedStatus int
	expectedCode   apierrors.ErrorCode
	checkBody      func(*testing.T, []byte)
}

func runRouteTests(t *testing.T, tests []routeTest) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			exec := mocks.NewMockAPIExecutor(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(exec)
			}

			router := gin.New()
			rest.SetupRoutes(router, rest.NewHandler(false, exec), middleware.AuthConfig{APIKeys: []string{testAPIKey}})

			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			req.Header.Set("Authorization", "ApiKey "+testAPIKey)
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
			if tt.expectedCode != "" {
				var apiErr apierrors.APIError
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &apiErr))
				assert.Equal(t, tt.expectedCode, apiErr.Code)
			}
			if tt.checkBody != nil {
				tt.checkBody(t, w.Body.Bytes())
			}
		})
	}
}

func TestPartnerRoutes(t *testing.T) {
	partnerID := uuid.New()
	base := "/api/v1/partners/" + partnerID.String()
	pending := domain.WithdrawalStatusPending

	runRouteTests(t, []routeTest{
		{
			name:   "get partner",
			method: http.MethodGet,
			path:   base,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetPartner(gomock.Any(), partnerID).Return(&dto.PartnerResponse{ID: partnerID, CashWalletBalance: 500}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp dto.PartnerResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(500), resp.CashWalletBalance)
			},
		},
		{
			name:   "unknown partner",
			method: http.MethodGet,
			path:   base,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetPartner(gomock.Any(), partnerID).Return(nil, nil)
			},
			expectedStatus: http.StatusNotFound,
			expectedCode:   apierrors.ErrCodeNotFound,
		},
		{
			name:           "malformed partner id",
			method:         http.MethodGet,
			path:           "/api/v1/partners/not-a-uuid",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apierrors.ErrCodeBadRequest,
		},
		{
			name:   "ledger uses the default page",
			method: http.MethodGet,
			path:   base + "/ledger/cash",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetLedger(gomock.Any(), partnerID, domain.AccountCash, 50, 0).Return(&dto.LedgerListResponse{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "ledger caps the page size",
			method: http.MethodGet,
			path:   base + "/ledger/ly?limit=5000&offset=10",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetLedger(gomock.Any(), partnerID, domain.AccountLY, 200, 10).Return(&dto.LedgerListResponse{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "ledger rejects an unknown account kind",
			method:         http.MethodGet,
			path:           base + "/ledger/gold",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "ledger rejects a negative offset",
			method:         http.MethodGet,
			path:           base + "/ledger/cash?offset=-1",
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:   "referral summary defaults to ten levels",
			method: http.MethodGet,
			path:   base + "/referrals/summary",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetReferralSummary(gomock.Any(), partnerID, 10).Return(&dto.ReferralSummaryResponse{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "referral summary rejects a deep walk",
			method:         http.MethodGet,
			path:           base + "/referrals/summary?depth=11",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "list withdrawals by status",
			method: http.MethodGet,
			path:   base + "/withdrawals?status=pending",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().ListWithdrawals(gomock.Any(), partnerID, &pending, 20, 0).Return(&dto.WithdrawalListResponse{}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "list withdrawals rejects an unknown status",
			method:         http.MethodGet,
			path:           base + "/withdrawals?status=lost",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "request withdrawal",
			method: http.MethodPost,
			path:   base + "/withdrawals",
			body:   `{"amount": 8000}`,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().RequestWithdrawal(gomock.Any(), partnerID, int64(8000)).
					Return(&dto.WithdrawalResponse{PartnerID: partnerID, Amount: 8000, Status: domain.WithdrawalStatusPending}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "withdrawal over the available cash",
			method: http.MethodPost,
			path:   base + "/withdrawals",
			body:   `{"amount": 8000}`,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().RequestWithdrawal(gomock.Any(), partnerID, int64(8000)).
					Return(nil, apierrors.FromError(domain.ErrInsufficientBalance, "Failed to request withdrawal"))
			},
			expectedStatus: http.StatusConflict,
			expectedCode:   apierrors.ErrCodeConflict,
		},
		{
			name:           "withdrawal of nothing",
			method:         http.MethodPost,
			path:           base + "/withdrawals",
			body:           `{"amount": 0}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:           "withdrawal with a malformed body",
			method:         http.MethodPost,
			path:           base + "/withdrawals",
			body:           `{"amount":`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apierrors.ErrCodeBadRequest,
		},
	})
}

func TestCycleRoutes(t *testing.T) {
	partnerID := uuid.New()

	runRouteTests(t, []routeTest{
		{
			name:   "active cycle",
			method: http.MethodGet,
			path:   "/api/v1/cycles/active",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetActiveCycle(gomock.Any(), nil).Return(&dto.ActiveCycleResponse{CycleNumber: 4}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "active cycle with a partner stake",
			method: http.MethodGet,
			path:   "/api/v1/cycles/active?partner_id=" + partnerID.String(),
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetActiveCycle(gomock.Any(), &partnerID).Return(&dto.ActiveCycleResponse{CycleNumber: 4}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "active cycle with a malformed partner",
			method:         http.MethodGet,
			path:           "/api/v1/cycles/active?partner_id=x",
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "cycle by number",
			method: http.MethodGet,
			path:   "/api/v1/cycles/3",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetCycle(gomock.Any(), int64(3)).Return(&dto.CycleResponse{CycleNumber: 3}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unknown cycle",
			method: http.MethodGet,
			path:   "/api/v1/cycles/99",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetCycle(gomock.Any(), int64(99)).Return(nil, apierrors.FromError(domain.ErrCycleNotFound, "Failed to get cycle"))
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name:           "cycle number zero",
			method:         http.MethodGet,
			path:           "/api/v1/cycles/0",
			expectedStatus: http.StatusBadRequest,
		},
	})
}

func TestActiveCycle_PartnerScope(t *testing.T) {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)
	authCfg := middleware.AuthConfig{
		JWTPublicKey: string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})),
		APIKeys:      []string{testAPIKey},
	}

	own, other := uuid.New(), uuid.New()
	token, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   own.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString(key)
	require.NoError(t, err)

	tests := []struct {
		name           string
		query          string
		header         string
		setupMocks     func(*mocks.MockAPIExecutor)
		expectedStatus int
	}{
		{
			name:           "partner asks for another partner's stake",
			query:          "?partner_id=" + other.String(),
			header:         "Bearer " + token,
			expectedStatus: http.StatusForbidden,
		},
		{
			name:   "partner asks for its own stake",
			query:  "?partner_id=" + own.String(),
			header: "Bearer " + token,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetActiveCycle(gomock.Any(), &own).Return(&dto.ActiveCycleResponse{CycleNumber: 4}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "partner without partner_id gets its own stake",
			header: "Bearer " + token,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetActiveCycle(gomock.Any(), &own).Return(&dto.ActiveCycleResponse{CycleNumber: 4}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "operator asks for any partner",
			query:  "?partner_id=" + other.String(),
			header: "ApiKey " + testAPIKey,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().GetActiveCycle(gomock.Any(), &other).Return(&dto.ActiveCycleResponse{CycleNumber: 4}, nil)
			},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			exec := mocks.NewMockAPIExecutor(ctrl)
			if tt.setupMocks != nil {
				tt.setupMocks(exec)
			}

			router := gin.New()
			rest.SetupRoutes(router, rest.NewHandler(false, exec), authCfg)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/cycles/active"+tt.query, nil)
			req.Header.Set("Authorization", tt.header)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, w.Body.String())
		})
	}
}

func TestEventRoutes(t *testing.T) {
	partnerID := uuid.New()

	runRouteTests(t, []routeTest{
		{
			name:   "order paid",
			method: http.MethodPost,
			path:   "/api/v1/events/order-paid",
			body:   `{"event_id":"evt-1","order_id":"ord-1","partner_id":"` + partnerID.String() + `","amount":10000}`,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().PublishEvent(gomock.Any(), domain.SubjectOrderPaid, dto.OrderPaidRequest{
					EventID: "evt-1", OrderID: "ord-1", PartnerID: partnerID, Amount: 10_000,
				}).Return(&dto.IngestResponse{EventID: "evt-1", Subject: domain.SubjectOrderPaid}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "order paid without an order id",
			method:         http.MethodPost,
			path:           "/api/v1/events/order-paid",
			body:           `{"partner_id":"` + partnerID.String() + `","amount":10000}`,
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apierrors.ErrCodeValidationFailed,
		},
		{
			name:   "partner joined",
			method: http.MethodPost,
			path:   "/api/v1/events/partner-joined",
			body:   `{"partner_id":"` + partnerID.String() + `","referrer_code":"ROOT","referral_code":"NEW1","tier":1}`,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().PublishEvent(gomock.Any(), domain.SubjectPartnerJoined, gomock.Any()).
					Return(&dto.IngestResponse{EventID: "generated", Subject: domain.SubjectPartnerJoined}, nil)
			},
			expectedStatus: http.StatusAccepted,
		},
		{
			name:           "milestone without amount or tokens",
			method:         http.MethodPost,
			path:           "/api/v1/events/milestone",
			body:           `{"partner_id":"` + partnerID.String() + `"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "broker unavailable",
			method: http.MethodPost,
			path:   "/api/v1/events/milestone",
			body:   `{"partner_id":"` + partnerID.String() + `","tokens":3}`,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().PublishEvent(gomock.Any(), domain.SubjectMilestone, gomock.Any()).
					Return(nil, apierrors.NewServiceError("Failed to publish event", "nats: timeout"))
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	})
}

func TestAdminRoutes(t *testing.T) {
	partnerID := uuid.New()
	withdrawalID := uuid.New()

	runRouteTests(t, []routeTest{
		{
			name:   "approve withdrawal",
			method: http.MethodPost,
			path:   "/api/v1/admin/withdrawals/" + withdrawalID.String() + "/approve",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().TransitionWithdrawal(gomock.Any(), withdrawalID, domain.WithdrawalStatusApproved, "").
					Return(&dto.WithdrawalResponse{ID: withdrawalID, Status: domain.WithdrawalStatusApproved}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "reject withdrawal",
			method: http.MethodPost,
			path:   "/api/v1/admin/withdrawals/" + withdrawalID.String() + "/reject",
			body:   `{"reason":"  bank details mismatch "}`,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().TransitionWithdrawal(gomock.Any(), withdrawalID, domain.WithdrawalStatusRejected, "bank details mismatch").
					Return(&dto.WithdrawalResponse{ID: withdrawalID, Status: domain.WithdrawalStatusRejected}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "reject withdrawal without a reason",
			method:         http.MethodPost,
			path:           "/api/v1/admin/withdrawals/" + withdrawalID.String() + "/reject",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "complete a pending withdrawal",
			method: http.MethodPost,
			path:   "/api/v1/admin/withdrawals/" + withdrawalID.String() + "/complete",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().TransitionWithdrawal(gomock.Any(), withdrawalID, domain.WithdrawalStatusCompleted, "").
					Return(nil, apierrors.FromError(domain.ErrInvalidTransition, "Failed to update withdrawal"))
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:   "suspend partner",
			method: http.MethodPost,
			path:   "/api/v1/admin/partners/" + partnerID.String() + "/suspend",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().UpdatePartnerStatus(gomock.Any(), partnerID, domain.PartnerStatusSuspended).
					Return(&dto.PartnerResponse{ID: partnerID, Status: domain.PartnerStatusSuspended}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "activate partner",
			method: http.MethodPost,
			path:   "/api/v1/admin/partners/" + partnerID.String() + "/activate",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().UpdatePartnerStatus(gomock.Any(), partnerID, domain.PartnerStatusActive).
					Return(&dto.PartnerResponse{ID: partnerID, Status: domain.PartnerStatusActive}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "expire partner",
			method: http.MethodPost,
			path:   "/api/v1/admin/partners/" + partnerID.String() + "/expire",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().UpdatePartnerStatus(gomock.Any(), partnerID, domain.PartnerStatusExpired).
					Return(&dto.PartnerResponse{ID: partnerID, Status: domain.PartnerStatusExpired}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "new adjustment",
			method: http.MethodPost,
			path:   "/api/v1/admin/partners/" + partnerID.String() + "/adjustments",
			body:   `{"account_kind":"cash","delta":-250,"reference_id":"ticket-7"}`,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().PostAdjustment(gomock.Any(), partnerID, dto.AdjustmentRequest{
					AccountKind: domain.AccountCash, Delta: -250, ReferenceID: "ticket-7",
				}).Return(&dto.AdjustmentResponse{}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:   "replayed adjustment",
			method: http.MethodPost,
			path:   "/api/v1/admin/partners/" + partnerID.String() + "/adjustments",
			body:   `{"account_kind":"cash","delta":-250,"reference_id":"ticket-7"}`,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().PostAdjustment(gomock.Any(), partnerID, gomock.Any()).Return(&dto.AdjustmentResponse{Duplicate: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "zero adjustment",
			method:         http.MethodPost,
			path:           "/api/v1/admin/partners/" + partnerID.String() + "/adjustments",
			body:           `{"account_kind":"cash","delta":0}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:   "freeze account",
			method: http.MethodPost,
			path:   "/api/v1/admin/partners/" + partnerID.String() + "/accounts/cash/freeze",
			body:   `{"reason":"drift"}`,
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().SetAccountFrozen(gomock.Any(), partnerID, domain.AccountCash, true, "drift").
					Return(&dto.PartnerResponse{ID: partnerID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "unfreeze account",
			method: http.MethodPost,
			path:   "/api/v1/admin/partners/" + partnerID.String() + "/accounts/cash/unfreeze",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().SetAccountFrozen(gomock.Any(), partnerID, domain.AccountCash, false, "").
					Return(&dto.PartnerResponse{ID: partnerID}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:   "settle cycle",
			method: http.MethodPost,
			path:   "/api/v1/admin/cycles/settle",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().SettleCycle(gomock.Any()).Return(&dto.SettlementResponse{Settled: true, CycleNumber: 3, PerTokenValue: 100}, nil)
			},
			expectedStatus: http.StatusOK,
			checkBody: func(t *testing.T, body []byte) {
				var resp dto.SettlementResponse
				require.NoError(t, json.Unmarshal(body, &resp))
				assert.Equal(t, int64(100), resp.PerTokenValue)
			},
		},
		{
			name:   "settle while another settlement runs",
			method: http.MethodPost,
			path:   "/api/v1/admin/cycles/settle",
			setupMocks: func(e *mocks.MockAPIExecutor) {
				e.EXPECT().SettleCycle(gomock.Any()).Return(nil, apierrors.FromError(domain.ErrSettlementInProgress, "Failed to settle cycle"))
			},
			expectedStatus: http.StatusConflict,
		},
	})
}

func TestHealthCheck(t *testing.T) {
	ctrl := gomock.NewController(t)
	router := gin.New()
	rest.SetupRoutes(router, rest.NewHandler(false, mocks.NewMockAPIExecutor(ctrl)), middleware.AuthConfig{})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}
