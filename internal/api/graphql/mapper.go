package graphql

import (
	"context"
	"fmt"

	"github.com/99designs/gqlgen/graphql"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/feral-file/ff-partner-ledger/internal/api/middleware"
	"github.com/feral-file/ff-partner-ledger/internal/api/shared/dto"
	apierrors "github.com/feral-file/ff-partner-ledger/internal/api/shared/errors"
	"github.com/feral-file/ff-partner-ledger/internal/domain"
)

type ginContextKey struct{}

// withGinContext exposes the authenticated gin context to resolvers
func withGinContext(ctx context.Context, c *gin.Context) context.Context {
	return context.WithValue(ctx, ginContextKey{}, c)
}

func ginContextFromContext(ctx context.Context) *gin.Context {
	c, _ := ctx.Value(ginContextKey{}).(*gin.Context)
	return c
}

// authorizePartner applies the REST partner scope: API keys reach every partner, JWTs only their own
func authorizePartner(ctx context.Context, partnerID uuid.UUID) error {
	gc := ginContextFromContext(ctx)
	if gc == nil || !middleware.CanAccessPartner(gc, partnerID.String()) {
		return apierrors.NewForbiddenError("Access to this partner is not allowed")
	}
	return nil
}

// referralLevel is one level of a partner's downline, level 1 being direct referrals
type referralLevel struct {
	Level int   `json:"level"`
	Count int64 `json:"count"`
}

type referralTree struct {
	PartnerID     uuid.UUID       `json:"partner_id"`
	Depth         int             `json:"depth"`
	DirectCount   int64           `json:"direct_count"`
	TotalDownline int64           `json:"total_downline"`
	Levels        []referralLevel `json:"levels"`
}

func mapReferralTree(s *dto.ReferralSummaryResponse) *referralTree {
	if s == nil {
		return nil
	}
	levels := make([]referralLevel, 0, len(s.LevelCounts))
	for i, count := range s.LevelCounts {
		levels = append(levels, referralLevel{Level: i + 1, Count: count})
	}
	return &referralTree{
		PartnerID:     s.PartnerID,
		Depth:         s.Depth,
		DirectCount:   s.DirectCount,
		TotalDownline: s.TotalDownline,
		Levels:        levels,
	}
}

// uuidArg decodes an optional UUID argument, nil when absent
func uuidArg(args map[string]any, name string) (*uuid.UUID, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, nil
	}
	s, err := graphql.UnmarshalString(v)
	if err != nil {
		return nil, apierrors.NewBadRequestError(fmt.Sprintf("Invalid %s", name), err.Error())
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, apierrors.NewBadRequestError(fmt.Sprintf("Invalid %s", name), s)
	}
	return &id, nil
}

// requiredUUIDArg decodes a non-null UUID argument
func requiredUUIDArg(args map[string]any, name string) (uuid.UUID, error) {
	id, err := uuidArg(args, name)
	if err != nil {
		return uuid.Nil, err
	}
	if id == nil {
		return uuid.Nil, apierrors.NewBadRequestError(fmt.Sprintf("%s is required", name))
	}
	return *id, nil
}

// intArg decodes an optional Int argument, fallback when absent or null
func intArg(args map[string]any, name string, fallback int) (int, error) {
	v, ok := args[name]
	if !ok || v == nil {
		return fallback, nil
	}
	n, err := graphql.UnmarshalInt(v)
	if err != nil {
		return 0, apierrors.NewBadRequestError(fmt.Sprintf("Invalid %s", name), err.Error())
	}
	return n, nil
}

func accountKindArg(args map[string]any, name string) (domain.AccountKind, error) {
	s, err := graphql.UnmarshalString(args[name])
	if err != nil {
		return "", apierrors.NewBadRequestError(fmt.Sprintf("Invalid %s", name), err.Error())
	}
	return domain.AccountKind(s), nil
}
