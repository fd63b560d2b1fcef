package temporal

import (
	"context"
	"errors"
	"strconv"

	"github.com/getsentry/sentry-go"
	"go.temporal.io/sdk/activity"
	"go.temporal.io/sdk/interceptor"
	"go.temporal.io/sdk/temporal"
)

// NewSentryActivityInterceptor gives every activity its own Sentry hub tagged with the activity identity
func NewSentryActivityInterceptor() interceptor.WorkerInterceptor {
	return &SentryActivityInterceptor{}
}

// SentryActivityInterceptor clones the Sentry hub per activity execution
type SentryActivityInterceptor struct {
	interceptor.WorkerInterceptorBase
}

func (s *SentryActivityInterceptor) InterceptActivity(ctx context.Context, next interceptor.ActivityInboundInterceptor) interceptor.ActivityInboundInterceptor {
	i := &sentryActivityInboundInterceptor{}
	i.Next = next
	return i
}

type sentryActivityInboundInterceptor struct {
	interceptor.ActivityInboundInterceptorBase
}

// ExecuteActivity runs the activity with a tagged hub and reports errors that will not be retried
func (s *sentryActivityInboundInterceptor) ExecuteActivity(ctx context.Context, in *interceptor.ExecuteActivityInput) (interface{}, error) {
	hub := sentry.CurrentHub().Clone()

	info := activity.GetInfo(ctx)
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("activity", info.ActivityType.Name)
		scope.SetTag("workflow_id", info.WorkflowExecution.ID)
		scope.SetTag("attempt", strconv.Itoa(int(info.Attempt)))
	})

	ctx = sentry.SetHubOnContext(ctx, hub)

	result, err := s.Next.ExecuteActivity(ctx, in)
	if err != nil && isFinal(err) {
		hub.CaptureException(err)
	}
	return result, err
}

// isFinal reports whether Temporal will stop retrying after err
func isFinal(err error) bool {
	var appErr *temporal.ApplicationError
	return errors.As(err, &appErr) && appErr.NonRetryable()
}
