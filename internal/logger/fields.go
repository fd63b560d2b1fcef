package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Field names shared by every process so log queries work across services.

// Partner tags a log line with a partner id
func Partner(id fmt.Stringer) zap.Field {
	return zap.Stringer("partner_id", id)
}

// Account tags a log line with a ledger account kind
func Account(kind string) zap.Field {
	return zap.String("account_kind", kind)
}

// Cycle tags a log line with a bonus pool cycle number
func Cycle(number int64) zap.Field {
	return zap.Int64("cycle_number", number)
}

// Event tags a log line with a business event id
func Event(id string) zap.Field {
	return zap.String("event_id", id)
}
