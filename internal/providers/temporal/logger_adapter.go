package temporal

import (
	"fmt"

	"go.temporal.io/sdk/log"
	"go.uber.org/zap"

	"github.com/feral-file/ff-partner-ledger/internal/logger"
)

// ZapLoggerAdapter routes Temporal SDK logs through the service logger
type ZapLoggerAdapter struct {
	logger *zap.Logger
}

var (
	_ log.Logger     = (*ZapLoggerAdapter)(nil)
	_ log.WithLogger = (*ZapLoggerAdapter)(nil)
)

// NewZapLoggerAdapter wraps l; a nil l uses the global logger
func NewZapLoggerAdapter(l *zap.Logger) *ZapLoggerAdapter {
	if l == nil {
		l = logger.Default()
	}
	return &ZapLoggerAdapter{logger: l.Named("temporal")}
}

func (z *ZapLoggerAdapter) Debug(msg string, keyvals ...interface{}) {
	z.logger.Debug(msg, keyvalFields(keyvals)...)
}

func (z *ZapLoggerAdapter) Info(msg string, keyvals ...interface{}) {
	z.logger.Info(msg, keyvalFields(keyvals)...)
}

func (z *ZapLoggerAdapter) Warn(msg string, keyvals ...interface{}) {
	z.logger.Warn(msg, keyvalFields(keyvals)...)
}

func (z *ZapLoggerAdapter) Error(msg string, keyvals ...interface{}) {
	z.logger.Error(msg, keyvalFields(keyvals)...)
}

// With returns an adapter carrying keyvals on every entry
func (z *ZapLoggerAdapter) With(keyvals ...interface{}) log.Logger {
	return &ZapLoggerAdapter{logger: z.logger.With(keyvalFields(keyvals)...)}
}

// keyvalFields pairs Temporal's key1, val1, key2, val2 list into zap fields.
// A dangling key is kept with a nil value and a non string key is stringified.
func keyvalFields(keyvals []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, (len(keyvals)+1)/2)
	for i := 0; i < len(keyvals); i += 2 {
		key, ok := keyvals[i].(string)
		if !ok {
			key = fmt.Sprint(keyvals[i])
		}

		var val interface{}
		if i+1 < len(keyvals) {
			val = keyvals[i+1]
		}

		if err, ok := val.(error); ok {
			fields = append(fields, zap.NamedError(key, err))
			continue
		}
		fields = append(fields, zap.Any(key, val))
	}
	return fields
}
