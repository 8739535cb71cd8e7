package ext

import (
	"github.com/ib-77/fluent/pkg/fluent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ fluent.Extension = (*Logging)(nil)

// Logging writes one entry per notification at a fixed level.
type Logging struct {
	logger *zap.Logger
	level  zapcore.Level
}

func NewLogging(logger *zap.Logger, level zapcore.Level) *Logging {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Logging{logger: logger.Named("chain"), level: level}
}

func (l *Logging) BeforeCall(method string, args []any) {
	l.logger.Log(l.level, "calling method",
		zap.String("method", method),
		zap.Any("args", args),
	)
}

func (l *Logging) AfterCall(method string, result any) {
	l.logger.Log(l.level, "method returned",
		zap.String("method", method),
		zap.Any("result", result),
	)
}
