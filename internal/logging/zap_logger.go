package logging

import (
	"fmt"
	"io"

	"github.com/vvka-141/msgprep/pkg/msgprep"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger adapts a *zap.Logger to msgprep.Logger.
// Verbose maps to debug level, which is only enabled in verbose mode.
type ZapLogger struct {
	logger *zap.Logger
}

// NewZapLogger creates a JSON logger writing to out, tagging every entry with runID.
func NewZapLogger(out io.Writer, verbose bool, runID string) *ZapLogger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(out)),
		level,
	)

	return &ZapLogger{
		logger: zap.New(core).With(zap.String("run_id", runID)),
	}
}

// Verbose logs at debug level.
func (l *ZapLogger) Verbose(format string, args ...interface{}) {
	l.logger.Debug(sprintf(format, args))
}

// Info logs at info level.
func (l *ZapLogger) Info(format string, args ...interface{}) {
	l.logger.Info(sprintf(format, args))
}

// Error logs at error level.
func (l *ZapLogger) Error(format string, args ...interface{}) {
	l.logger.Error(sprintf(format, args))
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.logger.Sync()
}

func sprintf(format string, args []interface{}) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

var _ msgprep.Logger = (*ZapLogger)(nil)
