package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	EMPTY   = ""
	DEBUG   = "debug"
	INFO    = "info"
	WARN    = "warn"
	ERROR   = "error"
	JSON    = "json"
	CONSOLE = "console"
	SERVICE = "service"
)

// Logger keeps the key/value call style used across the services
// ("msg", "key", value, ...) on top of a zap sugared logger.
type Logger struct {
	*zap.SugaredLogger
}

type Config struct {
	Level     string
	Format    string
	Output    io.Writer
	AddSource bool
	Service   string
}

func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stdout
	}
	if cfg.Format == EMPTY {
		cfg.Format = JSON
	}
	if cfg.Level == EMPTY {
		cfg.Level = INFO
	}

	var level zapcore.Level
	switch cfg.Level {
	case DEBUG:
		level = zapcore.DebugLevel
	case INFO:
		level = zapcore.InfoLevel
	case WARN:
		level = zapcore.WarnLevel
	case ERROR:
		level = zapcore.ErrorLevel
	default:
		level = zapcore.InfoLevel
	}

	var encoder zapcore.Encoder
	if cfg.Format == JSON {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.TimeKey = "time"
		encCfg.MessageKey = "msg"
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.AddSync(cfg.Output), zap.NewAtomicLevelAt(level))

	opts := []zap.Option{zap.AddCallerSkip(1)}
	if cfg.AddSource {
		opts = append(opts, zap.AddCaller())
	}

	base := zap.New(core, opts...)
	if cfg.Service != EMPTY {
		base = base.With(zap.String(SERVICE, cfg.Service))
	}

	return &Logger{SugaredLogger: base.Sugar()}
}

// NewNop returns a logger that discards everything. Used by tests.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Logger) Debug(msg string, args ...any) {
	l.SugaredLogger.Debugw(msg, args...)
}

func (l *Logger) Info(msg string, args ...any) {
	l.SugaredLogger.Infow(msg, args...)
}

func (l *Logger) Warn(msg string, args ...any) {
	l.SugaredLogger.Warnw(msg, args...)
}

func (l *Logger) Error(msg string, args ...any) {
	l.SugaredLogger.Errorw(msg, args...)
}

// Fatal logs a critical error and exits the application with status code 1
// Use this for unrecoverable errors that prevent the application from starting or continuing
func (l *Logger) Fatal(msg string, args ...any) {
	l.SugaredLogger.Errorw(msg, args...)
	_ = l.SugaredLogger.Sync()
	os.Exit(1)
}

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{SugaredLogger: l.SugaredLogger.With(args...)}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}
