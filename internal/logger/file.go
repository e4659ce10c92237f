package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Rotation defaults for the log file.
const (
	DefaultMaxSizeMB  = 10
	DefaultMaxBackups = 3
	DefaultMaxAgeDays = 14
)

// FileOptions configures a file-backed logger.
type FileOptions struct {
	// Path of the log file. Parent directories are created.
	Path string
	// Debug enables debug level output.
	Debug bool

	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// DefaultLogPath returns ~/.cache/apex/apex.log (or the platform equivalent).
func DefaultLogPath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "apex", "apex.log")
}

// zapLogger adapts a zap SugaredLogger to the Logger interface.
type zapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZap wraps an existing zap logger. The component name is attached to
// every entry as the logger name.
func NewZap(z *zap.Logger, component string) Logger {
	if component != "" {
		z = z.Named(component)
	}
	return &zapLogger{sugar: z.Sugar()}
}

// NewFileLogger builds a JSON logger that writes to a rotating file.
// The returned close function flushes buffered entries and closes the file.
func NewFileLogger(opts FileOptions) (Logger, func() error, error) {
	if opts.Path == "" {
		opts.Path = DefaultLogPath()
	}
	if err := os.MkdirAll(filepath.Dir(opts.Path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}

	rotator := &lumberjack.Logger{
		Filename:   opts.Path,
		MaxSize:    orDefault(opts.MaxSizeMB, DefaultMaxSizeMB),
		MaxBackups: orDefault(opts.MaxBackups, DefaultMaxBackups),
		MaxAge:     orDefault(opts.MaxAgeDays, DefaultMaxAgeDays),
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level)
	z := zap.New(core)

	closeFn := func() error {
		_ = z.Sync()
		return rotator.Close()
	}
	return NewZap(z, "apex"), closeFn, nil
}

func orDefault(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func (l *zapLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *zapLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *zapLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *zapLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}
