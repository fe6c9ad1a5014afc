package log

import (
	"context"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig configures the zap-backed logger.
type ZapConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type zapLogger struct {
	sugar *zap.SugaredLogger
	// routed skips one extra frame for calls that go through logw.
	routed *zap.SugaredLogger
}

// Init builds a Logger from cfg. Unknown levels fall back to info.
func Init(cfg ZapConfig) Logger {
	level := zap.NewAtomicLevelAt(parseLevel(cfg.Level))

	var encCfg zapcore.EncoderConfig
	if cfg.Mode == ModeProduction {
		encCfg = zap.NewProductionEncoderConfig()
	} else {
		encCfg = zap.NewDevelopmentEncoderConfig()
	}
	encCfg.TimeKey = "time"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeCaller = zapcore.ShortCallerEncoder
	if cfg.ColorEnabled && cfg.Encoding != EncodingJSON {
		encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	} else {
		encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	}

	var encoder zapcore.Encoder
	if cfg.Encoding == EncodingJSON {
		encoder = zapcore.NewJSONEncoder(encCfg)
	} else {
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	core := zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), level)
	opts := []zap.Option{zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel)}
	if cfg.Mode != ModeProduction {
		opts = append(opts, zap.Development())
	}

	base := zap.New(core, opts...)
	return &zapLogger{sugar: base.Sugar(), routed: base.WithOptions(zap.AddCallerSkip(1)).Sugar()}
}

// NewNop returns a Logger that discards everything.
func NewNop() Logger {
	nop := zap.NewNop().Sugar()
	return &zapLogger{sugar: nop, routed: nop}
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	case "dpanic":
		return zapcore.DPanicLevel
	case "panic":
		return zapcore.PanicLevel
	case "fatal":
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *zapLogger) with(ctx context.Context) *zap.SugaredLogger {
	return withContext(l.sugar, ctx)
}

func (l *zapLogger) withRouted(ctx context.Context) *zap.SugaredLogger {
	return withContext(l.routed, ctx)
}

func withContext(s *zap.SugaredLogger, ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return s
	}
	if id, ok := ctx.Value(ContextKeyRequestID).(string); ok && id != "" {
		return s.With(RequestIDKey, id)
	}
	return s
}

// Info-style methods take a message followed by optional key/value pairs.
func (l *zapLogger) Debug(ctx context.Context, arg ...any) {
	s := l.withRouted(ctx)
	logw(s.Debugw, s.Debug, arg)
}
func (l *zapLogger) Info(ctx context.Context, arg ...any) {
	s := l.withRouted(ctx)
	logw(s.Infow, s.Info, arg)
}
func (l *zapLogger) Warn(ctx context.Context, arg ...any) {
	s := l.withRouted(ctx)
	logw(s.Warnw, s.Warn, arg)
}
func (l *zapLogger) Error(ctx context.Context, arg ...any) {
	s := l.withRouted(ctx)
	logw(s.Errorw, s.Error, arg)
}
func (l *zapLogger) DPanic(ctx context.Context, arg ...any) {
	s := l.withRouted(ctx)
	logw(s.DPanicw, s.DPanic, arg)
}
func (l *zapLogger) Panic(ctx context.Context, arg ...any) {
	s := l.withRouted(ctx)
	logw(s.Panicw, s.Panic, arg)
}
func (l *zapLogger) Fatal(ctx context.Context, arg ...any) {
	s := l.withRouted(ctx)
	logw(s.Fatalw, s.Fatal, arg)
}

func (l *zapLogger) Debugf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Debugf(template, arg...)
}
func (l *zapLogger) Infof(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Infof(template, arg...)
}
func (l *zapLogger) Warnf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Warnf(template, arg...)
}
func (l *zapLogger) Errorf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Errorf(template, arg...)
}
func (l *zapLogger) DPanicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).DPanicf(template, arg...)
}
func (l *zapLogger) Panicf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Panicf(template, arg...)
}
func (l *zapLogger) Fatalf(ctx context.Context, template string, arg ...any) {
	l.with(ctx).Fatalf(template, arg...)
}

// logw routes (msg, k1, v1, ...) to the structured variant and anything else to
// the plain variant, so both Info(ctx, "msg", "k", v) and Info(ctx, "a", err) work.
func logw(structured func(string, ...any), plain func(...any), arg []any) {
	if len(arg) > 1 && len(arg)%2 == 1 {
		if msg, ok := arg[0].(string); ok && keysAreStrings(arg[1:]) {
			structured(msg, arg[1:]...)
			return
		}
	}
	plain(arg...)
}

func keysAreStrings(kv []any) bool {
	for i := 0; i < len(kv); i += 2 {
		if _, ok := kv[i].(string); !ok {
			return false
		}
	}
	return true
}
