package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey struct{}

var once sync.Once

var (
	logger *zap.SugaredLogger
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// Get initializes a zap.SugaredLogger instance if it has not been initialized
// already and returns the same instance for subsequent calls.
func Get() *zap.SugaredLogger {
	once.Do(func() {
		stdout := zapcore.AddSync(os.Stdout)

		if levelEnv := os.Getenv("LOG_LEVEL"); levelEnv != "" {
			if err := SetLevel(levelEnv); err != nil {
				log.Println(fmt.Errorf("invalid level, defaulting to INFO: %w", err))
			}
		}

		productionCfg := zap.NewProductionEncoderConfig()
		productionCfg.TimeKey = "timestamp"
		productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder

		developmentCfg := zap.NewDevelopmentEncoderConfig()
		developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

		encoder := zapcore.NewConsoleEncoder(developmentCfg)
		if os.Getenv("JSON_LOG") != "" {
			encoder = zapcore.NewJSONEncoder(productionCfg)
		}

		core := zapcore.NewCore(encoder, stdout, level)

		buildInfo, ok := debug.ReadBuildInfo()
		if ok {
			fields := []zapcore.Field{zap.String("go_version", buildInfo.GoVersion)}
			for _, v := range buildInfo.Settings {
				if v.Key == "vcs.revision" && len(v.Value) >= 7 {
					fields = append(fields, zap.String("git_revision", v.Value[0:7]))
					break
				}
			}

			core = core.With(fields)
		}

		logger = zap.New(core).Sugar().Named("showtrack")
	})

	return logger
}

// SetLevel changes the level of every logger handed out by Get.
func SetLevel(l string) error {
	parsed, err := zapcore.ParseLevel(l)
	if err != nil {
		return err
	}

	level.SetLevel(parsed)
	return nil
}

// FromCtx returns the Logger associated with the ctx. If no logger
// is associated, the default logger is returned. Optional key/value pairs
// are attached to the returned logger.
func FromCtx(ctx context.Context, with ...any) *zap.SugaredLogger {
	l, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger)
	if !ok {
		l = Get()
	}

	if len(with) == 0 {
		return l
	}

	return l.With(with...)
}

// WithCtx returns a copy of ctx with the Logger attached.
func WithCtx(ctx context.Context, l *zap.SugaredLogger) context.Context {
	if lp, ok := ctx.Value(ctxKey{}).(*zap.SugaredLogger); ok && lp == l {
		return ctx
	}

	return context.WithValue(ctx, ctxKey{}, l)
}
