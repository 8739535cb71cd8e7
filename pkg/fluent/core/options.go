package core

import (
	"context"
	"io"
	"os"

	"github.com/ib-77/fluent/pkg/fluent"
	"go.uber.org/zap"
)

type OptionKey string

const (
	ConfigOptionKey   OptionKey = "chain_config"
	ResolverOptionKey OptionKey = "chain_resolver"
	LoggerOptionKey   OptionKey = "chain_logger"
	DumpOptionKey     OptionKey = "chain_dump_writer"
)

func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, ConfigOptionKey, cfg)
}

func ConfigFrom(ctx context.Context) Config {
	cfg, ok := ctx.Value(ConfigOptionKey).(Config)
	if ok {
		return cfg
	}
	return Default()
}

func WithResolver(ctx context.Context, resolver fluent.Resolver) context.Context {
	return context.WithValue(ctx, ResolverOptionKey, resolver)
}

// ResolverFrom returns nil when no resolver was set.
func ResolverFrom(ctx context.Context) fluent.Resolver {
	resolver, _ := ctx.Value(ResolverOptionKey).(fluent.Resolver)
	return resolver
}

func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, logger)
}

func LoggerFrom(ctx context.Context) *zap.Logger {
	logger, ok := ctx.Value(LoggerOptionKey).(*zap.Logger)
	if ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}

func WithDumpWriter(ctx context.Context, w io.Writer) context.Context {
	return context.WithValue(ctx, DumpOptionKey, w)
}

func DumpWriterFrom(ctx context.Context) io.Writer {
	w, ok := ctx.Value(DumpOptionKey).(io.Writer)
	if ok && w != nil {
		return w
	}
	return os.Stdout
}
