package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// dualHandler writes every record to the core handler and copies errors to a
// second handler, usually a file.
type dualHandler struct {
	coreHandler  slog.Handler
	errorHandler slog.Handler
}

func (h *dualHandler) Enabled(ctx context.Context, lvl slog.Level) bool {
	return h.coreHandler.Enabled(ctx, lvl) || h.errorHandler.Enabled(ctx, lvl)
}

func (h *dualHandler) Handle(ctx context.Context, r slog.Record) error {
	var err error

	if h.coreHandler.Enabled(ctx, r.Level) {
		err = h.coreHandler.Handle(ctx, r)
		if err != nil {
			return err
		}
	}

	if r.Level >= slog.LevelError && h.errorHandler.Enabled(ctx, r.Level) {
		// a broken error file must not take the main output down with it
		_ = h.errorHandler.Handle(ctx, r.Clone())
	}

	return err
}

func (h *dualHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithAttrs(attrs),
		errorHandler: h.errorHandler.WithAttrs(attrs),
	}
}

func (h *dualHandler) WithGroup(name string) slog.Handler {
	return &dualHandler{
		coreHandler:  h.coreHandler.WithGroup(name),
		errorHandler: h.errorHandler.WithGroup(name),
	}
}

// Setup builds the service logger. Errors are additionally appended to
// errorLogPath; when that file cannot be opened only stdout is used.
func Setup(env, errorLogPath string) *slog.Logger {
	core := coreHandler(env, os.Stdout)

	if errorLogPath == "" {
		return slog.New(core)
	}

	errorFile, err := os.OpenFile(errorLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
	if err != nil {
		log := slog.New(core)
		log.Warn("cannot open error log file", slog.String("path", errorLogPath), slog.String("error", err.Error()))
		return log
	}

	return New(env, os.Stdout, errorFile)
}

// New wires the dual handler over arbitrary writers.
func New(env string, out, errOut io.Writer) *slog.Logger {
	return slog.New(&dualHandler{
		coreHandler:  coreHandler(env, out),
		errorHandler: slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelError}),
	})
}

func coreHandler(env string, out io.Writer) slog.Handler {
	level := slog.LevelDebug
	if env == EnvProd {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	switch env {
	case EnvDev:
		return slog.NewJSONHandler(out, opts)
	default:
		return slog.NewTextHandler(out, opts)
	}
}
