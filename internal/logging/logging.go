package logging

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	once sync.Once
	base *slog.Logger
)

// Init configures the global logger exactly once: JSON to stdout plus a
// rotated file. Call it first thing in main().
func Init(component, filePath string) *slog.Logger {
	once.Do(func() {
		_ = os.MkdirAll(filepath.Dir(filePath), 0o755)

		rotated := &lumberjack.Logger{
			Filename:   filePath,
			MaxSize:    50, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
		}
		out := io.MultiWriter(os.Stdout, rotated)

		handler := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
		base = slog.New(handler).With("component", component)
	})
	return base
}

// Base returns the global logger, initializing a default one if Init was
// never called (tests, mostly).
func Base() *slog.Logger {
	if base == nil {
		return Init("deliciae", "./logs/deliciae.log")
	}
	return base
}

// New returns a child logger for one component; it reuses the global
// handler and writer.
func New(component string) *slog.Logger {
	return Base().With("component", component)
}

// With stores a request-scoped logger in the gin context.
func With(c *gin.Context, l *slog.Logger) {
	c.Set("logger", l)
}

// From returns the request-scoped logger, or the global one if the
// middleware didn't run.
func From(c *gin.Context) *slog.Logger {
	if v, ok := c.Get("logger"); ok {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}
	return Base()
}
