package drawkit

import (
	"context"
	"log/slog"
	"os"
	"testing"
)

func TestLogger_DefaultIsSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled at every level")
	}
}

func TestSetLogger(t *testing.T) {
	custom := slog.New(slog.NewTextHandler(os.Stderr, nil))
	SetLogger(custom)
	defer SetLogger(nil)

	if Logger() != custom {
		t.Error("Logger() should return the logger passed to SetLogger")
	}

	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("SetLogger(nil) should restore the silent default")
	}
}
