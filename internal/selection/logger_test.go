package selection

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestSetLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	src := NewImageSource(createFilledImage(4, 4, red))
	if _, err := SelectBySeed(src, 1, 1, Options{}); err != nil {
		t.Fatalf("SelectBySeed failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "select by seed") || !strings.Contains(out, "segments=4") {
		t.Errorf("unexpected log output: %q", out)
	}

	SetLogger(nil)
	buf.Reset()
	if _, err := SelectByColor(src, PixelFromColor(red), Options{}); err != nil {
		t.Fatalf("SelectByColor failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("default logger wrote output: %q", buf.String())
	}
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
