package app

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLogHandler_Handle(t *testing.T) {
	ts := time.Date(2024, 6, 15, 14, 30, 45, 0, time.UTC)

	tests := []struct {
		name    string
		op      string
		level   slog.Level
		message string
		attrs   []slog.Attr
		want    string
	}{
		{
			name:    "basic info message",
			op:      "AddRecipe",
			level:   slog.LevelInfo,
			message: "recipe added",
			want:    "2024-06-15T14:30:45Z\tINFO\tAddRecipe\trecipe added\n",
		},
		{
			name:    "warn level",
			op:      "ListRecipes",
			level:   slog.LevelWarn,
			message: "discarding corrupt collection",
			want:    "2024-06-15T14:30:45Z\tWARN\tListRecipes\tdiscarding corrupt collection\n",
		},
		{
			name:    "with record attrs",
			op:      "AddPantryItem",
			level:   slog.LevelInfo,
			message: "pantry item added",
			attrs:   []slog.Attr{slog.String("name", "Tomato"), slog.Int("count", 3)},
			want:    "2024-06-15T14:30:45Z\tINFO\tAddPantryItem\tpantry item added\tname=Tomato\tcount=3\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			h := &logHandler{w: &buf, op: tt.op}

			r := slog.NewRecord(ts, tt.level, tt.message, 0)
			for _, a := range tt.attrs {
				r.AddAttrs(a)
			}

			if err := h.Handle(context.Background(), r); err != nil {
				t.Fatalf("Handle() error = %v", err)
			}

			if got := buf.String(); got != tt.want {
				t.Errorf("Handle() output =\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestLogHandler_WithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h := &logHandler{w: &buf, op: "Export"}

	h2 := h.WithAttrs([]slog.Attr{slog.String("component", "archive")}).(*logHandler)

	ts := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	r := slog.NewRecord(ts, slog.LevelInfo, "written", 0)
	r.AddAttrs(slog.String("path", "/tmp/out.age"))

	if err := h2.Handle(context.Background(), r); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	got := buf.String()
	if !strings.Contains(got, "component=archive") {
		t.Errorf("expected pre-set attr component=archive, got: %q", got)
	}
	if !strings.Contains(got, "path=/tmp/out.age") {
		t.Errorf("expected record attr path=/tmp/out.age, got: %q", got)
	}
}

func TestLogHandler_WithAttrs_doesNotMutateOriginal(t *testing.T) {
	var buf bytes.Buffer
	h := &logHandler{w: &buf, op: "op", attrs: []slog.Attr{slog.String("a", "1")}}

	h2 := h.WithAttrs([]slog.Attr{slog.String("b", "2")}).(*logHandler)

	if len(h.attrs) != 1 {
		t.Errorf("original handler attrs modified: got %d, want 1", len(h.attrs))
	}
	if len(h2.attrs) != 2 {
		t.Errorf("new handler attrs: got %d, want 2", len(h2.attrs))
	}
}

func TestLogHandler_Enabled(t *testing.T) {
	h := &logHandler{}
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if !h.Enabled(context.Background(), level) {
			t.Errorf("Enabled(%v) = false, want true", level)
		}
	}
}

func TestNewLogger(t *testing.T) {
	dir := t.TempDir()

	logger, f, err := newLogger(dir, "TestOp")
	if err != nil {
		t.Fatalf("newLogger() error = %v", err)
	}
	defer f.Close()

	if logger == nil {
		t.Fatal("newLogger() returned nil logger")
	}
	if f == nil {
		t.Fatal("newLogger() returned nil file")
	}
}
