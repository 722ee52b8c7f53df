package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ifcgraph/pkg/observability"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("traced references", "start", "#24")

	out := buf.String()
	if !strings.Contains(out, "traced references") || !strings.Contains(out, "start=#24") {
		t.Errorf("logger output = %q", out)
	}
}

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{
			name:    "info at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Info("test") },
			wantLog: true,
		},
		{
			name:    "debug at info level",
			level:   log.InfoLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: false,
		},
		{
			name:    "debug at debug level",
			level:   log.DebugLevel,
			logFunc: func(l *log.Logger) { l.Debug("test") },
			wantLog: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level)
			tt.logFunc(logger)

			gotLog := buf.Len() > 0
			if gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel), "parsed")
	time.Sleep(5 * time.Millisecond)
	prog.done("file", "wall.ifc", "records", 5)

	out := buf.String()
	for _, want := range []string{"parsed", "file=wall.ifc", "records=5", "took="} {
		if !strings.Contains(out, want) {
			t.Errorf("progress output %q missing %q", out, want)
		}
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	ctx := context.Background()

	// Without logger in context, should return default
	logger := loggerFromContext(ctx)
	if logger == nil {
		t.Error("loggerFromContext should return default logger when none set")
	}
}

func TestLoggerFromContextWithValue(t *testing.T) {
	ctx := context.Background()
	var buf bytes.Buffer
	customLogger := newLogger(&buf, log.InfoLevel)

	ctx = withLogger(ctx, customLogger)
	retrieved := loggerFromContext(ctx)

	if retrieved != customLogger {
		t.Error("loggerFromContext should return the custom logger")
	}

	// Verify it works by logging
	retrieved.Info("test")
	if buf.Len() == 0 {
		t.Error("custom logger should write to buffer")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.DebugLevel)}
	ctx := context.Background()

	h.OnParseComplete(ctx, "wall.ifc", 5, 12*time.Millisecond, nil)
	h.OnTraceComplete(ctx, "#99", 0, 0, errors.New("tag #99 does not exist"))
	h.OnCacheHit(ctx, observability.StageLayout)

	out := buf.String()
	for _, want := range []string{"parse finished", "records=5", "trace failed", "cache hit", "stage=layout"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	h := logHooks{logger: newLogger(&buf, log.InfoLevel)}
	h.OnCacheMiss(context.Background(), observability.StageGraph)
	if buf.Len() != 0 {
		t.Errorf("debug events should be hidden at info level, got %q", buf.String())
	}
}

func TestRootCommandRegistersHooks(t *testing.T) {
	t.Cleanup(observability.Reset)
	observability.Reset()

	tc := newTestCLI(t, &fakePrompter{})
	if err := tc.run(t, "cache", "path"); err != nil {
		t.Fatal(err)
	}
	if _, ok := observability.Pipeline().(logHooks); !ok {
		t.Errorf("pipeline hooks = %T, want logHooks", observability.Pipeline())
	}
	if _, ok := observability.Cache().(logHooks); !ok {
		t.Errorf("cache hooks = %T, want logHooks", observability.Cache())
	}
}
