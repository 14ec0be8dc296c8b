package log

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

func TestDebugDisabledByDefault(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil

	t.Setenv("SB_DEBUG", "")
	InitDebug()

	if DebugEnabled {
		t.Error("Debug should be disabled by default")
	}
	if DebugLog == nil {
		t.Error("DebugLog should be a no-op logger, not nil")
	}
}

func TestDebugEnabledWithEnvVar(t *testing.T) {
	DebugEnabled = false
	DebugLog = nil

	t.Setenv("SB_DEBUG", "1")

	InitDebug()
	defer func() {
		CloseDebug()
		DebugEnabled = false
	}()

	if !DebugEnabled {
		t.Error("Debug should be enabled with SB_DEBUG=1")
	}
	if DebugLog == nil {
		t.Error("DebugLog should be initialized")
	}
}

func TestDebugFunction(t *testing.T) {
	// When disabled, should not panic
	DebugEnabled = false
	DebugLog = nil
	Debug("test message %s", "arg")

	// When enabled but log is nil, should not panic
	DebugEnabled = true
	DebugLog = nil
	Debug("test message %s", "arg")
	DebugEnabled = false
}

func TestRenderProfiler(t *testing.T) {
	profiler.Reset()
	defer func() { DebugEnabled = false }()

	t.Run("StartRender returns noop when disabled", func(t *testing.T) {
		DebugEnabled = false
		done := profiler.StartRender("test")
		done()

		if len(profiler.components) != 0 {
			t.Error("Should not record when disabled")
		}
	})

	t.Run("StartRender records when enabled", func(t *testing.T) {
		DebugEnabled = true
		profiler.Reset()

		done := profiler.StartRender("grid")
		time.Sleep(1 * time.Millisecond)
		done()

		metrics := profiler.components["grid"]
		if metrics == nil {
			t.Fatal("Expected metrics for grid")
		}
		if metrics.RenderCount != 1 {
			t.Errorf("Expected render count 1, got %d", metrics.RenderCount)
		}
		if metrics.TotalTime < time.Millisecond {
			t.Errorf("Expected total time >= 1ms, got %v", metrics.TotalTime)
		}
	})

	t.Run("multiple renders accumulate", func(t *testing.T) {
		DebugEnabled = true
		profiler.Reset()

		for i := 0; i < 5; i++ {
			done := profiler.StartRender("slot")
			done()
		}

		metrics := profiler.components["slot"]
		if metrics == nil {
			t.Fatal("Expected metrics for slot")
		}
		if metrics.RenderCount != 5 {
			t.Errorf("Expected render count 5, got %d", metrics.RenderCount)
		}
	})
}

func TestRecordFrame(t *testing.T) {
	profiler.Reset()
	DebugEnabled = true
	defer func() { DebugEnabled = false }()

	profiler.RecordFrame(10 * time.Millisecond)
	profiler.RecordFrame(20 * time.Millisecond)

	if profiler.FrameCount() != 2 {
		t.Errorf("Expected frame count 2, got %d", profiler.FrameCount())
	}
	if profiler.totalTime != 30*time.Millisecond {
		t.Errorf("Expected total time 30ms, got %v", profiler.totalTime)
	}
}

func TestSlowFrameWarning(t *testing.T) {
	var buf bytes.Buffer
	profiler.Reset()
	DebugEnabled = true
	DebugLog = log.New(&buf, "", 0)
	defer func() {
		DebugEnabled = false
		DebugLog = nil
	}()

	profiler.RecordFrame(time.Millisecond)
	if buf.Len() != 0 {
		t.Errorf("Expected no warning for a fast frame, got %q", buf.String())
	}

	profiler.RecordFrame(frameBudget + time.Millisecond)
	if !strings.Contains(buf.String(), "[PERF WARNING] slow frame") {
		t.Errorf("Expected slow frame warning, got %q", buf.String())
	}

	RenderTrace("slot", "leftTop kind=%s", "streak")
	Debug("store changed on disk")
	if !strings.Contains(buf.String(), "[RENDER:slot] leftTop kind=streak") {
		t.Errorf("Expected render trace, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "store changed on disk") {
		t.Errorf("Expected debug line, got %q", buf.String())
	}
}

func TestGetStats(t *testing.T) {
	profiler.Reset()
	DebugEnabled = true
	defer func() { DebugEnabled = false }()

	profiler.RecordFrame(10 * time.Millisecond)
	done := profiler.StartRender("header")
	done()

	stats := profiler.GetStats()
	if !strings.Contains(stats, "Render Profile") {
		t.Error("Expected 'Render Profile' in stats")
	}
	if !strings.Contains(stats, "header") {
		t.Error("Expected 'header' in stats")
	}

	DebugEnabled = false
	if profiler.GetStats() != "" {
		t.Error("Expected empty stats when disabled")
	}
}

func TestTraceHelpers(t *testing.T) {
	// All trace helpers should not panic when disabled
	DebugEnabled = false
	DebugLog = nil

	LayoutTrace("test %s", "arg")
	RenderTrace("component", "test %s", "arg")
	InputTrace("test %s", "arg")
	PerformanceWarning("test %s", "arg")

	// Should not panic when enabled but log is nil
	DebugEnabled = true
	DebugLog = nil

	LayoutTrace("test %s", "arg")
	RenderTrace("component", "test %s", "arg")
	InputTrace("test %s", "arg")
	PerformanceWarning("test %s", "arg")
	DebugEnabled = false
}

func TestRollingWindow(t *testing.T) {
	profiler.Reset()
	DebugEnabled = true
	defer func() { DebugEnabled = false }()

	for i := 0; i < 150; i++ {
		profiler.RecordFrame(time.Millisecond)
	}

	if len(profiler.frameTimings) != 100 {
		t.Errorf("Expected 100 frame timings (rolling window), got %d", len(profiler.frameTimings))
	}
}

func TestEvery(t *testing.T) {
	e := NewEvery(time.Hour)

	if !e.ShouldLog() {
		t.Error("first call should log")
	}
	if e.ShouldLog() {
		t.Error("second call within timeout should not log")
	}

	fast := NewEvery(time.Millisecond)
	fast.ShouldLog()
	time.Sleep(5 * time.Millisecond)
	if !fast.ShouldLog() {
		t.Error("call after timeout should log")
	}
}
