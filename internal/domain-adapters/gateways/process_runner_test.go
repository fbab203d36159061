package gateways

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestProcessRunner_Run_Success(t *testing.T) {
	r := NewProcessRunner()
	tool := writeScript(t, "hello", `echo "hello $1"`)

	result := r.Run(context.Background(), RunConfig{Name: tool, Args: []string{"kona"}})

	if !result.Success {
		t.Errorf("Run() failed: %v", result.Error)
	}
	if result.ExitCode != 0 {
		t.Errorf("Run() exit code = %d, want 0", result.ExitCode)
	}
	if result.Stdout != "hello kona\n" {
		t.Errorf("Run() stdout = %q, want %q", result.Stdout, "hello kona\n")
	}
}

func TestProcessRunner_Run_Failure(t *testing.T) {
	r := NewProcessRunner()
	tool := writeScript(t, "fail", "exit 42")

	result := r.Run(context.Background(), RunConfig{Name: tool})

	if result.Success {
		t.Error("Run() should have failed")
	}
	if !result.Launched {
		t.Error("Run() Launched = false for a script that started")
	}
	if result.ExitCode != 42 {
		t.Errorf("Run() exit code = %d, want 42", result.ExitCode)
	}
}

func TestProcessRunner_Run_WithEnvironment(t *testing.T) {
	r := NewProcessRunner()
	tool := writeScript(t, "env", `echo "$KONA_TEST_VAR"`)

	result := r.Run(context.Background(), RunConfig{
		Name: tool,
		Env:  map[string]string{"KONA_TEST_VAR": "test_value"},
	})

	if result.Stdout != "test_value\n" {
		t.Errorf("Run() stdout = %q, want %q", result.Stdout, "test_value\n")
	}
}

func TestProcessRunner_Run_Timeout(t *testing.T) {
	r := NewProcessRunner()
	tool := writeScript(t, "hang", "sleep 30")

	start := time.Now()
	result := r.Run(context.Background(), RunConfig{Name: tool, Timeout: 100 * time.Millisecond})

	if result.Success {
		t.Error("Run() should have timed out")
	}
	if !result.TimedOut {
		t.Errorf("Run() TimedOut = false, error: %v", result.Error)
	}
	if time.Since(start) > 5*time.Second {
		t.Error("Run() did not return promptly after the timeout")
	}
}

func TestProcessRunner_Run_Cancelled(t *testing.T) {
	r := NewProcessRunner()
	tool := writeScript(t, "hang", "sleep 30")

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(100 * time.Millisecond)
		cancel()
	}()

	result := r.Run(ctx, RunConfig{Name: tool})

	if result.Success || result.TimedOut || !result.Interrupted {
		t.Errorf("Run() Success = %v, TimedOut = %v, Interrupted = %v; want an interrupted run",
			result.Success, result.TimedOut, result.Interrupted)
	}
	if result.Error == nil {
		t.Error("Run() should report the interruption")
	}
}

func TestProcessRunner_Run_BackgroundChildHoldsOutput(t *testing.T) {
	r := NewProcessRunner()
	dir := t.TempDir()
	marker := filepath.Join(dir, "child-alive")
	tool := writeScript(t, "spawner", "(sleep 2; touch "+marker+") &\necho started\nexit 0")

	start := time.Now()
	result := r.Run(context.Background(), RunConfig{Name: tool})

	if !result.Success {
		t.Fatalf("Run() Success = false for a zero exit status: %v", result.Error)
	}
	if elapsed := time.Since(start); elapsed > 1900*time.Millisecond {
		t.Errorf("Run() took %v, want it to stop waiting shortly after the exit", elapsed)
	}

	time.Sleep(2500 * time.Millisecond)
	if _, err := os.Stat(marker); err == nil {
		t.Error("Run() left the background child running")
	}
}

func TestProcessRunner_Run_DiscardOutput(t *testing.T) {
	r := NewProcessRunner()
	tool := writeScript(t, "spawner", "sleep 5 &\necho noisy\nexit 0")

	start := time.Now()
	result := r.Run(context.Background(), RunConfig{Name: tool, DiscardOutput: true})

	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}
	if result.Stdout != "" {
		t.Errorf("Run() stdout = %q, want nothing captured", result.Stdout)
	}
	if elapsed := time.Since(start); elapsed > 900*time.Millisecond {
		t.Errorf("Run() took %v, want no wait on the background child", elapsed)
	}
}

func TestProcessRunner_Run_NotLaunchable(t *testing.T) {
	r := NewProcessRunner()

	result := r.Run(context.Background(), RunConfig{Name: filepath.Join(t.TempDir(), "absent")})

	if result.Launched {
		t.Error("Run() Launched = true for a missing executable")
	}
	if result.Error == nil {
		t.Error("Run() should return an error for a missing executable")
	}
}

func TestProcessRunner_Run_WorkingDirectory(t *testing.T) {
	r := NewProcessRunner()
	dir := t.TempDir()
	tool := writeScript(t, "pwd", "pwd")

	result := r.Run(context.Background(), RunConfig{Name: tool, WorkingDir: dir})

	if !result.Success {
		t.Fatalf("Run() failed: %v", result.Error)
	}
	got, _ := filepath.EvalSymlinks(filepath.Clean(result.Stdout[:len(result.Stdout)-1]))
	want, _ := filepath.EvalSymlinks(dir)
	if got != want {
		t.Errorf("Run() cwd = %q, want %q", got, want)
	}
}
