package config

import (
	"os"
	"testing"
)

// unsetenv clears key for the duration of the test.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	unsetenv(t, "ICEBEER_SEED")
	unsetenv(t, "ICEBEER_TPS")
	unsetenv(t, "ICEBEER_DEBUG_LOG")

	o, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Seed != 0 || o.TPS != 60 || o.DebugLog != "" {
		t.Fatalf("unexpected defaults: %+v", o)
	}
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("ICEBEER_SEED", "12345")
	t.Setenv("ICEBEER_TPS", "30")
	t.Setenv("ICEBEER_DEBUG_LOG", "/tmp/icebeer.log")

	o, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if o.Seed != 12345 || o.TPS != 30 || o.DebugLog != "/tmp/icebeer.log" {
		t.Fatalf("unexpected options: %+v", o)
	}
}

func TestLoad_Invalid(t *testing.T) {
	unsetenv(t, "ICEBEER_SEED")
	t.Setenv("ICEBEER_TPS", "fast")
	if _, err := Load(); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoad_DefersRangeCheck(t *testing.T) {
	unsetenv(t, "ICEBEER_SEED")
	unsetenv(t, "ICEBEER_DEBUG_LOG")
	t.Setenv("ICEBEER_TPS", "0")

	o, err := Load()
	if err != nil {
		t.Fatalf("out-of-range values must be left for Validate: %v", err)
	}
	if o.TPS != 0 {
		t.Fatalf("TPS = %d, want 0", o.TPS)
	}
	if err := o.Validate(); err == nil {
		t.Fatalf("expected validation error for tps 0")
	}
}

func TestOptions_Validate(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{0: false, 1: true, 60: true, 1000: true, 1001: false, -5: false}
	for tps, ok := range tests {
		err := Options{TPS: tps}.Validate()
		if (err == nil) != ok {
			t.Fatalf("tps %d: got err=%v, want ok=%v", tps, err, ok)
		}
	}
}
