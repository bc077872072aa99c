package cli

import (
	"os"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	// t.Setenv registers the restore; the vars must be absent for the
	// envDefault tags to apply.
	for _, key := range []string{"NDCUBE_DIMS", "NDCUBE_SEED", "NDCUBE_SHUFFLE"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Dims != 3 || cfg.Seed != 0 || cfg.Shuffle != 100 {
		t.Errorf("defaults = %+v, want dims=3 seed=0 shuffle=100", cfg)
	}
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("NDCUBE_DIMS", "4")
	t.Setenv("NDCUBE_SEED", "42")
	t.Setenv("NDCUBE_SHUFFLE", "25")

	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Dims != 4 || cfg.Seed != 42 || cfg.Shuffle != 25 {
		t.Errorf("cfg = %+v, want dims=4 seed=42 shuffle=25", cfg)
	}
}
