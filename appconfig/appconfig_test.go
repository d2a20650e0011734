package appconfig

import "testing"

func TestLoadAppConfigDefaults(t *testing.T) {
	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.DefaultTrials != 1000 {
		t.Errorf("DefaultTrials = %d", cfg.DefaultTrials)
	}
	if cfg.MaxTrials != 1000000 {
		t.Errorf("MaxTrials = %d", cfg.MaxTrials)
	}
}

func TestLoadAppConfigFromEnv(t *testing.T) {
	t.Setenv("LISTEN_ADDR", "127.0.0.1:9999")
	t.Setenv("DEFAULT_TRIALS", "500")
	t.Setenv("RANDOM_SEED", "42")

	cfg, err := LoadAppConfig()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.ListenAddr != "127.0.0.1:9999" {
		t.Errorf("ListenAddr = %q", cfg.ListenAddr)
	}
	if cfg.DefaultTrials != 500 {
		t.Errorf("DefaultTrials = %d", cfg.DefaultTrials)
	}
	if cfg.RandomSeed != 42 {
		t.Errorf("RandomSeed = %d", cfg.RandomSeed)
	}
}
