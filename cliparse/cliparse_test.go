// cliparse/cliparse_test.go
package cliparse

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseFlags_Defaults(t *testing.T) {
	os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != DefaultPort {
		t.Errorf("expected port %d, got %d", DefaultPort, cfg.Port)
	}
	if cfg.StoreType != StoreFile || cfg.StoreURL != DefaultFilePath {
		t.Errorf("expected file store at %s, got %s at %s", DefaultFilePath, cfg.StoreType, cfg.StoreURL)
	}
	if cfg.StoreKey != DefaultKey {
		t.Errorf("expected key %s, got %s", DefaultKey, cfg.StoreKey)
	}
	if cfg.Locale.String() != "en" {
		t.Errorf("expected en locale, got %s", cfg.Locale)
	}
}

func TestParseFlags_EnvVars(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("STORE", "SQLite")
	os.Setenv("DATABASE_URL", "file:test.db")
	os.Setenv("STORE_KEY", "board")
	os.Setenv("LOCALE", "sv")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreSQLite {
		t.Errorf("expected sqlite, got %s", cfg.StoreType)
	}
	if cfg.StoreURL != "file:test.db" {
		t.Errorf("expected DATABASE_URL fallback, got %s", cfg.StoreURL)
	}
	if cfg.StoreKey != "board" {
		t.Errorf("expected key board, got %s", cfg.StoreKey)
	}
	if cfg.Locale.String() != "sv" {
		t.Errorf("expected sv locale, got %s", cfg.Locale)
	}
}

func TestParseFlags_CLIOverridesEnv(t *testing.T) {
	os.Setenv("PORT", "9000")
	os.Setenv("STORE", "redis")
	defer os.Clearenv()

	cfg, err := ParseFlags([]string{"-p", "8080", "-s", "file", "-d", "/tmp/board.json"})
	if err != nil {
		t.Fatal(err)
	}

	// CLI should override env
	if cfg.Port != 8080 {
		t.Errorf("CLI should override env: expected 8080, got %d", cfg.Port)
	}
	if cfg.StoreType != StoreFile || cfg.StoreURL != "/tmp/board.json" {
		t.Errorf("CLI should override env: got %s at %s", cfg.StoreType, cfg.StoreURL)
	}
}

func TestParseFlags_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "bad port", env: map[string]string{"PORT": "abc"}},
		{name: "unknown store", args: []string{"-s", "etcd"}},
		{name: "postgres without dsn", args: []string{"-s", "postgres"}},
		{name: "redis without url", args: []string{"-s", "redis"}},
		{name: "bad locale", args: []string{"-l", "not a locale!"}},
		{name: "unknown flag", args: []string{"-x"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			for k, v := range tt.env {
				os.Setenv(k, v)
			}
			defer os.Clearenv()

			if _, err := ParseFlags(tt.args); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadEnvFile(t *testing.T) {
	os.Clearenv()
	defer os.Clearenv()

	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("STORE=redis\nREDIS_URL=redis://localhost:6379/0\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := LoadEnvFile(path); err != nil {
		t.Fatalf("LoadEnvFile failed: %v", err)
	}

	cfg, err := ParseFlags([]string{})
	if err != nil {
		t.Fatal(err)
	}
	if cfg.StoreType != StoreRedis || cfg.StoreURL != "redis://localhost:6379/0" {
		t.Errorf("expected redis from .env, got %s at %s", cfg.StoreType, cfg.StoreURL)
	}
}

func TestLoadEnvFile_Missing(t *testing.T) {
	if err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Errorf("missing .env should not fail: %v", err)
	}
}
