package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func newFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("bank", "", "")
	fs.String("user", "", "")
	fs.String("db", "", "")
	return fs
}

func TestLoad_FromFile(t *testing.T) {
	path := writeConfig(t, `
bank: /data/bank.json
user: alice
passing_score: 0.8
question_count: 25
`)
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BankPath != "/data/bank.json" {
		t.Errorf("BankPath = %q", cfg.BankPath)
	}
	if cfg.UserID != "alice" {
		t.Errorf("UserID = %q, want alice", cfg.UserID)
	}
	if cfg.PassingScore != 0.8 {
		t.Errorf("PassingScore = %v, want 0.8", cfg.PassingScore)
	}
	if cfg.QuestionCount != 25 {
		t.Errorf("QuestionCount = %d, want 25", cfg.QuestionCount)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "bank: /data/bank.json\n")
	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UserID != DefaultUserID {
		t.Errorf("UserID = %q, want default %q", cfg.UserID, DefaultUserID)
	}
	if cfg.PassingScore != DefaultPassingScore {
		t.Errorf("PassingScore = %v, want default %v", cfg.PassingScore, DefaultPassingScore)
	}
	if cfg.QuestionCount != DefaultQuestionCount {
		t.Errorf("QuestionCount = %d, want default %d", cfg.QuestionCount, DefaultQuestionCount)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "bank: /data/bank.json\nuser: alice\n")
	t.Setenv("TCOPREP_USER", "bob")

	cfg, err := Load(path, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UserID != "bob" {
		t.Errorf("UserID = %q, want env override bob", cfg.UserID)
	}
	if cfg.BankPath != "/data/bank.json" {
		t.Errorf("BankPath = %q, file value should survive", cfg.BankPath)
	}
}

func TestLoad_FlagOverridesEnv(t *testing.T) {
	path := writeConfig(t, "bank: /data/bank.json\n")
	t.Setenv("TCOPREP_USER", "bob")

	flags := newFlags()
	if err := flags.Set("user", "carol"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg, err := Load(path, flags)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.UserID != "carol" {
		t.Errorf("UserID = %q, want flag override carol", cfg.UserID)
	}
}

func TestLoad_EnvOnly(t *testing.T) {
	t.Setenv("TCOPREP_BANK", "/env/bank.json")
	cfg, err := Load("", nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BankPath != "/env/bank.json" {
		t.Errorf("BankPath = %q, want /env/bank.json", cfg.BankPath)
	}
}

func TestLoad_MissingNamedFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected error for a named but missing config file")
	}
}

func TestLoad_RequiresBank(t *testing.T) {
	if _, err := Load("", nil); err == nil {
		t.Error("expected validation error when bank path is unset")
	}
}

func TestLoad_RejectsBadPassingScore(t *testing.T) {
	path := writeConfig(t, "bank: /data/bank.json\npassing_score: 1.5\n")
	if _, err := Load(path, nil); err == nil {
		t.Error("expected validation error for passing_score > 1")
	}
}
