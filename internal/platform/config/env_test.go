package config

import (
	"strings"
	"testing"

	"golang.org/x/text/language"
)

type envTestConfig struct {
	Precision int    `env:"LEGEND_TEST_PRECISION" envDefault:"2"`
	Locale    string `env:"LEGEND_TEST_LOCALE" envDefault:"en-US"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Precision != 2 || cfg.Locale != "en-US" {
		t.Fatalf("cfg = %+v", cfg)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("LEGEND_TEST_LOCALE", "pt-BR")
	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.Locale != "pt-BR" {
		t.Fatalf("Locale = %q, want pt-BR", cfg.Locale)
	}
}

func TestParseEnvError(t *testing.T) {
	t.Setenv("LEGEND_TEST_PRECISION", "not-an-int")
	var cfg envTestConfig
	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseLocale(t *testing.T) {
	tag, err := ParseLocale("")
	if err != nil || tag != language.English {
		t.Fatalf("ParseLocale(\"\") = %v, %v", tag, err)
	}
	tag, err = ParseLocale(" pt-BR ")
	if err != nil || tag.String() != "pt-BR" {
		t.Fatalf("ParseLocale(pt-BR) = %v, %v", tag, err)
	}
	if _, err := ParseLocale("not a locale!"); err == nil {
		t.Fatal("expected parse error")
	}
}
