package openapi_test

import (
	"testing"

	"github.com/JaimeStill/discvault/pkg/openapi"
)

func TestConfig_Finalize(t *testing.T) {
	t.Setenv("TEST_OPENAPI_TITLE", "Vault")

	cfg := &openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.Title != "Vault" {
		t.Errorf("Title = %q, want Vault", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("Description default not applied")
	}
}

func TestConfig_Merge(t *testing.T) {
	cfg := &openapi.Config{Title: "a", Description: "b"}
	cfg.Merge(&openapi.Config{Title: "c"})

	if cfg.Title != "c" || cfg.Description != "b" {
		t.Errorf("Merge() = %+v", cfg)
	}
}
