package storage_test

import (
	"testing"

	"github.com/JaimeStill/discvault/pkg/storage"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := &storage.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.BasePath != ".data/blobs" {
		t.Errorf("BasePath = %q, want .data/blobs", cfg.BasePath)
	}
	if cfg.MaxUploadSizeBytes() != 10*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want %d", cfg.MaxUploadSizeBytes(), 10*1024*1024)
	}
}

func TestConfig_Env(t *testing.T) {
	t.Setenv("TEST_STORAGE_PATH", "/tmp/covers")
	t.Setenv("TEST_STORAGE_MAX", "2MB")

	cfg := &storage.Config{}
	err := cfg.Finalize(&storage.Env{BasePath: "TEST_STORAGE_PATH", MaxUploadSize: "TEST_STORAGE_MAX"})
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}

	if cfg.BasePath != "/tmp/covers" {
		t.Errorf("BasePath = %q, want /tmp/covers", cfg.BasePath)
	}
	if cfg.MaxUploadSizeBytes() != 2*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want %d", cfg.MaxUploadSizeBytes(), 2*1024*1024)
	}
}

func TestConfig_InvalidSize(t *testing.T) {
	cfg := &storage.Config{MaxUploadSize: "lots"}
	if err := cfg.Finalize(nil); err == nil {
		t.Error("Finalize() succeeded with invalid size, want error")
	}
}
