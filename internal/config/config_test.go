// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mdhender/wlparse/internal/config"
)

func TestLoad(t *testing.T) {
	t.Run("non-existent file", func(t *testing.T) {
		cfg, err := config.Load("non-existent-file.json", false)
		if err != nil {
			t.Errorf("expected no error for non-existent file, got %v", err)
		}
		if cfg.Parser.TabWidth != 4 {
			t.Errorf("expected default tab width 4, got %d", cfg.Parser.TabWidth)
		}
	})

	t.Run("directory error", func(t *testing.T) {
		tmpDir := t.TempDir()
		_, err := config.Load(tmpDir, false)
		if err == nil {
			t.Errorf("expected error for directory, got nil")
		}
	})

	t.Run("empty config file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")
		if err := os.WriteFile(configFile, []byte("{}"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if cfg.Parser.TabWidth != 4 {
			t.Errorf("expected default tab width 4, got %d", cfg.Parser.TabWidth)
		}
	})

	t.Run("partial config overrides only named fields", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")

		testConfig := config.Config{
			AllowConfig: true,
			Parser:      config.Parser_t{TabWidth: 8},
		}
		data, err := json.Marshal(testConfig)
		if err != nil {
			t.Fatalf("failed to marshal test config: %v", err)
		}
		if err := os.WriteFile(configFile, data, 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, false)
		if err != nil {
			t.Errorf("expected no error, got %v", err)
		}
		if cfg.Parser.TabWidth != 8 {
			t.Errorf("expected tab width 8, got %d", cfg.Parser.TabWidth)
		}
		if !cfg.AllowConfig {
			t.Errorf("expected AllowConfig to be true")
		}
		// Cache path wasn't mentioned in the partial file, so it should
		// remain at its default rather than being zeroed out.
		if cfg.Cache.Path != "data/wlparse-cache.db" {
			t.Errorf("expected default cache path to survive a partial override, got %q", cfg.Cache.Path)
		}
	})

	t.Run("invalid JSON falls back to defaults", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.json")
		if err := os.WriteFile(configFile, []byte("not json"), 0644); err != nil {
			t.Fatalf("failed to create test file: %v", err)
		}

		cfg, err := config.Load(configFile, true)
		if err != nil {
			t.Errorf("expected no error for invalid JSON, got %v", err)
		}
		if cfg.Parser.TabWidth != 4 {
			t.Errorf("expected default tab width for invalid JSON, got %d", cfg.Parser.TabWidth)
		}
	})
}

func TestCopyNonZeroFieldsViaLoad(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.json")

	testConfig := config.Config{
		Cache: config.Cache_t{LRUSize: 512},
	}
	data, err := json.Marshal(testConfig)
	if err != nil {
		t.Fatalf("failed to marshal test config: %v", err)
	}
	if err := os.WriteFile(configFile, data, 0644); err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	cfg, err := config.Load(configFile, false)
	if err != nil {
		t.Errorf("expected no error, got %v", err)
	}
	if cfg.Cache.LRUSize != 512 {
		t.Errorf("expected LRUSize 512, got %d", cfg.Cache.LRUSize)
	}
	// TabWidth wasn't set in testConfig, so the default must survive.
	if cfg.Parser.TabWidth != 4 {
		t.Errorf("expected default tab width to remain 4, got %d", cfg.Parser.TabWidth)
	}
}
