// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package config

import (
	"encoding/json"
	"errors"
	"log"
	"os"
	"reflect"

	"github.com/mdhender/wlparse/errs"
)

// Config holds cmd/wlparse's own persisted defaults, JSON-backed and
// tolerant of a missing file. The parser core's own ParseOptions (root
// package) is never file-backed; a caller turns a loaded Config into a
// ParseOptions before calling into the library.
type Config struct {
	AllowConfig bool         `json:"AllowConfig,omitempty"`
	Parser      Parser_t     `json:"Parser"`
	Output      Output_t     `json:"Output"`
	Cache       Cache_t      `json:"Cache"`
	DebugFlags  DebugFlags_t `json:"DebugFlags"`
}

// Parser_t mirrors the options wlparse.ParseOptions actually consumes,
// plus the quirk names cmd/wlparse's --quirk flag accepts.
type Parser_t struct {
	TabWidth int      `json:"TabWidth,omitempty"`
	Quirks   []string `json:"Quirks,omitempty"`
}

// Output_t configures the CLI's own presentation, never the parse
// itself.
type Output_t struct {
	NoColor bool `json:"NoColor,omitempty"`
	Stats   bool `json:"Stats,omitempty"`
}

// Cache_t configures internal/cache's on-disk store.
type Cache_t struct {
	Path    string `json:"Path,omitempty"`
	LRUSize int    `json:"LRUSize,omitempty"`
}

type DebugFlags_t struct {
	ConfigFile bool `json:"ConfigFile,omitempty"`
	Cache      bool `json:"Cache,omitempty"`
}

func Default() *Config {
	return &Config{
		Parser: Parser_t{
			TabWidth: 4,
		},
		Cache: Cache_t{
			Path:    "data/wlparse-cache.db",
			LRUSize: 256,
		},
	}
}

// Load reads a JSON configuration file, returning Default() unchanged if
// the file does not exist -- a missing config file is not a caller
// error. debug, when true, logs what was read (or why nothing was).
func Load(name string, debug bool) (*Config, error) {
	if debug {
		log.Printf("[config] %q: loading configuration...\n", name)
	}
	cfg := Default()

	sb, err := os.Stat(name)
	if errors.Is(err, os.ErrNotExist) {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	} else if err != nil {
		return cfg, err
	} else if sb.IsDir() {
		return cfg, errs.Error("config path is a directory")
	} else if !sb.Mode().IsRegular() {
		return cfg, errs.Error("config path is not a regular file")
	}

	data, err := os.ReadFile(name)
	if err != nil {
		if debug {
			log.Printf("[config] %q: %v\n", name, err)
		}
		return cfg, nil
	}

	var tmp Config
	if err := json.Unmarshal(data, &tmp); err != nil {
		if debug {
			log.Printf("[config] %q: invalid JSON: %v\n", name, err)
		}
		return cfg, nil
	}
	if debug {
		if nice, err := json.MarshalIndent(tmp, "", "  "); err == nil {
			log.Printf("[config] %s\n", nice)
		}
	}

	copyNonZeroFields(&tmp, cfg)
	return cfg, nil
}

// copyNonZeroFields recursively copies non-zero fields from src into dst
// using reflection, so a partial JSON file overrides only the defaults
// it mentions.
func copyNonZeroFields(src, dst interface{}) {
	srcVal := reflect.ValueOf(src)
	dstVal := reflect.ValueOf(dst)

	if srcVal.Kind() == reflect.Ptr {
		srcVal = srcVal.Elem()
	}
	if dstVal.Kind() == reflect.Ptr {
		dstVal = dstVal.Elem()
	}
	if srcVal.Kind() != reflect.Struct || dstVal.Kind() != reflect.Struct {
		return
	}

	for i := 0; i < srcVal.NumField(); i++ {
		srcField := srcVal.Field(i)
		dstField := dstVal.Field(i)

		if !srcField.CanInterface() || !dstField.CanSet() {
			continue
		}
		if srcField.IsZero() {
			continue
		}

		switch srcField.Kind() {
		case reflect.Struct:
			copyNonZeroFields(srcField.Interface(), dstField.Addr().Interface())
		default:
			dstField.Set(srcField)
		}
	}
}
