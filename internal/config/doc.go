// Copyright (c) 2024 Michael D Henderson. All rights reserved.

// Package config manages JSON configuration loading for the wlparse
// command-line tool. It handles debug flags, parser options such as tab
// width and quirk selection, cache settings, and output presentation.
// Configuration is loaded from a wlparse.json file with sensible
// defaults; a missing file is not an error.
package config
