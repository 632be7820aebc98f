// Package config provides configuration management for courtside.
//
// Configuration is loaded from multiple YAML sources and merged in order,
// with later sources overriding earlier ones:
//
//  1. Default Configuration (compiled in)
//  2. User Configuration (~/.config/courtside/config.yaml)
//  3. Project Configuration (./.courtside/config.yaml)
//
// The --config flag replaces layers 2 and 3 with a single file.
//
// # Configuration Structure
//
//	api:
//	  baseURL: "https://fantasy.example.com/api"
//	  token: "${COURTSIDE_TOKEN}"
//	  timeout: 10s
//	  retryMax: 3
//	  cacheTTL: 30s
//
//	store:
//	  backend: sqlite        # file | sqlite | memory
//	  path: ""               # defaults under ~/.config/courtside
//	  debounce: 250ms        # 0 writes on every change
//
//	terminal:
//	  resizeStep: 5
//	  feedbackDuration: 2s
//	  defaultPreset: default # default | chart | comparison | data
//	  defaultStatWindow: season
//	  leftSize: 25
//	  rightSize: 25
//	  centerPanels: [player-detail, game-log]
//
//	ui:
//	  darkMode: true
//
// # Environment Variable Expansion
//
// Values may reference the environment before YAML parsing:
//
//	token: "${COURTSIDE_TOKEN}"
//	baseURL: "${COURTSIDE_API:-http://localhost:8080/api}"
//
// Validate collects every problem into one error so a broken file can be
// fixed in a single pass.
package config
