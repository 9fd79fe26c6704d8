// Package config manages gix configuration.
//
// Values are resolved, from lowest to highest precedence, from:
//   - Built-in defaults
//   - The user config file ($XDG_CONFIG_HOME/gix/config.yaml or ~/.config/gix/config.yaml)
//   - GIX_* environment variables
package config
