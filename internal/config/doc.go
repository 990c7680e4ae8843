// Package config provides the settings and filesystem locations for Neodynium.
//
// Settings come from three layers, each overriding the previous one:
//  1. Built-in defaults (NewSettings)
//  2. The YAML settings file (LoadSettingsFile)
//  3. NEODYNIUM_* environment variables (ApplyEnv)
//
// A Settings value is handed to the engine once and never partially
// updated afterwards; changing settings means building a new value.
package config
