// Package config reads the tool-level configuration from
// ~/.webforge/config.yaml and WEBFORGE_* environment variables. Ambient
// viper lookups stay confined to this package: LoadSettings snapshots them
// into a Settings struct that the rest of the tool receives explicitly.
package config
