// Package config loads and validates the settings of the cryptology front ends.
//
// Settings are read from a YAML file through viper, overridden by CRYPTOLOGY_*
// environment variables and validated with go-playground/validator before use.
package config
