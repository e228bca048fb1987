// Package config loads mdartifact settings from a YAML file and the
// environment. Environment values override file values; a missing file
// is not an error.
package config
