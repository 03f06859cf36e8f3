// Package configuration provides loading and validation of the statbridge
// YAML configuration file.
package configuration
