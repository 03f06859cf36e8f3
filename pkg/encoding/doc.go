// Package encoding provides helpers for loading and decoding on-disk data.
package encoding
