// Package cache provides an in-memory LRU cache with per-entry expiry.
package cache
