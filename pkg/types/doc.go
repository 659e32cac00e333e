// Package types defines the clip entry model, its content-type
// enumeration, and the standard errors shared across the clipm layers.
package types
