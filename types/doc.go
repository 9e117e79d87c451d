// Package types provides small generic helpers for the optional
// (pointer-typed) fields used throughout the pagination API.
package types
