// Package nanoid generates compact random identifiers, used for trace IDs
// and example data keys.
package nanoid

import (
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	defaultSize = 16

	lowercase     = "abcdefghijklmnopqrstuvwxyz"
	lowerUpper    = lowercase + "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	numLowerUpper = "0123456789" + lowerUpper
)

func getSize(l ...int) int {
	size := defaultSize
	if len(l) > 0 {
		size = l[0]
	}
	return size
}

// String generate optional length nanoid, use const by default
func String(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(numLowerUpper, size)
}

// Lower generate optional length nanoid, use const by default
func Lower(l ...int) string {
	size := getSize(l...)
	return gonanoid.MustGenerate(lowercase, size)
}
