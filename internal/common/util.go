// Package common contains small helpers shared across travelmate components.
package common

// WipeByteArray zeroes the buffer in place. Use it to clear passwords and
// other sensitive input once they are no longer needed. Safe on nil.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
