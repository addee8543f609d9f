package common

// WipeByteArray overwrites the contents of the provided byte slice with
// zeros. Used to clear passwords from memory once they have been hashed or
// verified. A nil slice is a no-op.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
