package crypto

import "errors"

// Sentinel errors returned by the cipher service. Callers should match
// against these values with [errors.Is]; none of them ever echoes key or
// ciphertext material.
var (
	// ErrInvalidKey is returned when a supplied key is not valid hex of the
	// expected 256-bit length.
	ErrInvalidKey = errors.New("invalid key material")

	// ErrMalformedCiphertext is returned when ciphertext is not valid hex
	// or its length is not a whole number of cipher blocks.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrDecryptFailed is returned when decryption produces an invalid
	// padding, which almost always means the wrong key was used.
	ErrDecryptFailed = errors.New("decryption failed")

	// ErrInvalidSalt is returned when a supplied password salt is not
	// valid hex of the expected length.
	ErrInvalidSalt = errors.New("invalid password salt")
)
