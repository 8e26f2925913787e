package crypto

// CipherService owns every cryptographic operation of the diary server.
// It knows nothing about the network, the database or users; its single job
// is to protect field values and verify passwords.
//
// Key scheme:
//
//	application key — process-wide secret, encrypts email and name fields
//	                  uniformly across all accounts (supplied via config);
//	per-account key — generated once at registration by GenerateKey,
//	                  handed to the client, encrypts that account's notes.
//
// Encryption is deliberately deterministic (AES-256-CBC with a fixed IV):
// the same key and plaintext always produce the same ciphertext, which lets
// the store run equality lookups on encrypted columns (most importantly the
// email column) without a separate blind index.
type CipherService interface {
	// GenerateKey produces a fresh 256-bit symmetric key from the OS
	// CSPRNG, hex-encoded to 64 characters. Called once per registration.
	GenerateKey() (string, error)

	// Encrypt enciphers plaintext under the hex-encoded 256-bit key and
	// returns hex ciphertext. Deterministic: identical inputs yield
	// identical output. Returns ErrInvalidKey if keyHex is not valid
	// 64-character hex.
	Encrypt(keyHex, plaintext string) (string, error)

	// Decrypt inverts Encrypt. A wrong key or corrupted ciphertext is
	// detected through the padding check and reported as ErrDecryptFailed;
	// ciphertext that is not valid hex (or not a whole number of cipher
	// blocks) is reported as ErrMalformedCiphertext.
	Decrypt(keyHex, cipherHex string) (string, error)

	// GenerateSalt produces a fresh 16-byte password salt from the OS
	// CSPRNG, hex-encoded.
	GenerateSalt() (string, error)

	// HashPassword derives a 256-bit Argon2id digest of password under the
	// hex-encoded salt and returns it hex-encoded. Deterministic for a
	// fixed (password, salt) pair.
	HashPassword(password, saltHex string) (string, error)

	// VerifyPassword recomputes the Argon2id digest of password under
	// saltHex and compares it against hashHex in constant time.
	VerifyPassword(password, saltHex, hashHex string) (bool, error)
}
