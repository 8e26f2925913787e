package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	// keySize is the symmetric key length in bytes (AES-256).
	keySize = 32

	// saltSize is the per-account password salt length in bytes.
	saltSize = 16
)

// cipherService is the private implementation of [CipherService].
type cipherService struct {
	// Argon2id tuning parameters. Stored in the struct so they can be
	// adjusted per deployment target.
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	argonKeyLen  uint32
}

// NewCipherService constructs a [CipherService] with the Argon2id
// parameters recommended by OWASP (2024):
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (256 bits)
func NewCipherService() CipherService {
	return &cipherService{
		argonTime:    1,
		argonMemory:  64 * 1024, // 64 MiB
		argonThreads: 4,
		argonKeyLen:  32, // 256 bits
	}
}

// GenerateKey implements [CipherService]. It reads 32 random bytes from the
// OS CSPRNG and returns them hex-encoded. Returns an error if the random
// read fails.
func (c *cipherService) GenerateKey() (string, error) {
	key := make([]byte, keySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", err
	}
	return hex.EncodeToString(key), nil
}

// GenerateSalt implements [CipherService]. It reads 16 random bytes from
// the OS CSPRNG and returns them hex-encoded as the password salt. The salt
// is not a secret; it is stored in the open next to the password hash.
func (c *cipherService) GenerateSalt() (string, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", err
	}
	return hex.EncodeToString(salt), nil
}

// Encrypt implements [CipherService]. It enciphers plaintext with
// AES-256-CBC under a fixed all-zero IV and PKCS#7 padding, returning hex
// ciphertext.
//
// The fixed IV makes encryption deterministic on purpose: the store relies
// on re-encrypting a query value and comparing it against a stored
// ciphertext column for equality lookups. The trade-off (identical
// plaintexts are observable as identical ciphertexts) is confined to the
// short identity fields this scheme is used for.
func (c *cipherService) Encrypt(keyHex, plaintext string) (string, error) {
	block, err := newBlockCipher(keyHex)
	if err != nil {
		return "", err
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)

	iv := make([]byte, aes.BlockSize) // fixed all-zero IV: determinism is the lookup contract
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return hex.EncodeToString(ciphertext), nil
}

// Decrypt implements [CipherService]. It inverts [cipherService.Encrypt].
// A wrong key corrupts the final block, which surfaces as an invalid PKCS#7
// padding and is reported as [ErrDecryptFailed]. Non-hex input and
// non-block-aligned input are reported as [ErrMalformedCiphertext].
func (c *cipherService) Decrypt(keyHex, cipherHex string) (string, error) {
	block, err := newBlockCipher(keyHex)
	if err != nil {
		return "", err
	}

	ciphertext, err := hex.DecodeString(cipherHex)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedCiphertext, err)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", ErrMalformedCiphertext
	}

	iv := make([]byte, aes.BlockSize)
	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	// An invalid padding here almost always means the wrong key was used.
	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return "", ErrDecryptFailed
	}

	return string(plaintext), nil
}

// HashPassword implements [CipherService]. It derives a 256-bit Argon2id
// digest from password and the hex-encoded salt using the parameters stored
// in the receiver, and returns the digest hex-encoded.
func (c *cipherService) HashPassword(password, saltHex string) (string, error) {
	salt, err := hex.DecodeString(saltHex)
	if err != nil || len(salt) != saltSize {
		return "", ErrInvalidSalt
	}

	digest := argon2.IDKey(
		[]byte(password),
		salt,
		c.argonTime,
		c.argonMemory,
		c.argonThreads,
		c.argonKeyLen,
	)

	return hex.EncodeToString(digest), nil
}

// VerifyPassword implements [CipherService]. It recomputes the Argon2id
// digest of password under saltHex and compares it with hashHex in constant
// time, so the comparison leaks no timing information about the stored hash.
func (c *cipherService) VerifyPassword(password, saltHex, hashHex string) (bool, error) {
	computed, err := c.HashPassword(password, saltHex)
	if err != nil {
		return false, err
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hashHex)) == 1, nil
}

// newBlockCipher decodes keyHex and builds an AES-256 block cipher from it.
// Any malformed or wrong-length key is reported as [ErrInvalidKey].
func newBlockCipher(keyHex string) (cipher.Block, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil || len(key) != keySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrInvalidKey
	}

	return block, nil
}

// pkcs7Pad appends PKCS#7 padding so that len(result) is a multiple of
// blockSize. Plaintext that is already block-aligned receives a full block
// of padding.
func pkcs7Pad(data []byte, blockSize int) []byte {
	padLen := blockSize - len(data)%blockSize
	return append(data, bytes.Repeat([]byte{byte(padLen)}, padLen)...)
}

// pkcs7Unpad strips PKCS#7 padding, validating every padding byte. It
// returns an error when the padding is structurally invalid, which callers
// treat as a wrong-key signal.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("invalid padded length %d", len(data))
	}

	padLen := int(data[len(data)-1])
	if padLen == 0 || padLen > blockSize || padLen > len(data) {
		return nil, fmt.Errorf("invalid padding length %d", padLen)
	}

	for _, b := range data[len(data)-padLen:] {
		if int(b) != padLen {
			return nil, fmt.Errorf("inconsistent padding byte")
		}
	}

	return data[:len(data)-padLen], nil
}
