// Package refcodec turns internal identifiers into opaque, URL-safe tokens
// and back. Tokens have the form "<iv>.<ciphertext>", both segments unpadded
// URL-safe base64.
//
// The default mode is AES-256-CBC with PKCS#7 padding, which hides the
// identifier but does not detect tampering: a modified token may decrypt to
// garbage instead of failing. ModeSealed keeps the same token shape but uses
// XChaCha20-Poly1305, so any modification fails to decode.
package refcodec

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/chacha20poly1305"

	"github.com/kamrul-CSE-official/ksa-backend/internal/domain"
)

var (
	// ErrMalformedToken means the token does not have two non-empty,
	// base64-decodable segments.
	ErrMalformedToken = fmt.Errorf("malformed token: %w", domain.ErrInvalidReference)
	// ErrDecryptionFailed means the segments decoded but the ciphertext did
	// not decrypt to a valid plaintext.
	ErrDecryptionFailed = fmt.Errorf("decryption failed: %w", domain.ErrInvalidReference)
)

// Mode selects the cipher used for tokens.
type Mode string

const (
	ModeCBC    Mode = "cbc"
	ModeSealed Mode = "sealed"
)

func (m Mode) IsValid() bool {
	switch m {
	case ModeCBC, ModeSealed:
		return true
	}
	return false
}

const separator = "."

// Codec encodes and decodes opaque tokens with a key derived once from a
// process-wide secret. It is safe for concurrent use.
type Codec struct {
	mode  Mode
	block cipher.Block
	aead  cipher.AEAD
}

// New derives the key from secret and returns a Codec for the given mode.
func New(secret string, mode Mode) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("refcodec: secret is empty")
	}
	if mode == "" {
		mode = ModeCBC
	}

	key := DeriveKey(secret)
	c := &Codec{mode: mode}

	switch mode {
	case ModeCBC:
		block, err := aes.NewCipher(key)
		if err != nil {
			return nil, fmt.Errorf("refcodec: aes: %w", err)
		}
		c.block = block
	case ModeSealed:
		aead, err := chacha20poly1305.NewX(key)
		if err != nil {
			return nil, fmt.Errorf("refcodec: xchacha20poly1305: %w", err)
		}
		c.aead = aead
	default:
		return nil, fmt.Errorf("refcodec: unknown mode %q", mode)
	}

	return c, nil
}

// DeriveKey returns the 32-byte key material for secret: the first 32
// characters of the standard base64 rendering of SHA-256(secret), used
// directly as key bytes.
func DeriveKey(secret string) []byte {
	sum := sha256.Sum256([]byte(secret))
	rendered := base64.StdEncoding.EncodeToString(sum[:])
	return []byte(rendered[:32])
}

// Mode returns the cipher mode of the codec.
func (c *Codec) Mode() Mode { return c.mode }

// Encode encrypts plaintext under a fresh random IV. Two calls with the same
// plaintext return different tokens.
func (c *Codec) Encode(plaintext string) (string, error) {
	if c.mode == ModeSealed {
		return c.seal([]byte(plaintext))
	}

	iv := make([]byte, aes.BlockSize)
	if _, err := rand.Read(iv); err != nil {
		return "", fmt.Errorf("refcodec: generate iv: %w", err)
	}

	padded := pkcs7Pad([]byte(plaintext), aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(c.block, iv).CryptBlocks(ciphertext, padded)

	return encodeSegment(iv) + separator + encodeSegment(ciphertext), nil
}

// Decode reverses Encode. It returns ErrMalformedToken or ErrDecryptionFailed.
func (c *Codec) Decode(token string) (string, error) {
	iv, ciphertext, err := splitToken(token)
	if err != nil {
		return "", err
	}

	if c.mode == ModeSealed {
		return c.open(iv, ciphertext)
	}

	if len(iv) != aes.BlockSize {
		return "", fmt.Errorf("iv length %d: %w", len(iv), ErrDecryptionFailed)
	}
	if len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return "", fmt.Errorf("ciphertext length %d: %w", len(ciphertext), ErrDecryptionFailed)
	}

	plain := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(c.block, iv).CryptBlocks(plain, ciphertext)

	unpadded, err := pkcs7Unpad(plain, aes.BlockSize)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrDecryptionFailed)
	}

	return string(unpadded), nil
}

// EncodeID encodes a numeric identifier.
func (c *Codec) EncodeID(id int64) (string, error) {
	return c.Encode(strconv.FormatInt(id, 10))
}

// DecodeID decodes a token produced by EncodeID. A token whose plaintext is
// not a base-10 integer fails with ErrDecryptionFailed.
func (c *Codec) DecodeID(token string) (int64, error) {
	plain, err := c.Decode(token)
	if err != nil {
		return 0, err
	}
	id, err := strconv.ParseInt(plain, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("plaintext is not an identifier: %w", ErrDecryptionFailed)
	}
	return id, nil
}

func (c *Codec) seal(plaintext []byte) (string, error) {
	nonce := make([]byte, c.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("refcodec: generate nonce: %w", err)
	}
	ciphertext := c.aead.Seal(nil, nonce, plaintext, nil)
	return encodeSegment(nonce) + separator + encodeSegment(ciphertext), nil
}

func (c *Codec) open(nonce, ciphertext []byte) (string, error) {
	if len(nonce) != c.aead.NonceSize() {
		return "", fmt.Errorf("nonce length %d: %w", len(nonce), ErrDecryptionFailed)
	}
	plain, err := c.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%v: %w", err, ErrDecryptionFailed)
	}
	return string(plain), nil
}

// splitToken splits on the first separator and decodes both segments.
func splitToken(token string) (iv, ciphertext []byte, err error) {
	head, tail, ok := strings.Cut(token, separator)
	if !ok || head == "" || tail == "" {
		return nil, nil, ErrMalformedToken
	}

	iv, err = decodeSegment(head)
	if err != nil {
		return nil, nil, fmt.Errorf("iv segment: %w", ErrMalformedToken)
	}
	ciphertext, err = decodeSegment(tail)
	if err != nil {
		return nil, nil, fmt.Errorf("ciphertext segment: %w", ErrMalformedToken)
	}

	return iv, ciphertext, nil
}

// encodeSegment renders b as unpadded URL-safe base64 (+ to -, / to _).
func encodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

// decodeSegment reverses the URL-safe mapping and re-pads to a multiple of 4.
func decodeSegment(s string) ([]byte, error) {
	s = strings.NewReplacer("-", "+", "_", "/").Replace(s)
	if rem := len(s) % 4; rem != 0 {
		s += strings.Repeat("=", 4-rem)
	}
	return base64.StdEncoding.DecodeString(s)
}

func pkcs7Pad(b []byte, blockSize int) []byte {
	n := blockSize - len(b)%blockSize
	return append(append(make([]byte, 0, len(b)+n), b...), bytes.Repeat([]byte{byte(n)}, n)...)
}

func pkcs7Unpad(b []byte, blockSize int) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, errors.New("invalid padded length")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize || n > len(b) {
		return nil, errors.New("invalid padding")
	}
	for _, p := range b[len(b)-n:] {
		if int(p) != n {
			return nil, errors.New("invalid padding")
		}
	}
	return b[:len(b)-n], nil
}
