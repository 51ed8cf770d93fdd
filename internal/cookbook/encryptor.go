package cookbook

import "io"

// Encryptor protects exported archives. Encryption needs only the public
// half of the key pair; decryption requires unlocking the private half
// with a passphrase first.
type Encryptor interface {
	// Setup generates and stores a new key pair, protecting the private
	// key with the given passphrase.
	Setup(passphrase string) error

	// Encrypt reads plaintext from r and writes ciphertext to w.
	Encrypt(r io.Reader, w io.Writer) error

	// Unlock decrypts the private key with the passphrase and returns a
	// context that can decrypt data.
	Unlock(passphrase string) (DecryptionContext, error)

	// IsConfigured reports whether a key pair is available.
	IsConfigured() bool
}

// DecryptionContext holds an unlocked identity for decrypting data.
type DecryptionContext interface {
	Decrypt(r io.Reader, w io.Writer) error
}
