// Package crypto implements the LOGIN-state encryption handshake: RSA key
// exchange for a 16-byte AES shared secret, then a full-duplex AES/CFB8
// stream cipher wrapping every byte the connection sends afterward.
//
// Adapted from the teacher library's crypto package: the shift-register
// math in stream.go is unchanged (it implements a fixed cipher mode), but
// the handshake state that used to live in a standalone Encryption type
// plus a separate rsa_keys.go file is consolidated here around Session,
// the shape conn.Endpoint actually drives.
package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
)

// Session holds one connection's half of the encryption handshake: the
// negotiated shared secret and, once Enable has run, the duplex AES/CFB8
// streams derived from it.
type Session struct {
	sharedSecret []byte
	encrypt      cipher.Stream
	decrypt      cipher.Stream
}

// NewSession returns a Session with encryption not yet enabled; Encrypt
// and Decrypt are no-ops until Enable succeeds.
func NewSession() *Session {
	return &Session{}
}

// GenerateSharedSecret picks a random 16-byte AES-128 key, the shared
// secret a client generates and sends to the server in EncryptionResponse,
// RSA-encrypted with the server's public key.
func (s *Session) GenerateSharedSecret() ([]byte, error) {
	secret := make([]byte, 16)
	if _, err := io.ReadFull(rand.Reader, secret); err != nil {
		return nil, fmt.Errorf("crypto: generate shared secret: %w", err)
	}
	s.sharedSecret = secret
	return secret, nil
}

// Enable derives the AES/CFB8 duplex streams from sharedSecret (the
// protocol uses the secret itself as the CFB8 initialization vector) and
// switches Encrypt/Decrypt on. It is irreversible for the Session's
// lifetime, matching the one-way LOGIN encryption handshake.
func (s *Session) Enable(sharedSecret []byte) error {
	block, err := aes.NewCipher(sharedSecret)
	if err != nil {
		return fmt.Errorf("crypto: enable encryption: %w", err)
	}
	s.sharedSecret = sharedSecret
	s.encrypt = NewCFB8Encrypter(block, sharedSecret)
	s.decrypt = NewCFB8Decrypter(block, sharedSecret)
	return nil
}

// Enabled reports whether Enable has run successfully.
func (s *Session) Enabled() bool {
	return s.encrypt != nil && s.decrypt != nil
}

// Encrypt passes data through unchanged until Enabled, then applies the
// outbound AES/CFB8 stream.
func (s *Session) Encrypt(data []byte) []byte {
	if s.encrypt == nil {
		return data
	}
	out := make([]byte, len(data))
	s.encrypt.XORKeyStream(out, data)
	return out
}

// Decrypt passes data through unchanged until Enabled, then applies the
// inbound AES/CFB8 stream.
func (s *Session) Decrypt(data []byte) []byte {
	if s.decrypt == nil {
		return data
	}
	out := make([]byte, len(data))
	s.decrypt.XORKeyStream(out, data)
	return out
}

// EncryptWithPublicKey RSA-encrypts data (the shared secret, or the
// verify token) under an SPKI-DER public key, the form EncryptionRequest
// carries on the wire. This is the client-side half of the handshake.
func EncryptWithPublicKey(publicKeyDER, data []byte) ([]byte, error) {
	pub, err := x509.ParsePKIXPublicKey(publicKeyDER)
	if err != nil {
		return nil, fmt.Errorf("crypto: parse public key: %w", err)
	}
	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("crypto: public key is not RSA")
	}
	return rsa.EncryptPKCS1v15(rand.Reader, rsaPub, data)
}

// DecryptWithPrivateKey undoes EncryptWithPublicKey given the matching
// private key: the server-side half, used to recover the shared secret
// and verify token from EncryptionResponse.
func DecryptWithPrivateKey(key *rsa.PrivateKey, ciphertext []byte) ([]byte, error) {
	plaintext, err := rsa.DecryptPKCS1v15(rand.Reader, key, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("crypto: decrypt with private key: %w", err)
	}
	return plaintext, nil
}

// ParsePrivateKeyPEM decodes a PEM block into an RSA private key,
// accepting both PKCS#8 and PKCS#1 encodings.
func ParsePrivateKeyPEM(pemText string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(pemText))
	if block == nil {
		return nil, fmt.Errorf("crypto: no PEM block found in private key")
	}
	if key, err := x509.ParsePKCS8PrivateKey(block.Bytes); err == nil {
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, fmt.Errorf("crypto: private key is not RSA")
		}
		return rsaKey, nil
	}
	return x509.ParsePKCS1PrivateKey(block.Bytes)
}

// PublicKeyDER marshals an RSA public key to the SPKI DER form
// EncryptionRequest.PublicKey carries on the wire.
func PublicKeyDER(key *rsa.PublicKey) ([]byte, error) {
	return x509.MarshalPKIXPublicKey(key)
}
