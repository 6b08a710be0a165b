package crypto

// CFB8 stream cipher: the 8-bit-feedback variant of CFB required by the
// protocol encryption handshake (stdlib's crypto/cipher only ships the
// full-blocksize CFB mode). Algorithm per NIST SP 800-38A §6.3 with
// segment size s=8.
//
// https://minecraft.wiki/w/Protocol_encryption

import "crypto/cipher"

// cfb8Stream implements cipher.Stream for AES/CFB8 in either direction.
// Encryption and decryption share the same shift-register recurrence;
// only the byte fed back into the register differs (ciphertext output
// vs. ciphertext input), per decrypt.
type cfb8Stream struct {
	block   cipher.Block
	reg     []byte // shift register, len == block.BlockSize()
	scratch []byte // holds reg's previous contents during the shift
	decrypt bool
}

// NewCFB8Encrypter returns a cipher.Stream that encrypts with AES/CFB8,
// mirroring the constructor shape of stdlib's cipher.NewCFBEncrypter.
func NewCFB8Encrypter(block cipher.Block, iv []byte) cipher.Stream {
	return newCFB8Stream(block, iv, false)
}

// NewCFB8Decrypter returns a cipher.Stream that decrypts with AES/CFB8.
func NewCFB8Decrypter(block cipher.Block, iv []byte) cipher.Stream {
	return newCFB8Stream(block, iv, true)
}

// newCFB8Stream builds a cipher.Stream applying AES/CFB8 with iv as the
// initial shift-register contents. Encrypt and decrypt directions are
// distinct streams: construct one of each for a full-duplex connection.
func newCFB8Stream(block cipher.Block, iv []byte, decrypt bool) cipher.Stream {
	reg := make([]byte, len(iv))
	copy(reg, iv)
	return &cfb8Stream{
		block:   block,
		reg:     reg,
		scratch: make([]byte, block.BlockSize()),
		decrypt: decrypt,
	}
}

func (s *cfb8Stream) XORKeyStream(dst, src []byte) {
	blockSize := s.block.BlockSize()
	for i, in := range src {
		copy(s.scratch, s.reg)
		s.block.Encrypt(s.reg, s.reg)
		out := in ^ s.reg[0]
		dst[i] = out

		copy(s.reg, s.scratch[1:])
		if s.decrypt {
			s.reg[blockSize-1] = in
		} else {
			s.reg[blockSize-1] = out
		}
	}
}
