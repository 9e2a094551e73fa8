package feed

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrDecryption marks a malformed envelope or a wrong feed secret. The
// failure is non-retryable for that payload; the next scheduled pass fetches
// the current feed state again.
var ErrDecryption = errors.New("feed: decryption failed")

// Envelope is the encrypted incident-feed payload as delivered upstream.
type Envelope struct {
	CT   string `json:"ct"` // base64 ciphertext
	IV   string `json:"iv"` // hex
	Salt string `json:"s"`  // hex
}

const (
	keyLen = 32
	ivLen  = 16
)

// Decrypt opens the envelope with the tenant's feed secret and returns the
// decoded payload. The plaintext is a JSON-encoded string that itself
// contains the payload object, so it is parsed twice.
func Decrypt(env *Envelope, secret string) (*Payload, error) {
	ct, err := base64.StdEncoding.DecodeString(env.CT)
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext encoding: %v", ErrDecryption, err)
	}
	salt, err := hex.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad salt encoding: %v", ErrDecryption, err)
	}

	key, derivedIV := deriveKeyIV([]byte(secret), salt)

	iv := derivedIV
	if env.IV != "" {
		iv, err = hex.DecodeString(env.IV)
		if err != nil {
			return nil, fmt.Errorf("%w: bad iv encoding: %v", ErrDecryption, err)
		}
	}
	if len(iv) != ivLen {
		return nil, fmt.Errorf("%w: iv must be %d bytes, got %d", ErrDecryption, ivLen, len(iv))
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a block multiple", ErrDecryption, len(ct))
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	plain := make([]byte, len(ct))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plain, ct)

	plain, err = pkcs7Unpad(plain)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecryption, err)
	}

	// First pass yields a JSON string, second pass parses its content.
	var inner string
	if err := json.Unmarshal(plain, &inner); err != nil {
		return nil, fmt.Errorf("%w: plaintext is not a JSON string: %v", ErrDecryption, err)
	}
	var payload Payload
	if err := json.Unmarshal([]byte(inner), &payload); err != nil {
		return nil, fmt.Errorf("%w: payload parse: %v", ErrDecryption, err)
	}
	return &payload, nil
}

// deriveKeyIV implements the OpenSSL EVP_BytesToKey scheme with MD5: hash
// password and salt repeatedly, concatenating digests until enough key and
// IV material is produced.
func deriveKeyIV(password, salt []byte) (key, iv []byte) {
	var material []byte
	var prev []byte
	for len(material) < keyLen+ivLen {
		h := md5.New()
		h.Write(prev)
		h.Write(password)
		h.Write(salt)
		prev = h.Sum(nil)
		material = append(material, prev...)
	}
	return material[:keyLen], material[keyLen : keyLen+ivLen]
}

func pkcs7Unpad(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("empty plaintext")
	}
	n := int(b[len(b)-1])
	if n == 0 || n > aes.BlockSize || n > len(b) {
		return nil, fmt.Errorf("invalid padding length %d", n)
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, fmt.Errorf("invalid padding byte")
		}
	}
	return b[:len(b)-n], nil
}
