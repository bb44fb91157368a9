// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"fmt"
	"hash"
	"strings"

	"github.com/MKhiriev/totp-clip/models"
)

const maxDigits = 10

// pow10 holds 10^n for n in 0..maxDigits.
var pow10 = func() [maxDigits + 1]uint64 {
	var p [maxDigits + 1]uint64
	p[0] = 1
	for i := 1; i <= maxDigits; i++ {
		p[i] = p[i-1] * 10
	}
	return p
}()

// ParseAlgorithm maps a case-insensitive algorithm name to
// [models.Algorithm]. An empty name yields [models.DefaultAlgorithm].
func ParseAlgorithm(name string) (models.Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "":
		return models.DefaultAlgorithm, nil
	case "SHA1":
		return models.AlgorithmSHA1, nil
	case "SHA256":
		return models.AlgorithmSHA256, nil
	case "SHA512":
		return models.AlgorithmSHA512, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
}

func hashFunc(algorithm models.Algorithm) (func() hash.Hash, error) {
	switch algorithm {
	case models.AlgorithmSHA1:
		return sha1.New, nil
	case models.AlgorithmSHA256:
		return sha256.New, nil
	case models.AlgorithmSHA512:
		return sha512.New, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, algorithm)
	}
}

// DeriveCode computes the HOTP value for counter: HMAC(secret, counter as
// 8 big-endian bytes), dynamic truncation to an unsigned 31-bit integer,
// reduced modulo 10^digits and left-padded with zeros to digits width.
func DeriveCode(secret []byte, counter uint64, digits int, algorithm models.Algorithm) (string, error) {
	if digits < 1 || digits > maxDigits {
		return "", fmt.Errorf("%w: %d", ErrInvalidDigits, digits)
	}

	newHash, err := hashFunc(algorithm)
	if err != nil {
		return "", err
	}

	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(newHash, secret)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	value := uint64(binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff)

	return fmt.Sprintf("%0*d", digits, value%pow10[digits]), nil
}
