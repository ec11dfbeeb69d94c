package utils

import (
	"crypto/rand"
	"errors"
	"math/big"
	"strings"
)

const referenceCharset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// GenerateReferenceCode produces a booking reference like "TRV-AB4D93KF".
// Uses crypto/rand + rand.Int (math/big) to avoid modulo bias.
func GenerateReferenceCode(prefix string, n int) (string, error) {
	if n <= 0 {
		return "", errors.New("invalid length")
	}
	var sb strings.Builder
	alphaLen := big.NewInt(int64(len(referenceCharset)))
	for i := 0; i < n; i++ {
		num, err := rand.Int(rand.Reader, alphaLen)
		if err != nil {
			return "", err
		}
		sb.WriteByte(referenceCharset[num.Int64()])
	}
	if prefix == "" {
		return sb.String(), nil
	}
	return strings.ToUpper(prefix) + "-" + sb.String(), nil
}
