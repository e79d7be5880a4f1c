package crypto

import (
	"crypto/rand"
	"math/big"
)

const (
	letterChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	numberChars = "0123456789"

	// TempPasswordLength is the length of passwords issued by the
	// password reset flow.
	TempPasswordLength = 8
)

// GenerateTempPassword creates a cryptographically random password of
// letters and digits. At least one letter and one digit are guaranteed
// so the result satisfies the login password policy.
func GenerateTempPassword() (string, error) {
	pool := letterChars + numberChars
	result := make([]byte, TempPasswordLength)

	ch, err := randChar(letterChars)
	if err != nil {
		return "", err
	}
	result[0] = ch

	ch, err = randChar(numberChars)
	if err != nil {
		return "", err
	}
	result[1] = ch

	for i := 2; i < TempPasswordLength; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randChar picks a random character from charset using crypto/rand.
func randChar(charset string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}

// secureShuffle performs a Fisher-Yates shuffle using crypto/rand.
func secureShuffle(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return err
		}
		data[i], data[j.Int64()] = data[j.Int64()], data[i]
	}
	return nil
}
