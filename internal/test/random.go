package test

import (
	"math/rand"
	"sync"
	"time"
)

const (
	passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	digits           = "0123456789"
)

var (
	rngMu sync.Mutex
	rng   = rand.New(rand.NewSource(time.Now().UnixNano()))
)

// RandomMobile returns a ten digit mobile number that never starts with zero.
func RandomMobile() string {
	buf := []byte(randomFrom(digits, 10))
	buf[0] = digits[1+randomIntn(len(digits)-1)]
	return string(buf)
}

// RandomPassword returns an alphanumeric password between minLen and maxLen characters.
func RandomPassword(minLen, maxLen int) string {
	if minLen <= 0 {
		minLen = 1
	}
	if maxLen < minLen {
		maxLen = minLen
	}
	return randomFrom(passwordAlphabet, minLen+randomIntn(maxLen-minLen+1))
}

func randomFrom(alphabet string, length int) string {
	buf := make([]byte, length)
	for i := range buf {
		buf[i] = alphabet[randomIntn(len(alphabet))]
	}
	return string(buf)
}

func randomIntn(n int) int {
	rngMu.Lock()
	defer rngMu.Unlock()
	return rng.Intn(n)
}
