package utils

import (
	"math/rand"
	"sync"
	"time"
)

const (
	letterBytes   = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789_-"
	letterIdxBits = 6
	letterIdxMask = 1<<letterIdxBits - 1
	letterIdxMax  = 63 / letterIdxBits
)

var (
	src   = rand.NewSource(time.Now().UnixNano())
	srcMu sync.Mutex
)

// RandStringBytesMaskImpr returns n random url-safe characters.
func RandStringBytesMaskImpr(n int) string {
	b := make([]byte, n)
	srcMu.Lock()
	defer srcMu.Unlock()
	for i, cache, remain := n-1, src.Int63(), letterIdxMax; i >= 0; {
		if remain == 0 {
			cache, remain = src.Int63(), letterIdxMax
		}
		if idx := int(cache & letterIdxMask); idx < len(letterBytes) {
			b[i] = letterBytes[idx]
			i--
		}
		cache >>= letterIdxBits
		remain--
	}
	return string(b)
}

// IDGenerator produces the suffix of `{prefix}-{suffix}` identifiers.
type IDGenerator func() string

// DefaultIDGenerator 默认 16 位随机后缀
func DefaultIDGenerator() string {
	return RandStringBytesMaskImpr(16)
}
