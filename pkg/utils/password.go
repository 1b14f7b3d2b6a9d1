package utils

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	hashMethod     = "pbkdf2:sha256"
	hashIterations = 260000
	saltLength     = 8
)

const saltChars = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// HashPassword 每次调用随机盐，同一明文两次结果不同。
// 输出 pbkdf2:sha256:<iter>$<salt>$<hex>，校验时从串里还原参数。
func HashPassword(pw string) string {
	salt := randomSalt(saltLength)
	dk := pbkdf2.Key([]byte(pw), []byte(salt), hashIterations, sha256.Size, sha256.New)
	return fmt.Sprintf("%s:%d$%s$%s", hashMethod, hashIterations, salt, hex.EncodeToString(dk))
}

// CheckPassword 格式不对或任何一段对不上都算失败。
func CheckPassword(pw, stored string) bool {
	parts := strings.SplitN(stored, "$", 3)
	if len(parts) != 3 {
		return false
	}
	method, salt, want := parts[0], parts[1], parts[2]
	if !strings.HasPrefix(method, hashMethod+":") {
		return false
	}
	iters, err := strconv.Atoi(strings.TrimPrefix(method, hashMethod+":"))
	if err != nil || iters <= 0 {
		return false
	}
	wantRaw, err := hex.DecodeString(want)
	if err != nil || len(wantRaw) == 0 {
		return false
	}
	dk := pbkdf2.Key([]byte(pw), []byte(salt), iters, len(wantRaw), sha256.New)
	return hmac.Equal(dk, wantRaw)
}

func randomSalt(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic(err) // crypto/rand 不可用说明环境坏掉，直接崩
	}
	for i, b := range buf {
		buf[i] = saltChars[int(b)%len(saltChars)]
	}
	return string(buf)
}
