package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPasswordSaltedPerCall(t *testing.T) {
	a := HashPassword("hunter2")
	b := HashPassword("hunter2")
	assert.NotEqual(t, a, b)
	assert.True(t, strings.HasPrefix(a, "pbkdf2:sha256:"))

	parts := strings.SplitN(a, "$", 3)
	require.Len(t, parts, 3)
	assert.Len(t, parts[1], saltLength)
}

func TestCheckPassword(t *testing.T) {
	h := HashPassword("hunter2")
	assert.True(t, CheckPassword("hunter2", h))
	assert.False(t, CheckPassword("hunter3", h))
	assert.False(t, CheckPassword("", h))
}

func TestCheckPasswordMalformedHash(t *testing.T) {
	for _, bad := range []string{
		"",
		"plaintext",
		"pbkdf2:sha256:260000",                   // 没有盐和摘要段
		"bcrypt:10$abcdefgh$00ff",                // 算法家族不对
		"pbkdf2:sha256:nan$abcdefgh$00ff",        // 迭代数不是数字
		"pbkdf2:sha256:260000$abcdefgh$nothex!!", // 摘要不是 hex
		"pbkdf2:sha256:260000$abcdefgh$",         // 摘要为空
	} {
		assert.False(t, CheckPassword("hunter2", bad), "input: %q", bad)
	}
}
