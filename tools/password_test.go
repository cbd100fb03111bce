package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPasswordEncryptAndCompare(t *testing.T) {
	hash := PasswordEncrypt("secret123")
	require.NotEqual(t, "secret123", hash)
	require.True(t, PasswordCompare("secret123", hash))
	require.False(t, PasswordCompare("secret124", hash))
	require.False(t, PasswordCompare("", hash))
}

func TestPasswordEncryptUsesFreshSalt(t *testing.T) {
	// 相同明文两次加密结果不同，但都能通过校验
	h1 := PasswordEncrypt("secret123")
	h2 := PasswordEncrypt("secret123")
	require.NotEqual(t, h1, h2)
	require.True(t, PasswordCompare("secret123", h1))
	require.True(t, PasswordCompare("secret123", h2))
}
