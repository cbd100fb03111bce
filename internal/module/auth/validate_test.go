package auth

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	require.Equal(t, "alice@example.com", normalizeEmail("  Alice@Example.COM "))
	require.Equal(t, "bob@uni.edu", normalizeEmail("bob@uni.edu"))
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, validateEmail("alice@example.com"))
	require.NoError(t, validateEmail("a@b.cn"))
	require.Error(t, validateEmail("alice"))
	require.Error(t, validateEmail("alice@example"))
	require.Error(t, validateEmail("@example.com"))
	require.Error(t, validateEmail(""))
}

func TestValidatePasswordStrength(t *testing.T) {
	require.NoError(t, validatePasswordStrength("abc123"))
	require.NoError(t, validatePasswordStrength("Secret42"))

	require.Error(t, validatePasswordStrength(""))
	require.Error(t, validatePasswordStrength("ab1"))    // 过短
	require.Error(t, validatePasswordStrength("abcdef")) // 无数字
	require.Error(t, validatePasswordStrength("123456")) // 无字母
}
