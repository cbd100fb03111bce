package jwt

import (
	"testing"
	"thesis-proposal-system/config"
	"thesis-proposal-system/internal/global/response"
	"thesis-proposal-system/internal/model"
	"time"

	gojwt "github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/require"
)

func TestCreateAndParseToken(t *testing.T) {
	token := CreateToken(Payload{UserID: 42, Role: model.RoleSupervisor})
	require.NotEmpty(t, token)

	claims, errResp := ParseToken(token)
	require.Nil(t, errResp)
	require.Equal(t, uint(42), claims.UserID)
	require.Equal(t, model.RoleSupervisor, claims.Role)
	require.Greater(t, claims.ExpiresAt, time.Now().Unix())
}

func TestParseTokenMalformed(t *testing.T) {
	_, errResp := ParseToken("not-a-token")
	require.NotNil(t, errResp)
	require.Equal(t, response.ErrTokenInvalid.Code, errResp.Code)
}

func TestParseTokenWrongSignature(t *testing.T) {
	claims := Claims{
		Payload: Payload{UserID: 1, Role: model.RoleStudent},
		StandardClaims: gojwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).SignedString([]byte("other-secret"))
	require.NoError(t, err)

	_, errResp := ParseToken(token)
	require.NotNil(t, errResp)
	require.Equal(t, response.ErrTokenInvalid.Code, errResp.Code)
}

func TestParseTokenExpired(t *testing.T) {
	// 用同一密钥手工签发一个已过期的令牌
	claims := Claims{
		Payload: Payload{UserID: 1, Role: model.RoleStudent},
		StandardClaims: gojwt.StandardClaims{
			IssuedAt:  time.Now().Add(-2 * time.Hour).Unix(),
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	}
	token, err := gojwt.NewWithClaims(gojwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Get().JWT.AccessSecret))
	require.NoError(t, err)

	_, errResp := ParseToken(token)
	require.NotNil(t, errResp)
	require.Equal(t, response.ErrTokenExpired.Code, errResp.Code)
}
