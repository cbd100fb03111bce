package jwt

import (
	"fmt"
	"thesis-proposal-system/config"
	"thesis-proposal-system/internal/global/response"
	"thesis-proposal-system/internal/model"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/pkg/errors"
)

// Payload 令牌中携带的身份信息
type Payload struct {
	UserID uint       `json:"user_id"`
	Role   model.Role `json:"role"`
}

type Claims struct {
	Payload
	jwt.StandardClaims
}

// CreateToken 签发携带用户身份的访问令牌，有效期由配置决定（默认 1 小时）
func CreateToken(payload Payload) string {
	cfg := config.Get().JWT
	now := time.Now()
	claims := Claims{
		Payload: payload,
		StandardClaims: jwt.StandardClaims{
			IssuedAt:  now.Unix(),
			ExpiresAt: now.Add(time.Duration(cfg.AccessExpire) * time.Second).Unix(),
			Issuer:    "thesis-proposal-system",
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.AccessSecret))
	if err != nil {
		// HS256 + 字节密钥签名不会失败，除非配置未初始化
		panic(err)
	}
	return token
}

// ParseToken 校验令牌并返回其中的身份信息
// 过期与其他非法情况返回不同的错误码
func ParseToken(tokenString string) (*Claims, *response.Error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非预期的签名算法: %v", t.Header["alg"])
		}
		return []byte(config.Get().JWT.AccessSecret), nil
	})
	if err != nil {
		var ve *jwt.ValidationError
		if errors.As(err, &ve) && ve.Errors&jwt.ValidationErrorExpired != 0 {
			return nil, response.ErrTokenExpired
		}
		return nil, response.ErrTokenInvalid.WithOrigin(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, response.ErrTokenInvalid
	}
	return claims, nil
}
