package middleware

import (
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	"github.com/NareeyaChenu/rfm-project/internal/common"
	"github.com/NareeyaChenu/rfm-project/internal/global"
	"github.com/NareeyaChenu/rfm-project/internal/logger"
)

// ApiClaims chứa data được mã hóa trong JWT token của API client.
type ApiClaims struct {
	ClientID string `json:"clientId"`
	jwt.StandardClaims
}

// RequireAuth kiểm tra Bearer token trong header Authorization.
// Token hợp lệ thì lưu clientId vào Locals("clientId") và cho request đi tiếp.
func RequireAuth() fiber.Handler {
	return func(c fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return HandleErrorResponse(c, common.ErrTokenMissing)
		}

		claims := &ApiClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, common.ErrTokenInvalid
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil {
			if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				return HandleErrorResponse(c, common.ErrTokenExpired)
			}
			logger.WithRequest(c).WithError(err).Warn("Token không hợp lệ")
			return HandleErrorResponse(c, common.ErrTokenInvalid)
		}
		if !token.Valid {
			return HandleErrorResponse(c, common.ErrTokenInvalid)
		}

		c.Locals("clientId", claims.ClientID)
		return c.Next()
	}
}
