package middleware

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Claims はJWTトークンのクレーム（ペイロード）を表す。
// アカウントの外部資格識別子（uid）を認証経路で伝播するために使用する。
type Claims struct {
	jwt.RegisteredClaims
	// UID はアカウント登録時に発行される外部資格識別子。
	UID string `json:"uid"`
}

// tokenLifetime は発行するトークンの有効期間。
const tokenLifetime = 30 * 24 * time.Hour

// GenerateToken は外部資格識別子からJWTトークンを生成する。
// アカウント登録時に呼び出され、以降のAPI呼び出しの資格情報となる。
func GenerateToken(secret, uid string) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "mimamori-api",
		},
		UID: uid,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("JWTトークンの署名に失敗: %w", err)
	}
	return signed, nil
}

// Auth はJWTトークンを検証するGinミドルウェアを返す。
// 検証に成功した場合、コンテキストに "uid" を設定する。
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Authorizationヘッダーが必要です",
			})
			return
		}

		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "Bearer トークン形式が不正です",
			})
			return
		}

		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "トークンが無効です",
			})
			return
		}

		c.Set("uid", claims.UID)
		c.Next()
	}
}

// GetUID はGinコンテキストから外部資格識別子を取得する。
// Authミドルウェアが事前に適用されている必要がある。
func GetUID(c *gin.Context) string {
	uid, _ := c.Get("uid")
	if id, ok := uid.(string); ok {
		return id
	}
	return ""
}
