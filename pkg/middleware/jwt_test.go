package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// testSecret はテスト用のJWTシークレット。
const testSecret = "test-secret-key-for-unit-tests"

// TestGenerateToken はGenerateToken関数を検証する。
func TestGenerateToken(t *testing.T) {
	t.Parallel()

	t.Run("正常にJWTトークンを生成できること", func(t *testing.T) {
		t.Parallel()

		tokenStr, err := GenerateToken(testSecret, "uid-123")
		if err != nil {
			t.Fatalf("GenerateToken()でエラーが発生: %v", err)
		}
		if tokenStr == "" {
			t.Fatal("GenerateToken()が空文字列を返した")
		}

		// トークンをパースして検証する
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		if err != nil {
			t.Fatalf("トークンのパースに失敗: %v", err)
		}
		if !token.Valid {
			t.Fatal("トークンが無効")
		}

		if claims.UID != "uid-123" {
			t.Errorf("UID = %q, want %q", claims.UID, "uid-123")
		}
		if claims.Issuer != "mimamori-api" {
			t.Errorf("Issuer = %q, want %q", claims.Issuer, "mimamori-api")
		}
	})

	t.Run("トークンの有効期限が30日後であること", func(t *testing.T) {
		t.Parallel()

		before := time.Now()
		tokenStr, err := GenerateToken(testSecret, "uid-exp")
		if err != nil {
			t.Fatalf("GenerateToken()でエラーが発生: %v", err)
		}

		claims := &Claims{}
		_, err = jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
			return []byte(testSecret), nil
		})
		if err != nil {
			t.Fatalf("トークンのパースに失敗: %v", err)
		}

		expectedExpiry := before.Add(tokenLifetime)
		// 有効期限が30日後の前後1分以内であること
		if claims.ExpiresAt.Time.Before(expectedExpiry.Add(-1 * time.Minute)) {
			t.Errorf("ExpiresAt = %v, 期待する最小値: %v", claims.ExpiresAt.Time, expectedExpiry.Add(-1*time.Minute))
		}
		if claims.ExpiresAt.Time.After(expectedExpiry.Add(1 * time.Minute)) {
			t.Errorf("ExpiresAt = %v, 期待する最大値: %v", claims.ExpiresAt.Time, expectedExpiry.Add(1*time.Minute))
		}
	})
}

// TestAuth はAuthミドルウェアを検証する。
func TestAuth(t *testing.T) {
	t.Parallel()

	// setupRouter はAuthミドルウェアを適用したテスト用ルーターを構築する。
	setupRouter := func() *gin.Engine {
		router := gin.New()
		router.GET("/protected", Auth(testSecret), func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"uid": GetUID(c)})
		})
		return router
	}

	t.Run("有効なトークンでアクセスできること", func(t *testing.T) {
		t.Parallel()

		tokenStr, err := GenerateToken(testSecret, "uid-auth")
		if err != nil {
			t.Fatalf("GenerateToken()でエラーが発生: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		setupRouter().ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusOK)
		}
	})

	t.Run("Authorizationヘッダーがない場合は401", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		w := httptest.NewRecorder()
		setupRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("Bearer形式でない場合は401", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abcdef")
		w := httptest.NewRecorder()
		setupRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("署名が異なるトークンは401", func(t *testing.T) {
		t.Parallel()

		tokenStr, err := GenerateToken("other-secret", "uid-bad")
		if err != nil {
			t.Fatalf("GenerateToken()でエラーが発生: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		setupRouter().ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("ステータスコード = %d, want %d", w.Code, http.StatusUnauthorized)
		}
	})

	t.Run("検証後にGetUIDでuidを取得できること", func(t *testing.T) {
		t.Parallel()

		tokenStr, err := GenerateToken(testSecret, "uid-get")
		if err != nil {
			t.Fatalf("GenerateToken()でエラーが発生: %v", err)
		}

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+tokenStr)
		w := httptest.NewRecorder()
		setupRouter().ServeHTTP(w, req)

		if w.Body.String() != `{"uid":"uid-get"}` {
			t.Errorf("ボディ = %s, want %s", w.Body.String(), `{"uid":"uid-get"}`)
		}
	})
}

// TestGetUID はミドルウェア未適用時のGetUIDの挙動を検証する。
func TestGetUID(t *testing.T) {
	t.Parallel()

	t.Run("uidが未設定の場合は空文字列を返すこと", func(t *testing.T) {
		t.Parallel()

		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		if got := GetUID(c); got != "" {
			t.Errorf("GetUID() = %q, want 空文字列", got)
		}
	})
}
