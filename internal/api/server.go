package api

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"

	apidb "github.com/mimamori-app/mimamori/internal/api/db"
	"github.com/mimamori-app/mimamori/internal/dispatch"
	"github.com/mimamori-app/mimamori/pkg/middleware"
	"github.com/mimamori-app/mimamori/pkg/pushclient"
)

// Server は見守りAPIのHTTPサーバー。
type Server struct {
	// router はGinのHTTPルーター。
	router *gin.Engine
	// port はサーバーのリッスンポート。
	port string
	// queries はsqlcが生成したクエリ実行オブジェクト。
	queries *apidb.Queries
	// db はSQLiteデータベース接続。
	db *sql.DB
	// dispatcher は介護者へのプッシュ通知配信を管理する。
	dispatcher *dispatch.Dispatcher
	// jwtSecret はJWT署名用の秘密鍵。
	jwtSecret string
}

// NewServer は新しい見守りAPIサーバーを生成する。
// SQLiteデータベースの初期化とスキーマ作成を行う。
func NewServer(port string) (*Server, error) {
	dbPath := getEnvOr("DB_PATH", "/data/mimamori.db")
	sqlDB, err := sql.Open("sqlite", fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000", dbPath))
	if err != nil {
		return nil, fmt.Errorf("データベース接続に失敗: %w", err)
	}

	if err := initSchema(sqlDB); err != nil {
		return nil, fmt.Errorf("スキーマ初期化に失敗: %w", err)
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = "dev-secret-key"
	}

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORS())

	queries := apidb.New(sqlDB)

	s := &Server{
		router:     router,
		port:       port,
		queries:    queries,
		db:         sqlDB,
		dispatcher: dispatch.New(queries, pushclient.New(os.Getenv("PUSH_ENDPOINT"))),
		jwtSecret:  jwtSecret,
	}
	s.setupRoutes()

	return s, nil
}

// Run はHTTPサーバーを起動する。
func (s *Server) Run() error {
	return s.router.Run(fmt.Sprintf(":%s", s.port))
}

// setupRoutes はAPIルーティングを設定する。
func (s *Server) setupRoutes() {
	// アカウント登録（認証不要 - 登録成功時にトークンを発行する）
	s.router.POST("/register", s.handleRegister())

	// 端末チャネルのイベント取り込み（認証不要 - 端末識別子で対象を解決する）
	s.router.POST("/devices/:device_id/events", s.handleCreateDeviceEvent())

	// 認証必須のAPIエンドポイント
	api := s.router.Group("/api/v1")
	api.Use(middleware.Auth(s.jwtSecret))
	{
		// アカウント情報
		api.GET("/me", s.handleGetCurrentAccount())
		api.GET("/users/email/:email", s.handleGetAccountByEmail())

		// 端末リンク
		api.POST("/device", s.handleLinkDevice())
		api.DELETE("/device", s.handleUnlinkDevice())

		// プッシュ通知トークン
		api.POST("/notification-token", s.handleUpdateNotificationToken())

		// イベント
		api.POST("/events", s.handleCreateEvent())
		api.GET("/events", s.handleListEvents())

		// 介護者リンク
		caregivers := api.Group("/patient-caregivers")
		{
			caregivers.POST("", s.handleLinkCaregiver())
			caregivers.DELETE("", s.handleUnlinkCaregiver())
			caregivers.GET("/patient", s.handleListCaregivers())
			caregivers.GET("/caregiver/:caregiver_id", s.handleListPatients())
		}
	}

	// ヘルスチェック
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "mimamori"})
	})
}

// resolveAccount は認証済みリクエストの呼び出し元アカウントを解決する。
// 解決に失敗した場合はエラーレスポンスを書き込み、falseを返す。
func (s *Server) resolveAccount(c *gin.Context) (apidb.Account, bool) {
	uid := middleware.GetUID(c)
	if uid == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "資格識別子が取得できません"})
		return apidb.Account{}, false
	}

	account, err := s.queries.GetAccountByUID(c.Request.Context(), uid)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "アカウントが見つかりません"})
		return apidb.Account{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "アカウントの取得に失敗しました"})
		log.Printf("アカウント取得エラー: %v", err)
		return apidb.Account{}, false
	}
	return account, true
}

// getEnvOr は環境変数を取得し、設定されていない場合はデフォルト値を返す。
func getEnvOr(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
