package api

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	apidb "github.com/mimamori-app/mimamori/internal/api/db"
	"github.com/mimamori-app/mimamori/pkg/middleware"
)

// registerRequest はアカウント登録リクエストのJSON構造。
type registerRequest struct {
	// Email はメールアドレス。
	Email string `json:"email" binding:"required,email"`
	// Name は表示名。
	Name string `json:"name" binding:"required"`
	// Cellphone は携帯電話番号。
	Cellphone string `json:"cellphone" binding:"required"`
	// Patient は患者プロフィール。被介護者として登録する場合のみ指定する。
	Patient *registerPatientRequest `json:"patient"`
}

// registerPatientRequest は登録時に併せて作成する患者プロフィールのJSON構造。
type registerPatientRequest struct {
	// Street は住所（番地）。
	Street string `json:"street" binding:"required"`
	// City は住所（市区町村）。
	City string `json:"city" binding:"required"`
	// State は住所（都道府県・州）。
	State string `json:"state" binding:"required"`
	// ZipCode は郵便番号。
	ZipCode string `json:"zip_code" binding:"required"`
	// DateOfBirth は生年月日（YYYY-MM-DD形式）。
	DateOfBirth string `json:"date_of_birth" binding:"required"`
}

// linkDeviceRequest は端末リンクリクエストのJSON構造。
type linkDeviceRequest struct {
	// DeviceID はリンクするウェアラブル端末の識別子。
	DeviceID string `json:"device_id" binding:"required"`
}

// notificationTokenRequest はプッシュ通知トークン登録リクエストのJSON構造。
type notificationTokenRequest struct {
	// Token はプッシュ配信プロバイダが発行した通知トークン。
	Token string `json:"token" binding:"required"`
}

// accountResponse はアカウントのJSONレスポンス構造。
type accountResponse struct {
	// ID はアカウントの一意識別子。
	ID int64 `json:"id"`
	// Uid は外部資格識別子。
	Uid string `json:"uid"`
	// Email はメールアドレス。
	Email string `json:"email"`
	// Name は表示名。
	Name string `json:"name"`
	// Cellphone は携帯電話番号。
	Cellphone string `json:"cellphone"`
	// PushToken はプッシュ通知トークン。未登録の場合は空文字列。
	PushToken string `json:"push_token"`
	// Device はリンク済みウェアラブル端末の識別子。未リンクの場合は空文字列。
	Device string `json:"device"`
	// CreatedAt は作成日時。
	CreatedAt string `json:"created_at"`
	// UpdatedAt は更新日時。
	UpdatedAt string `json:"updated_at"`
}

// patientResponse は患者プロフィールのJSONレスポンス構造。
type patientResponse struct {
	// ID はプロフィールの一意識別子。
	ID int64 `json:"id"`
	// AccountID は所有するアカウントのID。
	AccountID int64 `json:"account_id"`
	// Street は住所（番地）。
	Street string `json:"street"`
	// City は住所（市区町村）。
	City string `json:"city"`
	// State は住所（都道府県・州）。
	State string `json:"state"`
	// ZipCode は郵便番号。
	ZipCode string `json:"zip_code"`
	// DateOfBirth は生年月日（YYYY-MM-DD形式）。
	DateOfBirth string `json:"date_of_birth"`
}

// toAccountResponse はDB行をJSONレスポンスに変換する。
func toAccountResponse(a apidb.Account) accountResponse {
	return accountResponse{
		ID:        a.ID,
		Uid:       a.Uid,
		Email:     a.Email,
		Name:      a.Name,
		Cellphone: a.Cellphone,
		PushToken: a.PushToken.String,
		Device:    a.Device.String,
		CreatedAt: a.CreatedAt.Format("2006-01-02T15:04:05Z"),
		UpdatedAt: a.UpdatedAt.Format("2006-01-02T15:04:05Z"),
	}
}

// toPatientResponse はDB行をJSONレスポンスに変換する。
func toPatientResponse(p apidb.PatientProfile) patientResponse {
	return patientResponse{
		ID:          p.ID,
		AccountID:   p.AccountID,
		Street:      p.Street,
		City:        p.City,
		State:       p.State,
		ZipCode:     p.ZipCode,
		DateOfBirth: p.DateOfBirth.Format("2006-01-02"),
	}
}

// handleRegister はアカウント登録を処理するハンドラを返す。
// メールアドレスの重複を拒否し、登録成功時に認証トークンを発行する。
// patientフィールドが指定された場合は患者プロフィールも同時に作成する。
func (s *Server) handleRegister() gin.HandlerFunc {
	return func(c *gin.Context) {
		var req registerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		var dateOfBirth time.Time
		if req.Patient != nil {
			var err error
			dateOfBirth, err = time.Parse("2006-01-02", req.Patient.DateOfBirth)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "生年月日はYYYY-MM-DD形式で指定してください"})
				return
			}
		}

		if _, err := s.queries.GetAccountByEmail(c.Request.Context(), req.Email); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "このメールアドレスは既に登録されています"})
			return
		} else if !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "アカウントの登録に失敗しました"})
			log.Printf("メールアドレス照会エラー: %v", err)
			return
		}

		account, err := s.queries.CreateAccount(c.Request.Context(), apidb.CreateAccountParams{
			Uid:       uuid.New().String(),
			Email:     req.Email,
			Name:      req.Name,
			Cellphone: req.Cellphone,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "アカウントの登録に失敗しました"})
			log.Printf("アカウント登録エラー: %v", err)
			return
		}

		resp := gin.H{"account": toAccountResponse(account)}
		if req.Patient != nil {
			patient, err := s.queries.CreatePatientProfile(c.Request.Context(), apidb.CreatePatientProfileParams{
				AccountID:   account.ID,
				Street:      req.Patient.Street,
				City:        req.Patient.City,
				State:       req.Patient.State,
				ZipCode:     req.Patient.ZipCode,
				DateOfBirth: dateOfBirth,
			})
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "患者プロフィールの作成に失敗しました"})
				log.Printf("患者プロフィール作成エラー: %v", err)
				return
			}
			resp["patient"] = toPatientResponse(patient)
		}

		token, err := middleware.GenerateToken(s.jwtSecret, account.Uid)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "認証トークンの発行に失敗しました"})
			log.Printf("トークン発行エラー: %v", err)
			return
		}
		resp["token"] = token

		c.JSON(http.StatusCreated, resp)
	}
}

// handleGetCurrentAccount は認証済みアカウントの情報取得を処理するハンドラを返す。
// 患者プロフィールを持つ場合はそれも併せて返す。
func (s *Server) handleGetCurrentAccount() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := s.resolveAccount(c)
		if !ok {
			return
		}

		resp := gin.H{"account": toAccountResponse(account)}
		patient, err := s.queries.GetPatientProfileByAccountID(c.Request.Context(), account.ID)
		if err == nil {
			resp["patient"] = toPatientResponse(patient)
		} else if !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "患者プロフィールの取得に失敗しました"})
			log.Printf("患者プロフィール取得エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, resp)
	}
}

// handleGetAccountByEmail はメールアドレスによるアカウント検索を処理するハンドラを返す。
// 介護者リンクを張る際の相手探しに使用される。
func (s *Server) handleGetAccountByEmail() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := s.resolveAccount(c); !ok {
			return
		}

		email := c.Param("email")
		account, err := s.queries.GetAccountByEmail(c.Request.Context(), email)
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "アカウントが見つかりません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "アカウントの取得に失敗しました"})
			log.Printf("アカウント検索エラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, toAccountResponse(account))
	}
}

// handleLinkDevice はウェアラブル端末のリンクを処理するハンドラを返す。
// 端末識別子は全アカウントで一意であり、他アカウントが使用中の識別子は拒否する。
func (s *Server) handleLinkDevice() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := s.resolveAccount(c)
		if !ok {
			return
		}

		var req linkDeviceRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		deviceID := strings.TrimSpace(req.DeviceID)
		if deviceID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "端末識別子を指定してください"})
			return
		}

		device := sql.NullString{String: deviceID, Valid: true}
		owner, err := s.queries.GetAccountByDevice(c.Request.Context(), device)
		if err == nil && owner.ID != account.ID {
			c.JSON(http.StatusConflict, gin.H{"error": "この端末は既に他のアカウントにリンクされています"})
			return
		}
		if err != nil && !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "端末のリンクに失敗しました"})
			log.Printf("端末照会エラー: %v", err)
			return
		}

		if err := s.queries.UpdateAccountDevice(c.Request.Context(), apidb.UpdateAccountDeviceParams{
			Device: device,
			ID:     account.ID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "端末のリンクに失敗しました"})
			log.Printf("端末リンクエラー: %v", err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"device": deviceID})
	}
}

// handleUnlinkDevice はウェアラブル端末のリンク解除を処理するハンドラを返す。
func (s *Server) handleUnlinkDevice() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := s.resolveAccount(c)
		if !ok {
			return
		}

		if !account.Device.Valid {
			c.JSON(http.StatusNotFound, gin.H{"error": "リンクされた端末がありません"})
			return
		}

		if err := s.queries.UpdateAccountDevice(c.Request.Context(), apidb.UpdateAccountDeviceParams{
			Device: sql.NullString{},
			ID:     account.ID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "端末のリンク解除に失敗しました"})
			log.Printf("端末リンク解除エラー: %v", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// handleUpdateNotificationToken はプッシュ通知トークンの登録を処理するハンドラを返す。
// 既存のトークンは新しいトークンで上書きされる。
func (s *Server) handleUpdateNotificationToken() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := s.resolveAccount(c)
		if !ok {
			return
		}

		var req notificationTokenRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		token := strings.TrimSpace(req.Token)
		if token == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "通知トークンを指定してください"})
			return
		}

		if err := s.queries.UpdateAccountPushToken(c.Request.Context(), apidb.UpdateAccountPushTokenParams{
			PushToken: sql.NullString{String: token, Valid: true},
			ID:        account.ID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "通知トークンの登録に失敗しました"})
			log.Printf("通知トークン登録エラー: %v", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}
