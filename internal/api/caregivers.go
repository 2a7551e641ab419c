package api

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	apidb "github.com/mimamori-app/mimamori/internal/api/db"
)

// caregiverLinkRequest は介護者リンクの作成・削除リクエストのJSON構造。
type caregiverLinkRequest struct {
	// CaregiverAccountID は介護者アカウントのID。
	CaregiverAccountID int64 `json:"caregiver_account_id" binding:"required"`
}

// patientInCareResponse は介護者から見た担当患者のJSONレスポンス構造。
type patientInCareResponse struct {
	// ID はプロフィールの一意識別子。
	ID int64 `json:"id"`
	// AccountID は患者アカウントのID。
	AccountID int64 `json:"account_id"`
	// Name は患者の表示名。
	Name string `json:"name"`
	// Email は患者のメールアドレス。
	Email string `json:"email"`
	// Cellphone は患者の携帯電話番号。
	Cellphone string `json:"cellphone"`
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

// resolvePatientProfile は呼び出し元アカウントの患者プロフィールを解決する。
// 解決に失敗した場合はエラーレスポンスを書き込み、falseを返す。
func (s *Server) resolvePatientProfile(c *gin.Context, accountID int64) (apidb.PatientProfile, bool) {
	profile, err := s.queries.GetPatientProfileByAccountID(c.Request.Context(), accountID)
	if errors.Is(err, sql.ErrNoRows) {
		c.JSON(http.StatusNotFound, gin.H{"error": "患者プロフィールが見つかりません"})
		return apidb.PatientProfile{}, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "患者プロフィールの取得に失敗しました"})
		log.Printf("患者プロフィール取得エラー: %v", err)
		return apidb.PatientProfile{}, false
	}
	return profile, true
}

// handleLinkCaregiver は介護者リンクの作成を処理するハンドラを返す。
// 呼び出し元の患者プロフィールと指定された介護者アカウントを結び付ける。
// 同一ペアの重複リンクは拒否する。
func (s *Server) handleLinkCaregiver() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := s.resolveAccount(c)
		if !ok {
			return
		}

		var req caregiverLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		profile, ok := s.resolvePatientProfile(c, account.ID)
		if !ok {
			return
		}

		if _, err := s.queries.GetAccountByID(c.Request.Context(), req.CaregiverAccountID); errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "介護者アカウントが見つかりません"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "介護者アカウントの取得に失敗しました"})
			log.Printf("介護者アカウント取得エラー: %v", err)
			return
		}

		if _, err := s.queries.GetCaregiverLink(c.Request.Context(), apidb.GetCaregiverLinkParams{
			PatientProfileID:   profile.ID,
			CaregiverAccountID: req.CaregiverAccountID,
		}); err == nil {
			c.JSON(http.StatusConflict, gin.H{"error": "この介護者は既にリンクされています"})
			return
		} else if !errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "介護者リンクの作成に失敗しました"})
			log.Printf("介護者リンク照会エラー: %v", err)
			return
		}

		link, err := s.queries.CreateCaregiverLink(c.Request.Context(), apidb.CreateCaregiverLinkParams{
			PatientProfileID:   profile.ID,
			CaregiverAccountID: req.CaregiverAccountID,
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "介護者リンクの作成に失敗しました"})
			log.Printf("介護者リンク作成エラー: %v", err)
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"id":                   link.ID,
			"patient_profile_id":   link.PatientProfileID,
			"caregiver_account_id": link.CaregiverAccountID,
		})
	}
}

// handleUnlinkCaregiver は介護者リンクの削除を処理するハンドラを返す。
func (s *Server) handleUnlinkCaregiver() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := s.resolveAccount(c)
		if !ok {
			return
		}

		var req caregiverLinkRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		profile, ok := s.resolvePatientProfile(c, account.ID)
		if !ok {
			return
		}

		if _, err := s.queries.GetCaregiverLink(c.Request.Context(), apidb.GetCaregiverLinkParams{
			PatientProfileID:   profile.ID,
			CaregiverAccountID: req.CaregiverAccountID,
		}); errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "介護者リンクが見つかりません"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "介護者リンクの削除に失敗しました"})
			log.Printf("介護者リンク照会エラー: %v", err)
			return
		}

		if err := s.queries.DeleteCaregiverLink(c.Request.Context(), apidb.DeleteCaregiverLinkParams{
			PatientProfileID:   profile.ID,
			CaregiverAccountID: req.CaregiverAccountID,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "介護者リンクの削除に失敗しました"})
			log.Printf("介護者リンク削除エラー: %v", err)
			return
		}

		c.Status(http.StatusNoContent)
	}
}

// handleListCaregivers は呼び出し元患者にリンクされた介護者一覧の取得を処理するハンドラを返す。
func (s *Server) handleListCaregivers() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := s.resolveAccount(c)
		if !ok {
			return
		}

		profile, ok := s.resolvePatientProfile(c, account.ID)
		if !ok {
			return
		}

		caregivers, err := s.queries.ListCaregiversByPatientProfile(c.Request.Context(), profile.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "介護者一覧の取得に失敗しました"})
			log.Printf("介護者一覧取得エラー: %v", err)
			return
		}

		responses := make([]accountResponse, 0, len(caregivers))
		for _, caregiver := range caregivers {
			responses = append(responses, toAccountResponse(caregiver))
		}

		c.JSON(http.StatusOK, responses)
	}
}

// handleListPatients は介護者が担当する患者一覧の取得を処理するハンドラを返す。
func (s *Server) handleListPatients() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := s.resolveAccount(c); !ok {
			return
		}

		caregiverID, err := strconv.ParseInt(c.Param("caregiver_id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "介護者IDが不正です"})
			return
		}

		if _, err := s.queries.GetAccountByID(c.Request.Context(), caregiverID); errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "介護者アカウントが見つかりません"})
			return
		} else if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "介護者アカウントの取得に失敗しました"})
			log.Printf("介護者アカウント取得エラー: %v", err)
			return
		}

		patients, err := s.queries.ListPatientsByCaregiver(c.Request.Context(), caregiverID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "患者一覧の取得に失敗しました"})
			log.Printf("患者一覧取得エラー: %v", err)
			return
		}

		responses := make([]patientInCareResponse, 0, len(patients))
		for _, p := range patients {
			responses = append(responses, patientInCareResponse{
				ID:          p.ID,
				AccountID:   p.AccountID,
				Name:        p.Name,
				Email:       p.Email,
				Cellphone:   p.Cellphone,
				Street:      p.Street,
				City:        p.City,
				State:       p.State,
				ZipCode:     p.ZipCode,
				DateOfBirth: p.DateOfBirth.Format("2006-01-02"),
			})
		}

		c.JSON(http.StatusOK, responses)
	}
}
