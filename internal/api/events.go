package api

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apidb "github.com/mimamori-app/mimamori/internal/api/db"
	"github.com/mimamori-app/mimamori/pkg/event"
)

// deviceEventRequest はウェアラブル端末からのイベント報告リクエストのJSON構造。
type deviceEventRequest struct {
	// FallLevel は転倒の深刻度（1〜3）。
	FallLevel int `json:"fall_level" binding:"required,min=1,max=3"`
}

// userEventRequest は認証済みユーザーからのイベント報告リクエストのJSON構造。
type userEventRequest struct {
	// Type はイベント種別。
	Type string `json:"type" binding:"required"`
}

// eventPatientResponse はイベント一覧に含める患者情報のJSONレスポンス構造。
type eventPatientResponse struct {
	// Name は患者の表示名。
	Name string `json:"name"`
	// Cellphone は患者の携帯電話番号。
	Cellphone string `json:"cellphone"`
	// Street は住所（番地）。プロフィール未作成の場合は空文字列。
	Street string `json:"street"`
	// City は住所（市区町村）。プロフィール未作成の場合は空文字列。
	City string `json:"city"`
	// State は住所（都道府県・州）。プロフィール未作成の場合は空文字列。
	State string `json:"state"`
	// ZipCode は郵便番号。プロフィール未作成の場合は空文字列。
	ZipCode string `json:"zip_code"`
}

// eventResponse はイベントのJSONレスポンス構造。
type eventResponse struct {
	// ID はイベントの一意識別子。
	ID int64 `json:"id"`
	// AccountID は対象患者のアカウントID。
	AccountID int64 `json:"account_id"`
	// Type はイベント種別。
	Type string `json:"type"`
	// Date は記録日時。
	Date string `json:"date"`
	// Patient は対象患者の情報。
	Patient eventPatientResponse `json:"patient"`
}

// handleCreateDeviceEvent はウェアラブル端末からのイベント取り込みを処理するハンドラを返す。
// 端末識別子からリンク先アカウントを解決し、転倒レベルをイベント種別に変換して記録する。
// 記録が成功した時点で204を返し、介護者への通知はバックグラウンドで配信する。
func (s *Server) handleCreateDeviceEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		deviceID := strings.TrimSpace(c.Param("device_id"))
		if deviceID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "端末識別子を指定してください"})
			return
		}

		var req deviceEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		eventType, err := event.FromFallLevel(req.FallLevel)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "転倒レベルは1〜3で指定してください"})
			return
		}

		account, err := s.queries.GetAccountByDevice(c.Request.Context(), sql.NullString{String: deviceID, Valid: true})
		if errors.Is(err, sql.ErrNoRows) {
			c.JSON(http.StatusNotFound, gin.H{"error": "この端末にリンクされたアカウントがありません"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "アカウントの取得に失敗しました"})
			log.Printf("端末アカウント解決エラー: %v", err)
			return
		}

		if _, err := s.queries.CreateEvent(c.Request.Context(), apidb.CreateEventParams{
			AccountID: account.ID,
			EventType: eventType.String(),
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "イベントの記録に失敗しました"})
			log.Printf("イベント記録エラー: %v", err)
			return
		}

		// レスポンスは通知配信の完了を待たない
		s.dispatcher.Dispatch(account.ID, account.Name)

		c.Status(http.StatusNoContent)
	}
}

// handleCreateEvent は認証済みユーザーからのイベント取り込みを処理するハンドラを返す。
// 記録が成功した時点で204を返し、介護者への通知はバックグラウンドで配信する。
func (s *Server) handleCreateEvent() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := s.resolveAccount(c)
		if !ok {
			return
		}

		var req userEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("リクエストが不正です: %v", err)})
			return
		}

		eventType := event.Type(req.Type)
		if !eventType.IsValid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("イベント種別が不正です: %s", req.Type)})
			return
		}

		if _, err := s.queries.CreateEvent(c.Request.Context(), apidb.CreateEventParams{
			AccountID: account.ID,
			EventType: eventType.String(),
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "イベントの記録に失敗しました"})
			log.Printf("イベント記録エラー: %v", err)
			return
		}

		// レスポンスは通知配信の完了を待たない
		s.dispatcher.Dispatch(account.ID, account.Name)

		c.Status(http.StatusNoContent)
	}
}

// handleListEvents はイベント一覧の取得を処理するハンドラを返す。
// 自身のイベントに加え、介護者としてリンクされている患者のイベントも
// 対象に含め、記録日時の新しい順に返す。
func (s *Server) handleListEvents() gin.HandlerFunc {
	return func(c *gin.Context) {
		account, ok := s.resolveAccount(c)
		if !ok {
			return
		}

		caredIDs, err := s.queries.ListCaredAccountIDs(c.Request.Context(), account.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "イベント一覧の取得に失敗しました"})
			log.Printf("担当患者一覧取得エラー: %v", err)
			return
		}

		accountIDs := []int64{account.ID}
		seen := map[int64]bool{account.ID: true}
		for _, id := range caredIDs {
			if !seen[id] {
				seen[id] = true
				accountIDs = append(accountIDs, id)
			}
		}

		rows, err := s.queries.ListEventsForAccounts(c.Request.Context(), accountIDs)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "イベント一覧の取得に失敗しました"})
			log.Printf("イベント一覧取得エラー: %v", err)
			return
		}

		responses := make([]eventResponse, 0, len(rows))
		for _, row := range rows {
			responses = append(responses, eventResponse{
				ID:        row.ID,
				AccountID: row.AccountID,
				Type:      row.EventType,
				Date:      row.CreatedAt.Format("2006-01-02T15:04:05Z"),
				Patient: eventPatientResponse{
					Name:      row.Name,
					Cellphone: row.Cellphone,
					Street:    row.Street.String,
					City:      row.City.String,
					State:     row.State.String,
					ZipCode:   row.ZipCode.String,
				},
			})
		}

		c.JSON(http.StatusOK, responses)
	}
}
