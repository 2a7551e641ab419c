package pushclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultEndpoint はExpo Push APIの送信エンドポイント。
const DefaultEndpoint = "https://exp.host/--/api/v2/push/send"

// Client はプッシュ配信プロバイダへのHTTPクライアント。
// 低速なプロバイダが無制限に送信処理を滞留させないよう、送信ごとの
// タイムアウトを持つ。
type Client struct {
	// httpClient は内部で使用するHTTPクライアント。
	httpClient *http.Client
	// endpoint はプッシュ送信先のURL。
	endpoint string
}

// Message は1件のプッシュ通知を表す。
type Message struct {
	// To は宛先のプッシュトークン。
	To string `json:"to"`
	// Title は通知のタイトル。
	Title string `json:"title"`
	// Body は通知の本文。
	Body string `json:"body"`
}

// pushResponse はプッシュプロバイダのレスポンス構造。
type pushResponse struct {
	// Data は送信チケットの状態。
	Data struct {
		// Status は "ok" または "error"。
		Status string `json:"status"`
		// Message はエラー時の詳細メッセージ。
		Message string `json:"message"`
	} `json:"data"`
}

// New は新しいプッシュ送信クライアントを生成する。
// endpointが空文字列の場合はDefaultEndpointを使用する。
func New(endpoint string) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 5 * time.Second,
		},
		endpoint: endpoint,
	}
}

// Send は1件のプッシュ通知を送信する。
// ネットワークエラー、非2xxレスポンス、プロバイダのerrorステータスは
// すべてエラーとして返す。失敗はその試行において終局的であり、
// リトライ可能性の判断は行わない。
func (c *Client) Send(ctx context.Context, msg Message) error {
	jsonBody, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("プッシュ通知のシリアライズに失敗: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonBody))
	if err != nil {
		return fmt.Errorf("HTTPリクエストの作成に失敗: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("プッシュ通知の送信に失敗: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("プッシュプロバイダがエラーを返却: status=%d, body=%s", resp.StatusCode, string(respBody))
	}

	var result pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		// ボディが期待形式でなくても2xxであれば送信自体は受理されている
		return nil
	}
	if result.Data.Status == "error" {
		return fmt.Errorf("プッシュ配信チケットがエラー: %s", result.Data.Message)
	}
	return nil
}
