package pushclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

// TestNew はクライアント生成を検証する。
func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("エンドポイントが空の場合はデフォルトを使用すること", func(t *testing.T) {
		t.Parallel()

		c := New("")
		if c.endpoint != DefaultEndpoint {
			t.Errorf("endpoint = %q, want %q", c.endpoint, DefaultEndpoint)
		}
	})

	t.Run("指定したエンドポイントを使用すること", func(t *testing.T) {
		t.Parallel()

		c := New("http://localhost:9999/push")
		if c.endpoint != "http://localhost:9999/push" {
			t.Errorf("endpoint = %q, want %q", c.endpoint, "http://localhost:9999/push")
		}
	})
}

// TestSend はプッシュ通知の送信を検証する。
func TestSend(t *testing.T) {
	t.Parallel()

	t.Run("正常に送信できること", func(t *testing.T) {
		t.Parallel()

		var received Message
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
				t.Errorf("リクエストボディのデコードに失敗: %v", err)
			}
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"data":{"status":"ok"}}`)
		}))
		t.Cleanup(server.Close)

		c := New(server.URL)
		msg := Message{To: "tok-a", Title: "アラート", Body: "山田太郎"}
		if err := c.Send(t.Context(), msg); err != nil {
			t.Fatalf("Send()でエラーが発生: %v", err)
		}

		if received.To != "tok-a" {
			t.Errorf("To = %q, want %q", received.To, "tok-a")
		}
		if received.Title != "アラート" {
			t.Errorf("Title = %q, want %q", received.Title, "アラート")
		}
		if received.Body != "山田太郎" {
			t.Errorf("Body = %q, want %q", received.Body, "山田太郎")
		}
	})

	t.Run("非2xxレスポンスはエラーになること", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		t.Cleanup(server.Close)

		c := New(server.URL)
		if err := c.Send(t.Context(), Message{To: "tok-a"}); err == nil {
			t.Error("Send()がエラーを返さなかった")
		}
	})

	t.Run("配信チケットがerrorの場合はエラーになること", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			fmt.Fprint(w, `{"data":{"status":"error","message":"DeviceNotRegistered"}}`)
		}))
		t.Cleanup(server.Close)

		c := New(server.URL)
		if err := c.Send(t.Context(), Message{To: "tok-gone"}); err == nil {
			t.Error("Send()がエラーを返さなかった")
		}
	})

	t.Run("コンテキストのキャンセルでエラーになること", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			fmt.Fprint(w, `{"data":{"status":"ok"}}`)
		}))
		t.Cleanup(server.Close)

		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		c := New(server.URL)
		if err := c.Send(ctx, Message{To: "tok-slow"}); err == nil {
			t.Error("Send()がエラーを返さなかった")
		}
	})
}
