// 見守りAPIサーバーのエントリポイント。
// 患者安全イベントの取り込みと介護者へのプッシュ通知配信を提供する。
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/mimamori-app/mimamori/internal/api"
)

func main() {
	// .envが存在しない環境（本番など）ではエラーを無視する
	if err := godotenv.Load(); err != nil {
		log.Printf(".envの読み込みをスキップ: %v", err)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	server, err := api.NewServer(port)
	if err != nil {
		log.Fatalf("見守りAPIサーバーの初期化に失敗: %v", err)
	}

	log.Printf("見守りAPIサービスを起動します: :%s", port)
	if err := server.Run(); err != nil {
		log.Fatalf("見守りAPIサービスの起動に失敗: %v", err)
	}
}
