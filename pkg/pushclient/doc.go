// Package pushclient はプッシュ配信プロバイダへの送信クライアントを提供する。
//
// Expo Push API互換のエンドポイントに対してJSON形式で通知を送信する。
// 配信はベストエフォートであり、失敗は呼び出し側でログに記録して破棄する
// ことを前提としている。リトライや配信確認は行わない。
package pushclient
