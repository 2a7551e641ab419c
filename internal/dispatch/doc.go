// Package dispatch は介護者へのプッシュ通知のファンアウトを提供する。
//
// イベントの永続化が完了した後、対象患者に紐づく介護者を解決し、
// プッシュトークンを持つ全員へ並行してベストエフォートで通知を送信する。
// 個々の送信失敗は他の宛先への送信に影響せず、取り込み呼び出し側へも
// 一切伝播しない。配信処理はリクエストのライフサイクルから切り離された
// バックグラウンドタスクとして実行される。
package dispatch
