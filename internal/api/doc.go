// Package api は患者見守りサービスのHTTP APIを提供する。
//
// 患者安全イベント（転倒検知・助けの要請・無事のチェックイン）を
// ウェアラブル端末チャネルと認証済みユーザーチャネルの2経路から受け付け、
// イベントを永続化した上で、対象患者に紐づく介護者へのプッシュ通知配信を
// バックグラウンドで起動する。イベントの受理とレスポンスは通知配信の
// 成否に依存しない。
//
// 付随して、アカウント登録、端末リンク、プッシュトークン登録、
// 介護者リンクの管理、イベント一覧の取得を行うエンドポイントを持つ。
package api
