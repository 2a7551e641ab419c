package api

import (
	"database/sql"
	"fmt"
)

// スキーマ定義。db/api/schema.sql と同期すること。
const schema = `
CREATE TABLE IF NOT EXISTS accounts (
    -- アカウントの一意識別子
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    -- 外部資格識別子（JWTのuidクレームに対応）
    uid TEXT NOT NULL UNIQUE,
    -- メールアドレス
    email TEXT NOT NULL UNIQUE,
    -- 表示名
    name TEXT NOT NULL,
    -- 携帯電話番号
    cellphone TEXT NOT NULL,
    -- プッシュ通知トークン（未登録の場合はNULL）
    push_token TEXT,
    -- ウェアラブル端末の識別子（未リンクの場合はNULL、リンク時は全アカウントで一意）
    device TEXT UNIQUE,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 更新日時
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS patient_profiles (
    -- プロフィールの一意識別子
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    -- 所有するアカウントのID（1アカウントにつき高々1プロフィール）
    account_id INTEGER NOT NULL UNIQUE REFERENCES accounts(id) ON DELETE CASCADE,
    -- 住所（番地）
    street TEXT NOT NULL,
    -- 住所（市区町村）
    city TEXT NOT NULL,
    -- 住所（都道府県・州）
    state TEXT NOT NULL,
    -- 郵便番号
    zip_code TEXT NOT NULL,
    -- 生年月日
    date_of_birth DATETIME NOT NULL,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 更新日時
    updated_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE TABLE IF NOT EXISTS caregiver_links (
    -- リンクの一意識別子
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    -- 患者プロフィールのID
    patient_profile_id INTEGER NOT NULL REFERENCES patient_profiles(id) ON DELETE CASCADE,
    -- 介護者アカウントのID
    caregiver_account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    -- 作成日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now')),
    -- 同一の患者・介護者ペアの重複リンクを禁止する
    UNIQUE (patient_profile_id, caregiver_account_id)
);

CREATE TABLE IF NOT EXISTS events (
    -- イベントの一意識別子
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    -- 対象患者のアカウントID
    account_id INTEGER NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
    -- イベント種別（fall_1 / fall_2 / fall_3 / need_help / ok）
    event_type TEXT NOT NULL,
    -- サーバー側で付与される記録日時
    created_at DATETIME NOT NULL DEFAULT (datetime('now'))
);

-- アカウント別のイベント一覧取得を高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_events_account_created
    ON events(account_id, created_at);

-- 介護者からの逆引きを高速化するインデックス。
CREATE INDEX IF NOT EXISTS idx_caregiver_links_caregiver
    ON caregiver_links(caregiver_account_id);
`

// initSchema はSQLiteデータベースにスキーマを適用する。
func initSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("スキーマの適用に失敗: %w", err)
	}
	return nil
}
