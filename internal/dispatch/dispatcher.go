package dispatch

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"sync"
	"time"

	apidb "github.com/mimamori-app/mimamori/internal/api/db"
	"github.com/mimamori-app/mimamori/pkg/pushclient"
)

// alertTitle は介護者へ送るプッシュ通知の固定タイトル。
const alertTitle = "みまもりアラート"

// sendTimeout は1件のプッシュ送信に許容する最大時間。
// 低速・到達不能なプロバイダが送信ワーカーを無制限に滞留させないための上限。
const sendTimeout = 5 * time.Second

// maxConcurrentDispatches は同時に実行する配信タスク数の上限。
const maxConcurrentDispatches = 8

// Dispatcher は介護者へのプッシュ通知配信を管理する。
// 配信はリクエストのライフサイクルから切り離して実行され、
// 配信の成否がイベント書き込みやHTTPレスポンスに影響することはない。
type Dispatcher struct {
	// queries は介護者グラフ参照用のDBクエリ。
	queries *apidb.Queries
	// push はプッシュ配信プロバイダへのクライアント。
	push *pushclient.Client
	// sem は同時配信数を制限するセマフォ。
	sem chan struct{}
	// wg は実行中の配信タスクを追跡する。シャットダウン時のドレインに使用する。
	wg sync.WaitGroup
}

// New は新しいDispatcherを生成する。
func New(queries *apidb.Queries, push *pushclient.Client) *Dispatcher {
	return &Dispatcher{
		queries: queries,
		push:    push,
		sem:     make(chan struct{}, maxConcurrentDispatches),
	}
}

// Dispatch は対象患者の介護者への通知配信をバックグラウンドで開始する。
// 呼び出しは即座に返り、配信の完了を待たない。リクエストスコープの
// キャンセルに巻き込まれないよう、配信は独立したコンテキストで実行する。
func (d *Dispatcher) Dispatch(accountID int64, displayName string) {
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.sem <- struct{}{}
		defer func() { <-d.sem }()

		d.notify(context.Background(), accountID, displayName)
	}()
}

// Wait は実行中のすべての配信タスクの完了を待つ。
// グレースフルシャットダウン時とテストから呼び出される。
func (d *Dispatcher) Wait() {
	d.wg.Wait()
}

// notify は1回の配信を実行する。
// 患者プロフィールを持たないアカウントは介護者ゼロとして正常終了する。
// 宛先ごとの失敗はログに記録した上で破棄し、他の宛先への送信は継続する。
func (d *Dispatcher) notify(ctx context.Context, accountID int64, displayName string) {
	profile, err := d.queries.GetPatientProfileByAccountID(ctx, accountID)
	if errors.Is(err, sql.ErrNoRows) {
		// 患者として構成されていないアカウントには通知対象がいない
		return
	}
	if err != nil {
		log.Printf("[Dispatch] 患者プロフィールの取得に失敗: account_id=%d, error=%v", accountID, err)
		return
	}

	caregivers, err := d.queries.ListCaregiversByPatientProfile(ctx, profile.ID)
	if err != nil {
		log.Printf("[Dispatch] 介護者一覧の取得に失敗: account_id=%d, error=%v", accountID, err)
		return
	}

	var wg sync.WaitGroup
	for _, caregiver := range caregivers {
		if !caregiver.PushToken.Valid || caregiver.PushToken.String == "" {
			continue
		}

		wg.Add(1)
		go func(caregiverID int64, token string) {
			defer wg.Done()

			sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
			defer cancel()

			msg := pushclient.Message{
				To:    token,
				Title: alertTitle,
				Body:  displayName,
			}
			if err := d.push.Send(sendCtx, msg); err != nil {
				log.Printf("[Dispatch] プッシュ通知の送信に失敗: caregiver_id=%d, error=%v", caregiverID, err)
			}
		}(caregiver.ID, caregiver.PushToken.String)
	}
	wg.Wait()
}
