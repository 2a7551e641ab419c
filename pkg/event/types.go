package event

import "fmt"

// Type は患者安全イベントの種別を表す。
type Type string

const (
	// TypeFall1 は深刻度1（軽度）の転倒検知を表す。
	TypeFall1 Type = "fall_1"
	// TypeFall2 は深刻度2（中度）の転倒検知を表す。
	TypeFall2 Type = "fall_2"
	// TypeFall3 は深刻度3（重度）の転倒検知を表す。
	TypeFall3 Type = "fall_3"
	// TypeNeedHelp は患者からの助けの要請を表す。
	TypeNeedHelp Type = "need_help"
	// TypeOK は患者が無事であることのチェックインを表す。
	TypeOK Type = "ok"
)

// Types は有効なイベント種別の一覧。
var Types = []Type{TypeFall1, TypeFall2, TypeFall3, TypeNeedHelp, TypeOK}

// IsValid は tがイベント種別の閉じた列挙に含まれるかを返す。
func (t Type) IsValid() bool {
	switch t {
	case TypeFall1, TypeFall2, TypeFall3, TypeNeedHelp, TypeOK:
		return true
	}
	return false
}

// String はイベント種別の文字列表現を返す。
func (t Type) String() string {
	return string(t)
}

// FromFallLevel は転倒の深刻度レベル（1〜3）を対応するイベント種別に変換する。
// 範囲外のレベルはエラーを返す。
func FromFallLevel(level int) (Type, error) {
	switch level {
	case 1:
		return TypeFall1, nil
	case 2:
		return TypeFall2, nil
	case 3:
		return TypeFall3, nil
	}
	return "", fmt.Errorf("転倒レベルが範囲外です: %d", level)
}
