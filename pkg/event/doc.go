// Package event は患者安全イベントの種別を定義する。
//
// イベントは転倒（3段階の深刻度）、助けの要請、無事のチェックインの
// 5種類からなる閉じた列挙型であり、取り込みハンドラのバリデーションと
// イベント永続化の両方で使用する。
package event
