package helper

import (
	"regexp"
	"strings"
)

// IndoorCodeShape 屋内コードの形状分類
type IndoorCodeShape string

const (
	// IndoorCodeShapeNone どちらの形状にも当てはまらない
	IndoorCodeShapeNone IndoorCodeShape = "none"
	// IndoorCodeShapeRoom 教室形式（例: H815）
	IndoorCodeShapeRoom IndoorCodeShape = "room"
	// IndoorCodeShapeOffice オフィス形式（例: H961-1）
	IndoorCodeShapeOffice IndoorCodeShape = "office"
)

// 教室形式: 先頭の英字列の直後に数字列が続く
var roomShapePattern = regexp.MustCompile(`^[A-Z]+[0-9]+$`)

// オフィス形式: 教室形式にハイフンと数字列が続く
var officeShapePattern = regexp.MustCompile(`^[A-Z]+[0-9]+-[0-9]+$`)

// NormalizeIndoorCode 照合用にコードを正規化する（前後空白の除去と大文字化）
func NormalizeIndoorCode(query string) string {
	return strings.ToUpper(strings.TrimSpace(query))
}

// ClassifyIndoorCode 正規化済みクエリを屋内コードの形状に分類する。
// 2つの形状は互いに排他で、どちらにも一致しない場合はNoneを返す
func ClassifyIndoorCode(normalized string) IndoorCodeShape {
	if roomShapePattern.MatchString(normalized) {
		return IndoorCodeShapeRoom
	}
	if officeShapePattern.MatchString(normalized) {
		return IndoorCodeShapeOffice
	}
	return IndoorCodeShapeNone
}
