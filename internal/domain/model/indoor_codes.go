package model

import "strings"

// IndoorCodeEntry 屋内コード（例: H815, H961-3）と座標の対応1件分
type IndoorCodeEntry struct {
	Code        string      `json:"code"`
	Coordinates Coordinates `json:"coordinates"`
}

// IndoorCodeIndex 屋内コードから座標への索引。
// エントリの宣言順を保持し、プレフィックス検索はその順で走査される
type IndoorCodeIndex struct {
	entries []IndoorCodeEntry
	byCode  map[string]Coordinates
}

// NewIndoorCodeIndex 宣言順のエントリ列から索引を作成する
func NewIndoorCodeIndex(entries []IndoorCodeEntry) *IndoorCodeIndex {
	byCode := make(map[string]Coordinates, len(entries))
	for _, entry := range entries {
		byCode[strings.ToUpper(entry.Code)] = entry.Coordinates
	}
	return &IndoorCodeIndex{entries: entries, byCode: byCode}
}

// PrefixMatch プレフィックスに一致するコードを宣言順で最大limit件返す。
// 関連度によるランキングは行わない
func (i *IndoorCodeIndex) PrefixMatch(prefix string, limit int) []string {
	normalized := strings.ToUpper(prefix)
	var matches []string
	for _, entry := range i.entries {
		if strings.HasPrefix(strings.ToUpper(entry.Code), normalized) {
			matches = append(matches, entry.Code)
			if len(matches) >= limit {
				break
			}
		}
	}
	return matches
}

// Resolve コードを座標に解決する
func (i *IndoorCodeIndex) Resolve(code string) (Coordinates, bool) {
	coords, ok := i.byCode[strings.ToUpper(code)]
	return coords, ok
}

// Len 索引に登録されたコード数を返す
func (i *IndoorCodeIndex) Len() int {
	return len(i.entries)
}
