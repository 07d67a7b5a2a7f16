package model

import "errors"

var (
	// ErrInvalidTransportMode 未定義の移動手段が指定された（同期的に呼び出し元へ返す検証エラー）
	ErrInvalidTransportMode = errors.New("無効な移動手段が指定されました")

	// ErrAccessibleRoutesNotSupported バリアフリールート生成は未対応
	ErrAccessibleRoutesNotSupported = errors.New("バリアフリールートの生成は未対応です")

	// ErrLocationNotFound 選択された屋内コードが座標に解決できなかった
	ErrLocationNotFound = errors.New("指定された場所が見つかりません")

	// ErrUnknownRouteVariant 未知のルートバリアントが渡された（プログラミングエラー）
	ErrUnknownRouteVariant = errors.New("未知のルートバリアントです")

	// ErrStaleResponse 応答が最新のリクエストに対するものではないため破棄された
	ErrStaleResponse = errors.New("古いリクエストへの応答のため破棄されました")
)
