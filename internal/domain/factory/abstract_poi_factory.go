package factory

// AbstractPOIFactory 屋外・屋内POIファクトリを生成する抽象ファクトリ。
// ステートレスで、呼び出しごとに新しいPOIグラフを返す以外の副作用を持たない
type AbstractPOIFactory struct{}

// NewAbstractPOIFactory 新しいAbstractPOIFactoryインスタンスを作成する
func NewAbstractPOIFactory() *AbstractPOIFactory {
	return &AbstractPOIFactory{}
}

// CreateOutdoorPOIFactory 屋外POIファクトリを作成する
func (f *AbstractPOIFactory) CreateOutdoorPOIFactory() *OutdoorPOIFactory {
	return NewOutdoorPOIFactory()
}

// CreateIndoorPOIFactory 屋内POIファクトリを作成する
func (f *AbstractPOIFactory) CreateIndoorPOIFactory() *IndoorPOIFactory {
	return NewIndoorPOIFactory()
}
