// Package filecache はcatalogフィーチャーのJSONファイルキャッシュ実装を提供します。
package filecache

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"stock_visualizer/internal/feature/catalog/domain/entity"
	"stock_visualizer/internal/feature/catalog/usecase"
)

// DefaultPath はキャッシュファイルの固定の相対パスです。
const DefaultPath = "stock_symbols_cache.json"

// timeLayout はcached_atのフォーマットです（ISO-8601、Pythonのisoformat互換）。
const timeLayout = "2006-01-02T15:04:05"

// SymbolCache はCacheRepositoryインターフェースのJSONファイル実装です。
type SymbolCache struct {
	path string
	now  func() time.Time
}

var _ usecase.CacheRepository = (*SymbolCache)(nil)

// NewSymbolCache は指定されたパスでSymbolCacheの新しいインスタンスを生成します。
// pathが空の場合はDefaultPathを使用します。
func NewSymbolCache(path string) *SymbolCache {
	if path == "" {
		path = DefaultPath
	}
	return &SymbolCache{path: path, now: time.Now}
}

// Load はキャッシュファイルを読み込みます。
// ファイルが存在しない、読み込めない、またはJSONとして不正な場合はエラーを返します。
// 呼び出し側（usecase）はエラーを「キャッシュなし」として扱います。
func (c *SymbolCache) Load() (entity.CacheFile, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		return entity.CacheFile{}, fmt.Errorf("read cache %s: %w", c.path, err)
	}
	var cf entity.CacheFile
	if err := json.Unmarshal(b, &cf); err != nil {
		return entity.CacheFile{}, fmt.Errorf("parse cache %s: %w", c.path, err)
	}
	if cf.Stocks == nil {
		cf.Stocks = map[string]entity.SymbolRecord{}
	}
	return cf, nil
}

// Save はマッピングとシンボル列の全体を、新しく生成したタイムスタンプと共に書き込みます。
// 既存のファイルは丸ごと上書きされます。
//
// 書き込みは意図的にtruncate-then-write（一時ファイル+renameなし）。
// 途中でクラッシュすると壊れたファイルが残るが、次回のLoadが失敗して
// 再フェッチが走るため自己修復する。
func (c *SymbolCache) Save(stocks map[string]entity.SymbolRecord, symbols []string) error {
	cf := entity.CacheFile{
		Stocks:   stocks,
		Symbols:  symbols,
		CachedAt: c.now().Format(timeLayout),
	}
	b, err := json.MarshalIndent(cf, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal cache: %w", err)
	}
	if err := os.WriteFile(c.path, b, 0o644); err != nil {
		return fmt.Errorf("write cache %s: %w", c.path, err)
	}
	return nil
}
