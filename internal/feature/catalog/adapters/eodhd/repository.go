package eodhd

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"stock_visualizer/internal/feature/catalog/adapters/eodhd/dto"
	"stock_visualizer/internal/feature/catalog/domain/entity"
	"stock_visualizer/internal/feature/catalog/usecase"
	"stock_visualizer/internal/shared/ratelimiter"
)

// ExchangeClient はEODHD外部APIから銘柄データを取得するExchangeRepository実装です。
type ExchangeClient struct {
	cfg     Config
	client  *http.Client
	limiter ratelimiter.RateLimiterInterface
}

// ExchangeClientがExchangeRepositoryを実装していることをコンパイル時に検証します。
var _ usecase.ExchangeRepository = (*ExchangeClient)(nil)

// NewExchangeClient は指定された設定とHTTPクライアントでExchangeClientの新しいインスタンスを生成します。
// limiterはEODHDのレートリミットを超えないよう、リクエストごとに適用されます。
func NewExchangeClient(cfg Config, client *http.Client, limiter ratelimiter.RateLimiterInterface) *ExchangeClient {
	return &ExchangeClient{cfg: cfg, client: client, limiter: limiter}
}

// ListSymbols は取引所の全銘柄リストを取得します。
// レスポンス順をそのまま保持したスライスを返します。
func (e *ExchangeClient) ListSymbols(ctx context.Context) ([]entity.SymbolRecord, error) {
	u := fmt.Sprintf("%s/exchange-symbol-list/%s?%s", e.cfg.BaseURL, e.cfg.ExchangeCode, e.query().Encode())

	var body []dto.ExchangeSymbol
	if err := e.getJSON(ctx, u, &body); err != nil {
		return nil, err
	}

	records := make([]entity.SymbolRecord, 0, len(body))
	for _, s := range body {
		records = append(records, entity.SymbolRecord{
			Code:     s.Code,
			Name:     s.Name,
			Country:  s.Country,
			Exchange: s.Exchange,
			Currency: s.Currency,
			Type:     s.Type,
			Isin:     s.Isin,
		})
	}
	return records, nil
}

// GetQuote は単一銘柄のリアルタイム価格スナップショットを取得します。
// 銘柄リストのキャッシュとは独立した、都度のAPI呼び出しです。
func (e *ExchangeClient) GetQuote(ctx context.Context, symbol string) (entity.Quote, error) {
	u := fmt.Sprintf("%s/real-time/%s.%s?%s", e.cfg.BaseURL, symbol, e.cfg.ExchangeCode, e.query().Encode())

	var body dto.QuoteResponse
	if err := e.getJSON(ctx, u, &body); err != nil {
		return entity.Quote{}, err
	}

	// エンドポイントによってフィールド名が change_pct / percent_change で揺れる
	pct := body.ChangePct
	if pct == 0 {
		pct = body.PercentChange
	}
	return entity.Quote{
		Symbol:    symbol,
		Close:     float64(body.Close),
		ChangePct: float64(pct),
		Volume:    int64(body.Volume),
	}, nil
}

// getJSON はGETリクエストを実行し、JSONレスポンスをoutにデコードします。
func (e *ExchangeClient) getJSON(ctx context.Context, u string, out any) error {
	e.limiter.WaitIfNeeded()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	res, err := e.client.Do(req)
	if err != nil {
		return err
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("eodhd http %d", res.StatusCode)
	}
	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("decode eodhd response: %w", err)
	}
	return nil
}

// query はすべてのエンドポイントに共通のクエリパラメータを返します。
func (e *ExchangeClient) query() url.Values {
	q := url.Values{}
	q.Set("api_token", e.cfg.APIToken)
	q.Set("fmt", "json")
	return q
}
