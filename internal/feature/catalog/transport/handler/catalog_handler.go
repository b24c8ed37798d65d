package handler

import (
	"context"
	"net/http"

	"stock_visualizer/internal/feature/catalog/domain/entity"
	"stock_visualizer/internal/feature/catalog/transport/http/dto"
	"stock_visualizer/internal/feature/catalog/usecase"

	"github.com/gin-gonic/gin"
)

// CatalogUsecase は銘柄カタログに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type CatalogUsecase interface {
	GetSymbols() []string
	GetStockInfo(symbol string) (entity.SymbolRecord, bool)
	Refresh(ctx context.Context) usecase.State
}

// CatalogHandler は銘柄カタログに関するHTTPリクエストを処理します。
type CatalogHandler struct {
	uc CatalogUsecase
}

// NewCatalogHandler は新しい CatalogHandler を作成します。
func NewCatalogHandler(uc CatalogUsecase) *CatalogHandler {
	return &CatalogHandler{uc: uc}
}

// List はメモリ上の全銘柄コードをAPIレスポンス順のまま返します。
func (h *CatalogHandler) List(c *gin.Context) {
	symbols := h.uc.GetSymbols()
	if symbols == nil {
		symbols = []string{}
	}
	c.JSON(http.StatusOK, symbols)
}

// Info は単一銘柄の静的メタデータを返します。
// 未知の銘柄は404を返します（エラーではなく「存在しない」を表現）。
func (h *CatalogHandler) Info(c *gin.Context) {
	code := c.Param("code")
	rec, ok := h.uc.GetStockInfo(code)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown symbol"})
		return
	}
	c.JSON(http.StatusOK, dto.SymbolInfo{
		Code:     rec.Code,
		Name:     rec.Name,
		Country:  rec.Country,
		Exchange: rec.Exchange,
		Currency: rec.Currency,
		Type:     rec.Type,
		Isin:     rec.Isin,
	})
}

// Refresh は銘柄リストを強制的に再取得し、キャッシュを上書きします。
// 上流APIが落ちている場合もエラーにはせず、degraded状態を返します。
func (h *CatalogHandler) Refresh(c *gin.Context) {
	state := h.uc.Refresh(c.Request.Context())
	c.JSON(http.StatusOK, dto.RefreshResponse{
		State:   string(state),
		Symbols: len(h.uc.GetSymbols()),
	})
}
