package handler

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"stock_visualizer/internal/feature/report/domain/entity"
	"stock_visualizer/internal/feature/report/transport/http/dto"
	"stock_visualizer/internal/feature/report/usecase"

	"github.com/gin-gonic/gin"
)

//go:embed view.html
var viewHTML string

var viewTmpl = template.Must(template.New("view").Parse(viewHTML))

// ReportUsecase は株式レポートに関するユースケースのインターフェースです。
// Following Go convention: interfaces are defined by the consumer (handler), not the provider (usecase).
type ReportUsecase interface {
	Select(ctx context.Context, symbol string) (entity.StockEntry, error)
}

// SymbolLister はドロップダウンに表示する銘柄リストを提供します。
type SymbolLister interface {
	GetSymbols() []string
}

// ChartRenderer は価格系列をSVGチャートに描画します。
type ChartRenderer interface {
	Render(w io.Writer, symbol string, prices []float64) error
}

// ReportHandler はレポートビューに関するHTTPリクエストを処理します。
type ReportHandler struct {
	uc      ReportUsecase
	symbols SymbolLister
	chart   ChartRenderer
}

// NewReportHandler は新しい ReportHandler を作成します。
func NewReportHandler(uc ReportUsecase, symbols SymbolLister, chart ChartRenderer) *ReportHandler {
	return &ReportHandler{uc: uc, symbols: symbols, chart: chart}
}

// Page はドロップダウン・情報ラベル・チャートを持つレポートビューを返します。
func (h *ReportHandler) Page(c *gin.Context) {
	data := struct{ Symbols []string }{h.symbols.GetSymbols()}
	var buf bytes.Buffer
	if err := viewTmpl.Execute(&buf, data); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// Stock は選択された銘柄のレポートエントリを返します。
// 未取得の銘柄はライブクォートを取得してレポートに追加します（fetch-and-add）。
// クォート取得に失敗した場合は502を返し、レポートは変更されません。
func (h *ReportHandler) Stock(c *gin.Context) {
	symbol := c.Param("symbol")
	e, err := h.uc.Select(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toResponse(e))
}

// ChartSVG は選択された銘柄の30日チャートをSVGで返します。
func (h *ReportHandler) ChartSVG(c *gin.Context) {
	symbol := c.Param("symbol")
	e, err := h.uc.Select(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	var buf bytes.Buffer
	if err := h.chart.Render(&buf, e.Symbol, e.History); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "image/svg+xml", buf.Bytes())
}

// toResponse はドメインエンティティをレスポンスDTOに変換します。
func toResponse(e entity.StockEntry) dto.StockResponse {
	info := fmt.Sprintf("Price: %s  |  Change: %s  |  Volume: %s  |  Market Cap: %s",
		usecase.FormatCurrency(e.Price), usecase.FormatChange(e.ChangePct),
		usecase.FormatVolume(e.Volume), e.MarketCap)
	return dto.StockResponse{
		Symbol:    e.Symbol,
		Price:     e.Price,
		ChangePct: e.ChangePct,
		Volume:    e.Volume,
		MarketCap: e.MarketCap,
		Info:      info,
		History:   e.History,
	}
}
