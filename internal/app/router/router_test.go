package router_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"stock_visualizer/internal/app/router"
	catalogentity "stock_visualizer/internal/feature/catalog/domain/entity"
	cataloghandler "stock_visualizer/internal/feature/catalog/transport/handler"
	catalogusecase "stock_visualizer/internal/feature/catalog/usecase"
	reportentity "stock_visualizer/internal/feature/report/domain/entity"
	reporthandler "stock_visualizer/internal/feature/report/transport/handler"
)

type stubCatalogUsecase struct{}

func (stubCatalogUsecase) GetSymbols() []string { return []string{"AAPL"} }
func (stubCatalogUsecase) GetStockInfo(symbol string) (catalogentity.SymbolRecord, bool) {
	return catalogentity.SymbolRecord{}, false
}
func (stubCatalogUsecase) Refresh(ctx context.Context) catalogusecase.State {
	return catalogusecase.StateReady
}

type stubReportUsecase struct{}

func (stubReportUsecase) Select(ctx context.Context, symbol string) (reportentity.StockEntry, error) {
	return reportentity.StockEntry{Symbol: symbol}, nil
}

type stubRenderer struct{}

func (stubRenderer) Render(w io.Writer, symbol string, prices []float64) error { return nil }

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	catalog := stubCatalogUsecase{}
	catalogH := cataloghandler.NewCatalogHandler(catalog)
	reportH := reporthandler.NewReportHandler(stubReportUsecase{}, catalog, stubRenderer{})
	return router.NewRouter(catalogH, reportH)
}

func TestRouter_CORSHeaderOnAPIRequest(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/symbols", nil)
	req.Header.Set("Origin", "http://example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_CORSPreflight(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/refresh", nil)
	req.Header.Set("Origin", "http://example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{name: "health", method: http.MethodGet, path: "/healthz", want: http.StatusOK},
		{name: "symbol list", method: http.MethodGet, path: "/api/symbols", want: http.StatusOK},
		{name: "unknown symbol info", method: http.MethodGet, path: "/api/symbols/XXXX", want: http.StatusNotFound},
		{name: "refresh", method: http.MethodPost, path: "/api/refresh", want: http.StatusOK},
		{name: "report page", method: http.MethodGet, path: "/", want: http.StatusOK},
		{name: "stock entry", method: http.MethodGet, path: "/api/stocks/AAPL", want: http.StatusOK},
		{name: "stock chart", method: http.MethodGet, path: "/api/stocks/AAPL/chart.svg", want: http.StatusOK},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tt.method, tt.path, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}
