package router

import (
	cataloghandler "stock_visualizer/internal/feature/catalog/transport/handler"
	reporthandler "stock_visualizer/internal/feature/report/transport/handler"
	"stock_visualizer/internal/platform/http/handler"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(catalog *cataloghandler.CatalogHandler, report *reporthandler.ReportHandler) *gin.Engine {
	r := gin.Default()

	// ginはルート登録時にハンドラチェーンを確定するため、
	// ミドルウェアはルートより先に登録する
	r.Use(cors.Default())

	// 導通確認用
	r.GET("/healthz", handler.Health)

	// レポートビュー（ドロップダウン + 情報ラベル + チャート）
	r.GET("/", report.Page)

	api := r.Group("/api")
	{
		// カタログ（静的メタデータ、メモリから返す）
		api.GET("/symbols", catalog.List)
		api.GET("/symbols/:code", catalog.Info)
		// 銘柄リストの強制再取得とキャッシュ上書き
		api.POST("/refresh", catalog.Refresh)

		// レポートエントリ（初回選択時にライブクォートを取得して追加）
		api.GET("/stocks/:symbol", report.Stock)
		api.GET("/stocks/:symbol/chart.svg", report.ChartSVG)
	}

	return r
}
