package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/joho/godotenv"

	"stock_visualizer/internal/app/di"
	"stock_visualizer/internal/app/router"
	cataloghandler "stock_visualizer/internal/feature/catalog/transport/handler"
	catalogusecase "stock_visualizer/internal/feature/catalog/usecase"
	reporthandler "stock_visualizer/internal/feature/report/transport/handler"
	reportusecase "stock_visualizer/internal/feature/report/usecase"
	"stock_visualizer/internal/platform/chart"
)

func main() {
	// .envを読み込む
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	// カタログ（APIトークン未設定はここで致命的エラー）
	catalog, err := di.NewCatalog("")
	if err != nil {
		log.Fatal(err)
	}

	// 起動時にキャッシュまたはAPIから銘柄リストをロード（同期・ブロッキング）
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	state := catalog.Initialize(ctx, false)
	cancel()
	if state == catalogusecase.StateDegraded {
		log.Println("[WARN] No symbols available. Check the API key or refresh via POST /api/refresh.")
	}

	// Usecase
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	reportUC := reportusecase.NewReportUsecase(catalog, rng)

	// Handler
	catalogH := cataloghandler.NewCatalogHandler(catalog)
	reportH := reporthandler.NewReportHandler(reportUC, catalog, chart.NewRenderer())

	// ルータ生成
	r := router.NewRouter(catalogH, reportH)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
