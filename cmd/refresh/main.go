package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/joho/godotenv"

	"stock_visualizer/internal/app/di"
	catalogusecase "stock_visualizer/internal/feature/catalog/usecase"
	reportusecase "stock_visualizer/internal/feature/report/usecase"
)

// レポートに載せる銘柄数（リスト先頭から）
const reportSymbols = 5

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	catalog, err := di.NewCatalog("")
	if err != nil {
		log.Fatal(err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	// キャッシュの有無に関わらず必ず再取得してキャッシュを上書きする
	if state := catalog.Initialize(ctx, true); state == catalogusecase.StateDegraded {
		log.Fatal("refresh failed: symbol list unavailable")
	}

	symbols := catalog.GetSymbols()
	log.Printf("refresh ok: %d symbols cached", len(symbols))

	// リスト先頭の数銘柄のライブクォートを取得してコンソールレポートを出す
	preview := symbols
	if len(preview) > reportSymbols {
		preview = preview[:reportSymbols]
	}
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	report := reportusecase.NewReportUsecase(catalog, rng)
	for _, s := range preview {
		if _, err := report.Select(ctx, s); err != nil {
			log.Printf("[WARN] skipping %s: %v", s, err)
		}
	}

	if err := report.WriteTextReport(os.Stdout); err != nil {
		log.Fatal(err)
	}
}
