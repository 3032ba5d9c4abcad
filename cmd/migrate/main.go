package main

import (
	"fmt"
	"log"
	"os"

	"github.com/SketchShifter/blogly_backend/internal/config"
	"github.com/SketchShifter/blogly_backend/internal/mock"
	"github.com/SketchShifter/blogly_backend/internal/models"
	"github.com/SketchShifter/blogly_backend/internal/repository"
)

func main() {
	// 引数をチェック
	if len(os.Args) < 2 {
		log.Fatal("使用方法: migrate [up|down|seed]")
	}

	// 設定をロード
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	// データベース接続
	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("データベース接続に失敗しました: %v", err)
	}

	command := os.Args[1]

	switch command {
	case "up":
		// マイグレーションを実行
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("マイグレーションに失敗しました: %v", err)
		}
		fmt.Println("マイグレーションが成功しました")

	case "down":
		// テーブルを削除（逆順）
		if err := models.DropAll(db); err != nil {
			log.Fatalf("テーブル削除に失敗しました: %v", err)
		}
		fmt.Println("テーブルの削除が成功しました")

	case "seed":
		// テーブルを作成してからモックデータを投入
		if err := models.AutoMigrate(db); err != nil {
			log.Fatalf("マイグレーションに失敗しました: %v", err)
		}
		seeded, err := mock.Seed(repository.NewRepositories(db))
		if err != nil {
			log.Fatalf("モックデータの投入に失敗しました: %v", err)
		}
		if seeded {
			fmt.Println("モックデータの投入が成功しました")
		}

	default:
		log.Fatalf("不明なコマンドです: %s", command)
	}
}
