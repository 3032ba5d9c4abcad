// Package testutil テスト用のインメモリデータベース
package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/SketchShifter/blogly_backend/internal/config"
	"github.com/SketchShifter/blogly_backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var dbSeq int64

// NewTestDB テストごとに独立したSQLiteのインメモリデータベースを作成
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := config.SQLiteDSN(fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, atomic.AddInt64(&dbSeq, 1)))

	db, err := gorm.Open(sqlite.Open(dsn), config.GormConfig("silent"))
	if err != nil {
		t.Fatalf("テスト用データベースの作成に失敗しました: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("SQLDBインスタンス取得に失敗しました: %v", err)
	}
	// インメモリDBは接続ごとに別物になるため1本に固定
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("マイグレーションに失敗しました: %v", err)
	}

	return db
}
