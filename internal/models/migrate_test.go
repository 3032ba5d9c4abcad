package models_test

import (
	"testing"

	"github.com/SketchShifter/blogly_backend/internal/models"
	"github.com/SketchShifter/blogly_backend/internal/testutil"
)

func TestAutoMigrateIsIdempotent(t *testing.T) {
	db := testutil.NewTestDB(t)

	// 2回目以降も失敗しない
	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("2回目のマイグレーションに失敗しました: %v", err)
	}

	for _, table := range []string{"users", "posts", "tags", "posts_tags"} {
		if !db.Migrator().HasTable(table) {
			t.Errorf("テーブル %s が作成されていません", table)
		}
	}
}

func TestDropAll(t *testing.T) {
	db := testutil.NewTestDB(t)

	if err := models.DropAll(db); err != nil {
		t.Fatalf("テーブル削除に失敗しました: %v", err)
	}
	for _, table := range []string{"users", "posts", "tags", "posts_tags"} {
		if db.Migrator().HasTable(table) {
			t.Errorf("テーブル %s が残っています", table)
		}
	}
}
