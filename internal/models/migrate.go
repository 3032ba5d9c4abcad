package models

import (
	"fmt"

	"gorm.io/gorm"
)

// SetupJoinTables 多対多リレーションの中間テーブルとしてPostTagを登録
func SetupJoinTables(db *gorm.DB) error {
	if err := db.SetupJoinTable(&Post{}, "Tags", &PostTag{}); err != nil {
		return fmt.Errorf("posts_tagsの設定に失敗しました: %w", err)
	}
	if err := db.SetupJoinTable(&Tag{}, "Posts", &PostTag{}); err != nil {
		return fmt.Errorf("posts_tagsの設定に失敗しました: %w", err)
	}
	return nil
}

// AutoMigrate テーブルを作成（既に存在する場合は何もしない）
func AutoMigrate(db *gorm.DB) error {
	if err := SetupJoinTables(db); err != nil {
		return err
	}
	return db.AutoMigrate(
		&User{},
		&Tag{},
		&Post{},
		&PostTag{},
	)
}

// DropAll テーブルを削除（依存関係の逆順）
func DropAll(db *gorm.DB) error {
	return db.Migrator().DropTable(
		&PostTag{},
		&Post{},
		&Tag{},
		&User{},
	)
}
