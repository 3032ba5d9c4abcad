package config

import (
	"testing"
	"time"

	"gorm.io/gorm/logger"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"SERVER_PORT", "RECENT_POST_LIMIT", "DB_DRIVER", "DB_PORT", "DB_NAME",
		"DB_AUTO_MIGRATE", "DB_MAX_OPEN_CONNS", "MAX_UPLOAD_SIZE", "CLOUDINARY_CLOUD_NAME",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Server.Port: got %q", cfg.Server.Port)
	}
	if cfg.Server.RecentPostLimit != 5 {
		t.Errorf("Server.RecentPostLimit: got %d", cfg.Server.RecentPostLimit)
	}
	if cfg.Database.Driver != DriverMySQL {
		t.Errorf("Database.Driver: got %q", cfg.Database.Driver)
	}
	if cfg.Database.DBName != "blogly" {
		t.Errorf("Database.DBName: got %q", cfg.Database.DBName)
	}
	if !cfg.Database.AutoMigrate {
		t.Error("Database.AutoMigrate はデフォルトで有効であるべき")
	}
	if cfg.Database.MaxOpenConns != 100 {
		t.Errorf("Database.MaxOpenConns: got %d", cfg.Database.MaxOpenConns)
	}
	if cfg.Database.ConnMaxLifetime != time.Hour {
		t.Errorf("Database.ConnMaxLifetime: got %v", cfg.Database.ConnMaxLifetime)
	}
	if cfg.Storage.MaxUploadSize != 5*1024*1024 {
		t.Errorf("Storage.MaxUploadSize: got %d", cfg.Storage.MaxUploadSize)
	}
	if cfg.Cloudinary.Enabled() {
		t.Error("Cloudinary は未設定なら無効であるべき")
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_AUTO_MIGRATE", "false")
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("CLOUDINARY_CLOUD_NAME", "demo")
	t.Setenv("CLOUDINARY_API_KEY", "key")
	t.Setenv("CLOUDINARY_API_SECRET", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("設定の読み込みに失敗しました: %v", err)
	}

	if cfg.Server.Port != "9000" {
		t.Errorf("Server.Port: got %q", cfg.Server.Port)
	}
	if cfg.Database.Driver != DriverPostgres {
		t.Errorf("Database.Driver: got %q", cfg.Database.Driver)
	}
	if cfg.Database.AutoMigrate {
		t.Error("DB_AUTO_MIGRATE=false が反映されていません")
	}
	// 数値に変換できない場合はデフォルト値
	if cfg.Database.MaxOpenConns != 100 {
		t.Errorf("Database.MaxOpenConns: got %d", cfg.Database.MaxOpenConns)
	}
	if !cfg.Cloudinary.Enabled() {
		t.Error("Cloudinary が有効になっていません")
	}
}

func TestDialector(t *testing.T) {
	tests := []struct {
		driver string
		want   string
	}{
		{driver: "", want: "mysql"},
		{driver: "mysql", want: "mysql"},
		{driver: "postgres", want: "postgres"},
		{driver: "SQLite", want: "sqlite"},
	}

	for _, tt := range tests {
		d, err := Dialector(&DatabaseConfig{Driver: tt.driver, Path: "test.db"})
		if err != nil {
			t.Errorf("driver=%q: 予期しないエラー: %v", tt.driver, err)
			continue
		}
		if d.Name() != tt.want {
			t.Errorf("driver=%q: got %q, want %q", tt.driver, d.Name(), tt.want)
		}
	}

	if _, err := Dialector(&DatabaseConfig{Driver: "oracle"}); err == nil {
		t.Error("未対応のドライバーはエラーになるべき")
	}
}

func TestSQLiteDSN(t *testing.T) {
	if got := SQLiteDSN("blogly.db"); got != "blogly.db?_foreign_keys=on" {
		t.Errorf("SQLiteDSN: got %q", got)
	}
	if got := SQLiteDSN("file:test?mode=memory"); got != "file:test?mode=memory&_foreign_keys=on" {
		t.Errorf("SQLiteDSN: got %q", got)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := map[string]logger.LogLevel{
		"silent": logger.Silent,
		"ERROR":  logger.Error,
		"warn":   logger.Warn,
		"info":   logger.Info,
		"":       logger.Info,
	}
	for in, want := range tests {
		if got := parseLogLevel(in); got != want {
			t.Errorf("parseLogLevel(%q): got %v, want %v", in, got, want)
		}
	}
}
