package services

import (
	"time"
)

// Pinger 接続確認ができる依存先
type Pinger interface {
	Ping() error
}

// HealthStatus ヘルスステータス
type HealthStatus struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Uptime    string `json:"uptime"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

// HealthService ヘルスチェックに関するサービスインターフェース
type HealthService interface {
	GetStatus() *HealthStatus
}

// healthService HealthServiceの実装
type healthService struct {
	startTime time.Time
	db        Pinger
	version   string
}

// NewHealthService HealthServiceを作成
func NewHealthService(db Pinger, version string) HealthService {
	return &healthService{
		startTime: time.Now(),
		db:        db,
		version:   version,
	}
}

// GetStatus サービスのステータスを取得
func (s *healthService) GetStatus() *HealthStatus {
	status := &HealthStatus{
		Status:    "ok",
		Database:  "ok",
		Uptime:    time.Since(s.startTime).String(),
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   s.version,
	}

	if err := s.db.Ping(); err != nil {
		status.Status = "degraded"
		status.Database = err.Error()
	}

	return status
}
