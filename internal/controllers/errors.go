package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/SketchShifter/blogly_backend/internal/repository"
	"github.com/SketchShifter/blogly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// errInvalidID パスパラメータのIDが数値でない
var errInvalidID = errors.New("無効なIDです")

// parseID パスパラメータ:idを解析
func parseID(ctx *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errInvalidID
	}
	return uint(id), nil
}

// respondError エラーの種類に応じたステータスコードで応答
func respondError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errInvalidID), errors.Is(err, services.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, repository.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, repository.ErrConstraintViolation):
		status = http.StatusConflict
	case errors.Is(err, repository.ErrForeignKeyViolation):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, services.ErrImageUploadDisabled):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError {
		log.Printf("リクエストの処理に失敗しました: %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
		ctx.JSON(status, gin.H{"error": "サーバーエラーが発生しました"})
		return
	}

	ctx.JSON(status, gin.H{"error": err.Error()})
}
