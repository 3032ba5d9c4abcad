package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/SketchShifter/blogly_backend/internal/config"
	"github.com/SketchShifter/blogly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// UserController ユーザーに関するコントローラー
type UserController struct {
	userService services.UserService
	storage     config.StorageConfig
}

// NewUserController UserControllerを作成
func NewUserController(userService services.UserService, storage config.StorageConfig) *UserController {
	return &UserController{
		userService: userService,
		storage:     storage,
	}
}

// userRequest ユーザーの作成・編集フォーム
type userRequest struct {
	FirstName string `form:"first_name" json:"first_name" binding:"required"`
	LastName  string `form:"last_name" json:"last_name" binding:"required"`
	ImageURL  string `form:"image_url" json:"image_url"`
}

// List ユーザー一覧を取得
func (c *UserController) List(ctx *gin.Context) {
	users, err := c.userService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// Create ユーザーを作成
func (c *UserController) Create(ctx *gin.Context) {
	var req userRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.userService.Create(req.FirstName, req.LastName, req.ImageURL)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, user)
}

// GetByID IDでユーザーを取得（投稿を含む）
func (c *UserController) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	user, err := c.userService.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// Update ユーザーを編集
func (c *UserController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var req userRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := c.userService.Update(id, req.FirstName, req.LastName, req.ImageURL)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// Delete ユーザーを削除
func (c *UserController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := c.userService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListPosts ユーザーの投稿一覧を取得
func (c *UserController) ListPosts(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	posts, err := c.userService.ListPosts(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// UploadImage プロフィール画像をアップロード
func (c *UserController) UploadImage(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	// ファイルを取得
	header, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "画像ファイルが必要です"})
		return
	}
	if err := c.validateImage(header); err != nil {
		respondError(ctx, err)
		return
	}

	file, err := header.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "画像ファイルを開けません"})
		return
	}
	defer file.Close()

	user, err := c.userService.UpdateImage(id, file, header.Filename)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// validateImage 画像ファイルの拡張子とサイズを確認
func (c *UserController) validateImage(header *multipart.FileHeader) error {
	if c.storage.MaxUploadSize > 0 && header.Size > c.storage.MaxUploadSize {
		return fmt.Errorf("%w: ファイルサイズが大きすぎます (最大 %d バイト)", services.ErrInvalidInput, c.storage.MaxUploadSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	for _, allowed := range c.storage.AllowedTypes {
		if ext == allowed {
			return nil
		}
	}
	return fmt.Errorf("%w: 許可されていないファイル形式です: %s", services.ErrInvalidInput, ext)
}
