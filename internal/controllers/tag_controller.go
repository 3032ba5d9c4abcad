package controllers

import (
	"net/http"

	"github.com/SketchShifter/blogly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// TagController タグに関するコントローラー
type TagController struct {
	tagService services.TagService
}

// NewTagController TagControllerを作成
func NewTagController(tagService services.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

// tagRequest タグの作成・編集フォーム
type tagRequest struct {
	Name    string `form:"name" json:"name" binding:"required"`
	PostIDs []uint `form:"post_ids" json:"post_ids"`
}

// List タグ一覧を取得
func (c *TagController) List(ctx *gin.Context) {
	tags, err := c.tagService.List()
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tags)
}

// Create タグを作成
func (c *TagController) Create(ctx *gin.Context) {
	var req tagRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := c.tagService.Create(req.Name, req.PostIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, tag)
}

// GetByID IDでタグを取得（投稿を含む）
func (c *TagController) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	tag, err := c.tagService.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tag)
}

// Update タグを編集
func (c *TagController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var req tagRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := c.tagService.Update(id, req.Name, req.PostIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, tag)
}

// Delete タグを削除
func (c *TagController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := c.tagService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
