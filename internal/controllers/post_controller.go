package controllers

import (
	"net/http"
	"strconv"

	"github.com/SketchShifter/blogly_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PostController 投稿に関するコントローラー
type PostController struct {
	postService services.PostService
	recentLimit int
}

// NewPostController PostControllerを作成
func NewPostController(postService services.PostService, recentLimit int) *PostController {
	return &PostController{
		postService: postService,
		recentLimit: recentLimit,
	}
}

// postRequest 投稿の作成・編集フォーム
type postRequest struct {
	Title   string `form:"title" json:"title" binding:"required"`
	Content string `form:"content" json:"content" binding:"required"`
	TagIDs  []uint `form:"tag_ids" json:"tag_ids"`
}

// tagsRequest 投稿のタグ設定
type tagsRequest struct {
	TagIDs []uint `form:"tag_ids" json:"tag_ids"`
}

// List 新着投稿を取得（?limit=0 で全件）
func (c *PostController) List(ctx *gin.Context) {
	limit := c.recentLimit
	if limitStr := ctx.Query("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l < 0 {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "無効なlimitです"})
			return
		}
		limit = l
	}

	posts, err := c.postService.ListRecent(limit)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, posts)
}

// Create ユーザーの投稿を作成（パスの:idはユーザーID）
func (c *PostController) Create(ctx *gin.Context) {
	userID, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var req postRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := c.postService.Create(userID, req.Title, req.Content, req.TagIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, post)
}

// GetByID IDで投稿を取得
func (c *PostController) GetByID(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	post, err := c.postService.GetByID(id)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Update 投稿を編集
func (c *PostController) Update(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var req postRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := c.postService.Update(id, req.Title, req.Content, req.TagIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}

// Delete 投稿を削除
func (c *PostController) Delete(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	if err := c.postService.Delete(id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// SetTags 投稿のタグを置き換える
func (c *PostController) SetTags(ctx *gin.Context) {
	id, err := parseID(ctx)
	if err != nil {
		respondError(ctx, err)
		return
	}

	var req tagsRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	post, err := c.postService.SetTags(id, req.TagIDs)
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, post)
}
