package routes

import (
	"log"
	"net/http"

	"github.com/SketchShifter/blogly_backend/internal/config"
	"github.com/SketchShifter/blogly_backend/internal/controllers"
	"github.com/SketchShifter/blogly_backend/internal/middlewares"
	"github.com/SketchShifter/blogly_backend/internal/repository"
	"github.com/SketchShifter/blogly_backend/internal/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version アプリケーションバージョン
const Version = "1.0.0"

// SetupRouter ルーターを設定
// imageServiceがnilの場合は、設定に応じてCloudinaryを使う
func SetupRouter(cfg *config.Config, db *gorm.DB, imageService services.ImageService) *gin.Engine {
	// Ginルーターを作成
	r := gin.Default()

	// ミドルウェアを設定
	r.Use(middlewares.ErrorMiddleware())
	r.Use(middlewares.CORSMiddleware())

	// リポジトリを作成
	repos := repository.NewRepositories(db)

	// Cloudinaryサービスを作成（未設定なら画像アップロードは無効）
	if imageService == nil && cfg.Cloudinary.Enabled() {
		cloudinaryService, err := services.NewCloudinaryService(cfg.Cloudinary)
		if err != nil {
			log.Printf("Cloudinaryサービスの初期化に失敗しました。画像アップロードは無効です: %v", err)
		} else {
			imageService = cloudinaryService
		}
	}

	// サービスを作成
	userService := services.NewUserService(repos, imageService)
	postService := services.NewPostService(repos)
	tagService := services.NewTagService(repos)
	healthService := services.NewHealthService(repos, Version)

	// コントローラーを作成
	userController := controllers.NewUserController(userService, cfg.Storage)
	postController := controllers.NewPostController(postService, cfg.Server.RecentPostLimit)
	tagController := controllers.NewTagController(tagService)
	healthController := controllers.NewHealthController(healthService)

	// トップはユーザー一覧へ
	r.GET("/", func(ctx *gin.Context) {
		ctx.Redirect(http.StatusFound, "/api/v1/users")
	})

	// APIグループを作成
	api := r.Group("/api/v1")
	{
		// ヘルスチェックルート
		api.GET("/health", healthController.Check)

		// ユーザールート
		users := api.Group("/users")
		{
			users.GET("", userController.List)
			users.POST("", userController.Create)
			users.GET("/:id", userController.GetByID)
			users.PUT("/:id", userController.Update)
			users.DELETE("/:id", userController.Delete)
			users.POST("/:id/image", userController.UploadImage)

			// ユーザーの投稿
			users.GET("/:id/posts", userController.ListPosts)
			users.POST("/:id/posts", postController.Create)
		}

		// 投稿ルート
		posts := api.Group("/posts")
		{
			posts.GET("", postController.List)
			posts.GET("/:id", postController.GetByID)
			posts.PUT("/:id", postController.Update)
			posts.DELETE("/:id", postController.Delete)
			posts.PUT("/:id/tags", postController.SetTags)
		}

		// タグルート
		tags := api.Group("/tags")
		{
			tags.GET("", tagController.List)
			tags.POST("", tagController.Create)
			tags.GET("/:id", tagController.GetByID)
			tags.PUT("/:id", tagController.Update)
			tags.DELETE("/:id", tagController.Delete)
		}
	}

	return r
}
