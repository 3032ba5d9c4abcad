package repository

import (
	"fmt"

	"github.com/SketchShifter/blogly_backend/internal/models"

	"gorm.io/gorm"
)

// PostRepository 投稿に関するデータベース操作を行うインターフェース
type PostRepository interface {
	Create(post *models.Post) error
	FindByID(id uint) (*models.Post, error)
	List(limit int) ([]models.Post, error)
	ListByUser(userID uint) ([]models.Post, error)
	Update(post *models.Post) error
	Delete(id uint) error
	SetTags(postID uint, tagIDs []uint) error
}

// postRepository PostRepositoryの実装
type postRepository struct {
	db *gorm.DB
}

// NewPostRepository PostRepositoryを作成
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// Create 新しい投稿を作成
// タグは SetTags で別途設定する
func (r *postRepository) Create(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := r.checkWrite(tx, post); err != nil {
			return err
		}
		return translateError(tx.Omit("User", "Tags").Create(post).Error)
	})
}

// FindByID IDで投稿を検索（ユーザーとタグを含む）
func (r *postRepository) FindByID(id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.
		Preload("User").
		Preload("Tags", orderByName).
		First(&post, id).Error; err != nil {
		return nil, translateError(err)
	}
	ensureTags(&post)
	return &post, nil
}

// List 投稿一覧を新着順に取得（limitが0以下なら全件）
func (r *postRepository) List(limit int) ([]models.Post, error) {
	posts := []models.Post{}
	query := r.db.Preload("User").Preload("Tags", orderByName).Order("created_at DESC").Order("id DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&posts).Error; err != nil {
		return nil, err
	}
	for i := range posts {
		ensureTags(&posts[i])
	}
	return posts, nil
}

// ListByUser ユーザーの投稿一覧をタイトル順に取得
func (r *postRepository) ListByUser(userID uint) ([]models.Post, error) {
	posts := []models.Post{}
	if err := r.db.Preload("Tags", orderByName).Where("user_id = ?", userID).Order("title ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	for i := range posts {
		ensureTags(&posts[i])
	}
	return posts, nil
}

// Update 投稿を更新
func (r *postRepository) Update(post *models.Post) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Post{}, post.ID); err != nil {
			return err
		}
		if err := r.checkWrite(tx, post); err != nil {
			return err
		}
		return translateError(tx.Model(&models.Post{ID: post.ID}).Updates(map[string]interface{}{
			"title":   post.Title,
			"content": post.Content,
			"user_id": post.UserID,
		}).Error)
	})
}

// Delete 投稿を削除（タグ付けのみ削除し、タグ自体は残す）
func (r *postRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Post{}, id)
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SetTags 投稿のタグをtagIDsで置き換える（存在しないタグIDは無視）
func (r *postRepository) SetTags(postID uint, tagIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Post{}, postID); err != nil {
			return err
		}
		return replaceLinks(tx, postTagsLink, postID, tagIDs)
	})
}

// checkWrite 作成・更新前に外部キーと一意制約を確認
func (r *postRepository) checkWrite(tx *gorm.DB, post *models.Post) error {
	ok, err := exists(tx, &models.User{}, post.UserID)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("%w: ユーザーID=%d", ErrForeignKeyViolation, post.UserID)
	}
	return ensureUnique(tx, &models.Post{}, "title", post.Title, post.ID)
}

// orderByName タグを名前順にプリロード
func orderByName(db *gorm.DB) *gorm.DB {
	return db.Order("name ASC")
}

// ensureTags タグがない投稿も空配列で返す
func ensureTags(post *models.Post) {
	if post.Tags == nil {
		post.Tags = []models.Tag{}
	}
}
