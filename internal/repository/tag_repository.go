package repository

import (
	"github.com/SketchShifter/blogly_backend/internal/models"

	"gorm.io/gorm"
)

// TagRepository タグに関するデータベース操作を行うインターフェース
type TagRepository interface {
	Create(tag *models.Tag) error
	FindByID(id uint) (*models.Tag, error)
	List() ([]models.Tag, error)
	Update(tag *models.Tag) error
	Delete(id uint) error
	SetPosts(tagID uint, postIDs []uint) error
}

// tagRepository TagRepositoryの実装
type tagRepository struct {
	db *gorm.DB
}

// NewTagRepository TagRepositoryを作成
func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

// Create 新しいタグを作成
func (r *tagRepository) Create(tag *models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureUnique(tx, &models.Tag{}, "name", tag.Name, 0); err != nil {
			return err
		}
		return translateError(tx.Omit("Posts").Create(tag).Error)
	})
}

// FindByID IDでタグを検索（投稿はタイトル順）
func (r *tagRepository) FindByID(id uint) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.Preload("Posts", func(db *gorm.DB) *gorm.DB {
		return db.Order("title ASC")
	}).First(&tag, id).Error; err != nil {
		return nil, translateError(err)
	}
	if tag.Posts == nil {
		tag.Posts = []models.Post{}
	}
	return &tag, nil
}

// List タグ一覧を取得
func (r *tagRepository) List() ([]models.Tag, error) {
	tags := []models.Tag{}
	if err := r.db.Order("name ASC").Find(&tags).Error; err != nil {
		return nil, err
	}
	return tags, nil
}

// Update タグ名を更新
func (r *tagRepository) Update(tag *models.Tag) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Tag{}, tag.ID); err != nil {
			return err
		}
		if err := ensureUnique(tx, &models.Tag{}, "name", tag.Name, tag.ID); err != nil {
			return err
		}
		return translateError(tx.Model(&models.Tag{ID: tag.ID}).Update("name", tag.Name).Error)
	})
}

// Delete タグを削除（タグ付けのみ削除し、投稿は残す）
func (r *tagRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("tag_id = ?", id).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Tag{}, id)
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// SetPosts タグを付ける投稿をpostIDsで置き換える（存在しない投稿IDは無視）
func (r *tagRepository) SetPosts(tagID uint, postIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.Tag{}, tagID); err != nil {
			return err
		}
		return replaceLinks(tx, tagPostsLink, tagID, postIDs)
	})
}
