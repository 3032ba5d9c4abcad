package repository

import (
	"github.com/SketchShifter/blogly_backend/internal/models"

	"gorm.io/gorm"
)

// UserRepository ユーザーに関するデータベース操作を行うインターフェース
type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	List() ([]models.User, error)
	Update(user *models.User) error
	Delete(id uint) error
}

// userRepository UserRepositoryの実装
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository UserRepositoryを作成
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create 新しいユーザーを作成
func (r *userRepository) Create(user *models.User) error {
	return translateError(r.db.Omit("Posts").Create(user).Error)
}

// FindByID IDでユーザーを検索（投稿はタイトル順）
func (r *userRepository) FindByID(id uint) (*models.User, error) {
	var user models.User
	if err := r.db.Preload("Posts", func(db *gorm.DB) *gorm.DB {
		return db.Order("title ASC")
	}).First(&user, id).Error; err != nil {
		return nil, translateError(err)
	}
	if user.Posts == nil {
		user.Posts = []models.Post{}
	}
	return &user, nil
}

// List ユーザー一覧を取得（姓・名の昇順）
func (r *userRepository) List() ([]models.User, error) {
	users := []models.User{}
	if err := r.db.Order("last_name ASC").Order("first_name ASC").Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update ユーザー情報を更新
// MySQLのRowsAffectedは変更行数なので、存在確認は先に行う
func (r *userRepository) Update(user *models.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := ensureExists(tx, &models.User{}, user.ID); err != nil {
			return err
		}
		return translateError(tx.Model(&models.User{ID: user.ID}).Updates(map[string]interface{}{
			"first_name": user.FirstName,
			"last_name":  user.LastName,
			"image_url":  user.ImageURL,
		}).Error)
	})
}

// Delete ユーザーを削除
// 所有する投稿とその投稿のタグ付けも同じトランザクションで削除する
func (r *userRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		postIDs := tx.Model(&models.Post{}).Select("id").Where("user_id = ?", id)

		if err := tx.Where("post_id IN (?)", postIDs).Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Post{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return translateError(result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}
