package services

import (
	"errors"
	"fmt"
	"io"
	"log"
	"path"
	"strings"

	"github.com/SketchShifter/blogly_backend/internal/models"
	"github.com/SketchShifter/blogly_backend/internal/repository"
)

// ErrImageUploadDisabled 画像アップロード先が設定されていない
var ErrImageUploadDisabled = errors.New("画像アップロードは設定されていません")

// UserService ユーザーに関するサービスインターフェース
type UserService interface {
	List() ([]models.User, error)
	GetByID(id uint) (*models.User, error)
	Create(firstName, lastName, imageURL string) (*models.User, error)
	Update(id uint, firstName, lastName, imageURL string) (*models.User, error)
	Delete(id uint) error
	ListPosts(userID uint) ([]models.Post, error)
	UpdateImage(id uint, file io.Reader, fileName string) (*models.User, error)
}

// userService UserServiceの実装
type userService struct {
	repos        *repository.Repositories
	imageService ImageService
}

// NewUserService UserServiceを作成
// imageServiceがnilの場合、画像アップロードは無効
func NewUserService(repos *repository.Repositories, imageService ImageService) UserService {
	return &userService{
		repos:        repos,
		imageService: imageService,
	}
}

// List ユーザー一覧を取得
func (s *userService) List() ([]models.User, error) {
	return s.repos.Users.List()
}

// GetByID IDでユーザーを取得
func (s *userService) GetByID(id uint) (*models.User, error) {
	return s.repos.Users.FindByID(id)
}

// Create 新しいユーザーを作成
func (s *userService) Create(firstName, lastName, imageURL string) (*models.User, error) {
	user, err := newUser(firstName, lastName, imageURL)
	if err != nil {
		return nil, err
	}

	if err := s.repos.Users.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Update ユーザー情報を更新（指定されたフィールドはすべて上書き）
func (s *userService) Update(id uint, firstName, lastName, imageURL string) (*models.User, error) {
	values, err := newUser(firstName, lastName, imageURL)
	if err != nil {
		return nil, err
	}

	var updated *models.User
	err = s.repos.Transaction(func(repos *repository.Repositories) error {
		user, err := repos.Users.FindByID(id)
		if err != nil {
			return err
		}

		user.FirstName = values.FirstName
		user.LastName = values.LastName
		user.ImageURL = values.ImageURL

		if err := repos.Users.Update(user); err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete ユーザーを削除（投稿も削除される）
func (s *userService) Delete(id uint) error {
	return s.repos.Users.Delete(id)
}

// ListPosts ユーザーの投稿一覧を取得
func (s *userService) ListPosts(userID uint) ([]models.Post, error) {
	var posts []models.Post
	err := s.repos.Transaction(func(repos *repository.Repositories) error {
		// ユーザーが存在するか確認
		if _, err := repos.Users.FindByID(userID); err != nil {
			return err
		}

		var err error
		posts, err = repos.Posts.ListByUser(userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdateImage プロフィール画像をアップロードして画像URLを更新
func (s *userService) UpdateImage(id uint, file io.Reader, fileName string) (*models.User, error) {
	if s.imageService == nil {
		return nil, ErrImageUploadDisabled
	}

	user, err := s.repos.Users.FindByID(id)
	if err != nil {
		return nil, err
	}

	publicID, url, err := s.imageService.UploadImage(file, fmt.Sprintf("user_%d_%s", id, baseName(fileName)))
	if err != nil {
		return nil, err
	}
	log.Printf("プロフィール画像をアップロードしました: userID=%d url=%s", id, url)

	user.ImageURL = url
	if err := s.repos.Users.Update(user); err != nil {
		// 保存できなかった画像は削除しておく
		if delErr := s.imageService.DeleteImage(publicID); delErr != nil {
			log.Printf("アップロード済み画像の削除に失敗しました: %v", delErr)
		}
		return nil, err
	}

	return user, nil
}

// newUser 入力値を検証してユーザーを組み立てる
func newUser(firstName, lastName, imageURL string) (*models.User, error) {
	first, err := required(firstName, "名")
	if err != nil {
		return nil, err
	}
	last, err := required(lastName, "姓")
	if err != nil {
		return nil, err
	}

	return &models.User{
		FirstName: first,
		LastName:  last,
		ImageURL:  strings.TrimSpace(imageURL),
	}, nil
}

// baseName 拡張子を除いたファイル名
func baseName(fileName string) string {
	name := path.Base(fileName)
	return strings.TrimSuffix(name, path.Ext(name))
}
