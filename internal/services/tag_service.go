package services

import (
	"github.com/SketchShifter/blogly_backend/internal/models"
	"github.com/SketchShifter/blogly_backend/internal/repository"
)

// TagService タグに関するサービスインターフェース
type TagService interface {
	List() ([]models.Tag, error)
	GetByID(id uint) (*models.Tag, error)
	Create(name string, postIDs []uint) (*models.Tag, error)
	Update(id uint, name string, postIDs []uint) (*models.Tag, error)
	Delete(id uint) error
}

// tagService TagServiceの実装
type tagService struct {
	repos *repository.Repositories
}

// NewTagService TagServiceを作成
func NewTagService(repos *repository.Repositories) TagService {
	return &tagService{repos: repos}
}

// List タグ一覧を取得
func (s *tagService) List() ([]models.Tag, error) {
	return s.repos.Tags.List()
}

// GetByID IDでタグを取得
func (s *tagService) GetByID(id uint) (*models.Tag, error) {
	return s.repos.Tags.FindByID(id)
}

// Create タグを作成し、指定された投稿に付ける
func (s *tagService) Create(name string, postIDs []uint) (*models.Tag, error) {
	name, err := required(name, "タグ名")
	if err != nil {
		return nil, err
	}

	var created *models.Tag
	err = s.repos.Transaction(func(repos *repository.Repositories) error {
		tag := &models.Tag{Name: name}
		if err := repos.Tags.Create(tag); err != nil {
			return err
		}
		if err := repos.Tags.SetPosts(tag.ID, postIDs); err != nil {
			return err
		}

		created, err = repos.Tags.FindByID(tag.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update タグ名と付いている投稿を置き換える
func (s *tagService) Update(id uint, name string, postIDs []uint) (*models.Tag, error) {
	name, err := required(name, "タグ名")
	if err != nil {
		return nil, err
	}

	var updated *models.Tag
	err = s.repos.Transaction(func(repos *repository.Repositories) error {
		tag, err := repos.Tags.FindByID(id)
		if err != nil {
			return err
		}

		tag.Name = name
		if err := repos.Tags.Update(tag); err != nil {
			return err
		}
		if err := repos.Tags.SetPosts(tag.ID, postIDs); err != nil {
			return err
		}

		updated, err = repos.Tags.FindByID(tag.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete タグを削除（投稿は残る）
func (s *tagService) Delete(id uint) error {
	return s.repos.Tags.Delete(id)
}
