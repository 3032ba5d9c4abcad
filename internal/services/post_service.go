package services

import (
	"github.com/SketchShifter/blogly_backend/internal/models"
	"github.com/SketchShifter/blogly_backend/internal/repository"
)

// PostService 投稿に関するサービスインターフェース
type PostService interface {
	ListRecent(limit int) ([]models.Post, error)
	GetByID(id uint) (*models.Post, error)
	Create(userID uint, title, content string, tagIDs []uint) (*models.Post, error)
	Update(id uint, title, content string, tagIDs []uint) (*models.Post, error)
	Delete(id uint) error
	SetTags(id uint, tagIDs []uint) (*models.Post, error)
}

// postService PostServiceの実装
type postService struct {
	repos *repository.Repositories
}

// NewPostService PostServiceを作成
func NewPostService(repos *repository.Repositories) PostService {
	return &postService{repos: repos}
}

// ListRecent 新着投稿を取得（limitが0以下なら全件）
func (s *postService) ListRecent(limit int) ([]models.Post, error) {
	return s.repos.Posts.List(limit)
}

// GetByID IDで投稿を取得
func (s *postService) GetByID(id uint) (*models.Post, error) {
	return s.repos.Posts.FindByID(id)
}

// Create ユーザーの投稿を作成し、タグを設定
func (s *postService) Create(userID uint, title, content string, tagIDs []uint) (*models.Post, error) {
	title, content, err := validatePost(title, content)
	if err != nil {
		return nil, err
	}

	var created *models.Post
	err = s.repos.Transaction(func(repos *repository.Repositories) error {
		// ユーザーが存在するか確認
		if _, err := repos.Users.FindByID(userID); err != nil {
			return err
		}

		post := &models.Post{
			Title:   title,
			Content: content,
			UserID:  userID,
		}
		if err := repos.Posts.Create(post); err != nil {
			return err
		}
		if err := repos.Posts.SetTags(post.ID, tagIDs); err != nil {
			return err
		}

		created, err = repos.Posts.FindByID(post.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// Update 投稿を更新し、タグを置き換える
func (s *postService) Update(id uint, title, content string, tagIDs []uint) (*models.Post, error) {
	title, content, err := validatePost(title, content)
	if err != nil {
		return nil, err
	}

	var updated *models.Post
	err = s.repos.Transaction(func(repos *repository.Repositories) error {
		post, err := repos.Posts.FindByID(id)
		if err != nil {
			return err
		}

		post.Title = title
		post.Content = content
		if err := repos.Posts.Update(post); err != nil {
			return err
		}
		if err := repos.Posts.SetTags(post.ID, tagIDs); err != nil {
			return err
		}

		updated, err = repos.Posts.FindByID(post.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// Delete 投稿を削除
func (s *postService) Delete(id uint) error {
	return s.repos.Posts.Delete(id)
}

// SetTags 投稿のタグを置き換える
func (s *postService) SetTags(id uint, tagIDs []uint) (*models.Post, error) {
	var post *models.Post
	err := s.repos.Transaction(func(repos *repository.Repositories) error {
		if err := repos.Posts.SetTags(id, tagIDs); err != nil {
			return err
		}

		var err error
		post, err = repos.Posts.FindByID(id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return post, nil
}

func validatePost(title, content string) (string, string, error) {
	title, err := required(title, "タイトル")
	if err != nil {
		return "", "", err
	}
	content, err = required(content, "本文")
	if err != nil {
		return "", "", err
	}
	return title, content, nil
}
