package mock

import (
	"log"

	"github.com/SketchShifter/blogly_backend/internal/models"
	"github.com/SketchShifter/blogly_backend/internal/repository"
)

// モックユーザー
var Users = []models.User{
	{FirstName: "Alan", LastName: "Alda"},
	{FirstName: "Joel", LastName: "Burton", ImageURL: "https://via.placeholder.com/150"},
	{FirstName: "Jane", LastName: "Smith"},
}

// モックタグ
var Tags = []models.Tag{
	{Name: "Fun"},
	{Name: "Even More"},
	{Name: "Bloop"},
	{Name: "Zope"},
}

// PostSeed モック投稿（ユーザーとタグは添字で指定）
type PostSeed struct {
	User    int
	Title   string
	Content string
	Tags    []int
}

// モック投稿
var Posts = []PostSeed{
	{User: 0, Title: "First Post!", Content: "Oh, hai.", Tags: []int{0, 2}},
	{User: 0, Title: "Yet Another Post", Content: "Eat more kale.", Tags: []int{1}},
	{User: 1, Title: "Flasky Goodness", Content: "Gin is also good.", Tags: []int{0, 1, 3}},
	{User: 2, Title: "Quiet Days", Content: "Nothing much happened today."},
}

// Seed モックデータを投入（既にユーザーが存在する場合は何もしない）
func Seed(repos *repository.Repositories) (bool, error) {
	existing, err := repos.Users.List()
	if err != nil {
		return false, err
	}
	if len(existing) > 0 {
		log.Printf("ユーザーが既に %d 件存在するためモックデータの投入をスキップします", len(existing))
		return false, nil
	}

	err = repos.Transaction(func(tx *repository.Repositories) error {
		userIDs := make([]uint, len(Users))
		for i := range Users {
			user := Users[i]
			if err := tx.Users.Create(&user); err != nil {
				return err
			}
			userIDs[i] = user.ID
		}

		tagIDs := make([]uint, len(Tags))
		for i := range Tags {
			tag := Tags[i]
			if err := tx.Tags.Create(&tag); err != nil {
				return err
			}
			tagIDs[i] = tag.ID
		}

		for _, p := range Posts {
			post := &models.Post{
				Title:   p.Title,
				Content: p.Content,
				UserID:  userIDs[p.User],
			}
			if err := tx.Posts.Create(post); err != nil {
				return err
			}

			ids := make([]uint, 0, len(p.Tags))
			for _, t := range p.Tags {
				ids = append(ids, tagIDs[t])
			}
			if err := tx.Posts.SetTags(post.ID, ids); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	log.Printf("モックデータを投入しました: ユーザー%d件 投稿%d件 タグ%d件", len(Users), len(Posts), len(Tags))
	return true, nil
}
