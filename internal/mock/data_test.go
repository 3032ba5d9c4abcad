package mock

import (
	"testing"

	"github.com/SketchShifter/blogly_backend/internal/repository"
	"github.com/SketchShifter/blogly_backend/internal/testutil"
)

func TestSeed(t *testing.T) {
	repos := repository.NewRepositories(testutil.NewTestDB(t))

	seeded, err := Seed(repos)
	if err != nil {
		t.Fatalf("モックデータの投入に失敗しました: %v", err)
	}
	if !seeded {
		t.Fatal("空のデータベースには投入されるべき")
	}

	users, err := repos.Users.List()
	if err != nil {
		t.Fatalf("ユーザー一覧の取得に失敗しました: %v", err)
	}
	if len(users) != len(Users) {
		t.Errorf("ユーザー数: got %d, want %d", len(users), len(Users))
	}
	// 姓の昇順
	if users[0].FullName() != "Alan Alda" {
		t.Errorf("先頭のユーザー: got %q", users[0].FullName())
	}

	posts, err := repos.Posts.List(0)
	if err != nil {
		t.Fatalf("投稿一覧の取得に失敗しました: %v", err)
	}
	if len(posts) != len(Posts) {
		t.Errorf("投稿数: got %d, want %d", len(posts), len(Posts))
	}

	tags, err := repos.Tags.List()
	if err != nil {
		t.Fatalf("タグ一覧の取得に失敗しました: %v", err)
	}
	if len(tags) != len(Tags) {
		t.Errorf("タグ数: got %d, want %d", len(tags), len(Tags))
	}

	// 2回目は何もしない
	seeded, err = Seed(repos)
	if err != nil {
		t.Fatalf("2回目の投入でエラー: %v", err)
	}
	if seeded {
		t.Error("既存データがある場合は投入しないべき")
	}
}

func TestSeedDataReferencesAreValid(t *testing.T) {
	for _, p := range Posts {
		if p.User < 0 || p.User >= len(Users) {
			t.Errorf("%q: ユーザーの添字が範囲外です: %d", p.Title, p.User)
		}
		for _, tag := range p.Tags {
			if tag < 0 || tag >= len(Tags) {
				t.Errorf("%q: タグの添字が範囲外です: %d", p.Title, tag)
			}
		}
	}
}
