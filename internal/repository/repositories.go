package repository

import (
	"gorm.io/gorm"
)

// Repositories リポジトリ一式
// Transaction 内では同じトランザクションを共有するリポジトリが渡される
type Repositories struct {
	db *gorm.DB

	Users UserRepository
	Posts PostRepository
	Tags  TagRepository
}

// NewRepositories Repositoriesを作成
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:    db,
		Users: NewUserRepository(db),
		Posts: NewPostRepository(db),
		Tags:  NewTagRepository(db),
	}
}

// Transaction fnを1つのトランザクションで実行する
// fnがエラーを返した場合はすべてロールバックされる
func (r *Repositories) Transaction(fn func(repos *Repositories) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// Ping データベースへの接続を確認
func (r *Repositories) Ping() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}
