package models

import (
	"encoding/json"
	"time"
)

// DefaultImageURL 画像が未設定のユーザーに表示するデフォルト画像
const DefaultImageURL = "https://www.freeiconspng.com/uploads/icon-user-blue-symbol-people-person-generic--public-domain--21.png"

// User ユーザーモデル
type User struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	FirstName string `json:"first_name" gorm:"size:50;not null"`
	LastName  string `json:"last_name" gorm:"size:50;not null"`
	ImageURL  string `json:"image_url" gorm:"size:255"`

	// リレーション
	Posts []Post `json:"posts,omitempty" gorm:"foreignKey:UserID"`
}

// FullName 姓名を連結した表示名
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// DisplayImageURL 表示用の画像URL（未設定の場合はデフォルト画像）
func (u User) DisplayImageURL() string {
	if u.ImageURL == "" {
		return DefaultImageURL
	}
	return u.ImageURL
}

// MarshalJSON 派生フィールドを含めてJSONに変換
func (u User) MarshalJSON() ([]byte, error) {
	type user User
	return json.Marshal(struct {
		user
		FullName        string `json:"full_name"`
		DisplayImageURL string `json:"display_image_url"`
	}{
		user:            user(u),
		FullName:        u.FullName(),
		DisplayImageURL: u.DisplayImageURL(),
	})
}

// Post 投稿モデル
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;uniqueIndex;not null"`
	Content   string    `json:"content" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null"`
	UserID    uint      `json:"user_id" gorm:"not null;index"`

	// リレーション
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Tags []Tag `json:"tags" gorm:"many2many:posts_tags;"`
}

// Tag タグモデル
type Tag struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Name string `json:"name" gorm:"size:50;uniqueIndex;not null"`

	// リレーション
	Posts []Post `json:"posts,omitempty" gorm:"many2many:posts_tags;"`
}

// PostTag 投稿とタグの中間テーブル
type PostTag struct {
	PostID uint `json:"post_id" gorm:"primaryKey"`
	TagID  uint `json:"tag_id" gorm:"primaryKey"`
}

// TableName テーブル名指定
func (PostTag) TableName() string {
	return "posts_tags"
}
