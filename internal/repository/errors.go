package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// データアクセス層のエラー
var (
	// ErrNotFound 指定されたIDのレコードが存在しない
	ErrNotFound = errors.New("レコードが見つかりません")
	// ErrConstraintViolation 一意制約違反（投稿タイトル・タグ名の重複）
	ErrConstraintViolation = errors.New("一意制約に違反しています")
	// ErrForeignKeyViolation 参照先のレコードが存在しない
	ErrForeignKeyViolation = errors.New("参照先のレコードが存在しません")
)

// translateError gormのエラーをリポジトリのエラーに変換
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrForeignKeyViolation, err)
	}
	return err
}
