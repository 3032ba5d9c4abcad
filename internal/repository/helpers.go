package repository

import (
	"fmt"

	"github.com/SketchShifter/blogly_backend/internal/models"

	"gorm.io/gorm"
)

// exists IDでレコードの存在を確認
func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ensureExists IDのレコードがなければErrNotFound
func ensureExists(tx *gorm.DB, model interface{}, id uint) error {
	ok, err := exists(tx, model, id)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}

// ensureUnique 一意であるべきカラムの重複を確認（excludeIDは更新対象自身）
func ensureUnique(tx *gorm.DB, model interface{}, column, value string, excludeID uint) error {
	var count int64
	query := tx.Model(model).Where(column+" = ?", value)
	if excludeID != 0 {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("%w: %s=%q は既に使われています", ErrConstraintViolation, column, value)
	}
	return nil
}

// uniqueIDs 重複を取り除いたIDの一覧（順序は維持）
func uniqueIDs(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// diffIDs current を wanted にするために追加・削除するIDを計算
func diffIDs(current, wanted []uint) (toAdd, toRemove []uint) {
	have := make(map[uint]struct{}, len(current))
	for _, id := range current {
		have[id] = struct{}{}
	}
	want := make(map[uint]struct{}, len(wanted))
	for _, id := range wanted {
		want[id] = struct{}{}
		if _, ok := have[id]; !ok {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range current {
		if _, ok := want[id]; !ok {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

// link posts_tagsの片側を固定したときのカラム指定
type link struct {
	ownerColumn string      // 固定する側 (post_id / tag_id)
	otherColumn string      // 置き換える側
	otherModel  interface{} // 置き換える側のモデル（存在確認用）
	row         func(ownerID, otherID uint) models.PostTag
}

var (
	postTagsLink = link{
		ownerColumn: "post_id",
		otherColumn: "tag_id",
		otherModel:  &models.Tag{},
		row: func(postID, tagID uint) models.PostTag {
			return models.PostTag{PostID: postID, TagID: tagID}
		},
	}
	tagPostsLink = link{
		ownerColumn: "tag_id",
		otherColumn: "post_id",
		otherModel:  &models.Post{},
		row: func(tagID, postID uint) models.PostTag {
			return models.PostTag{PostID: postID, TagID: tagID}
		},
	}
)

// replaceLinks ownerIDに紐づくposts_tagsをotherIDsと完全に一致させる
// 存在しないIDは無視する
func replaceLinks(tx *gorm.DB, l link, ownerID uint, otherIDs []uint) error {
	wanted := []uint{}
	if ids := uniqueIDs(otherIDs); len(ids) > 0 {
		if err := tx.Model(l.otherModel).Where("id IN ?", ids).Pluck("id", &wanted).Error; err != nil {
			return err
		}
	}

	var current []uint
	if err := tx.Model(&models.PostTag{}).Where(l.ownerColumn+" = ?", ownerID).Pluck(l.otherColumn, &current).Error; err != nil {
		return err
	}

	toAdd, toRemove := diffIDs(current, wanted)

	if len(toRemove) > 0 {
		if err := tx.Where(l.ownerColumn+" = ? AND "+l.otherColumn+" IN ?", ownerID, toRemove).
			Delete(&models.PostTag{}).Error; err != nil {
			return err
		}
	}

	if len(toAdd) > 0 {
		rows := make([]models.PostTag, 0, len(toAdd))
		for _, id := range toAdd {
			rows = append(rows, l.row(ownerID, id))
		}
		if err := tx.Create(&rows).Error; err != nil {
			return translateError(err)
		}
	}

	return nil
}
