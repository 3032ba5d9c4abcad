package services

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/SketchShifter/blogly_backend/internal/config"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ImageService 画像の保存先
type ImageService interface {
	UploadImage(file io.Reader, fileName string) (string, string, error)
	DeleteImage(publicID string) error
}

type cloudinaryService struct {
	cld *cloudinary.Cloudinary
	cfg config.CloudinaryConfig
}

// NewCloudinaryService Cloudinaryを使うImageServiceを作成
func NewCloudinaryService(cfg config.CloudinaryConfig) (ImageService, error) {
	cld, err := cloudinary.NewFromParams(
		cfg.CloudName,
		cfg.APIKey,
		cfg.APISecret,
	)
	if err != nil {
		return nil, err
	}

	return &cloudinaryService{
		cld: cld,
		cfg: cfg,
	}, nil
}

// UploadImage 画像をアップロードし、公開IDとURLを返す
func (s *cloudinaryService) UploadImage(file io.Reader, fileName string) (string, string, error) {
	// ファイルデータを読み込み
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(file); err != nil {
		return "", "", fmt.Errorf("ファイルの読み込みに失敗しました: %w", err)
	}

	overwrite := true
	uploadParams := uploader.UploadParams{
		Folder:       s.cfg.Folder,
		PublicID:     fileName,
		ResourceType: "image",
		Overwrite:    &overwrite,
		// プロフィール画像は正方形に切り抜く
		Transformation: "c_fill,g_face,w_300,h_300,q_auto",
	}

	result, err := s.cld.Upload.Upload(context.Background(), buf, uploadParams)
	if err != nil {
		return "", "", fmt.Errorf("Cloudinaryへのアップロードに失敗しました: %w", err)
	}

	return result.PublicID, result.SecureURL, nil
}

// DeleteImage 画像を削除
func (s *cloudinaryService) DeleteImage(publicID string) error {
	if publicID == "" {
		return nil
	}

	_, err := s.cld.Upload.Destroy(context.Background(), uploader.DestroyParams{
		PublicID: publicID,
	})
	if err != nil {
		return fmt.Errorf("Cloudinaryからの削除に失敗しました: %w", err)
	}

	return nil
}
