package service

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/postcal/postcal/internal/models"
	"github.com/postcal/postcal/internal/repository"
)

// MediaService backs the photo library: uploads are sniffed, stored in
// R2 and recorded as media assets whose URLs become post media entries.
type MediaService interface {
	Upload(ctx context.Context, files []*multipart.FileHeader) ([]*models.MediaAsset, error)
	List(ctx context.Context) ([]*models.MediaAsset, error)
}

type mediaService struct {
	ma repository.MediaAssetRepository
	r2 R2Service
}

func NewMediaService(ma repository.MediaAssetRepository, r2 R2Service) MediaService {
	return &mediaService{ma: ma, r2: r2}
}

func (s *mediaService) Upload(ctx context.Context, files []*multipart.FileHeader) ([]*models.MediaAsset, error) {
	allowedTypes := map[string]struct{}{
		"mp4": {}, "mov": {}, "jpeg": {}, "png": {}, "jpg": {},
	}

	var assets []*models.MediaAsset
	for _, file := range files {
		fileContent, err := file.Open()
		if err != nil {
			return nil, fmt.Errorf("error opening file: %w", err)
		}

		fileBytes, err := io.ReadAll(fileContent)
		fileContent.Close()
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %w", err)
		}

		fileType, err := filetype.Match(fileBytes)
		if err != nil || fileType == types.Unknown {
			return nil, fmt.Errorf("unsupported file type: %w", err)
		}
		if _, ok := allowedTypes[fileType.Extension]; !ok {
			return nil, fmt.Errorf("file type %s is not allowed", fileType.Extension)
		}

		key, err := gonanoid.New()
		if err != nil {
			return nil, err
		}

		if err := s.r2.UploadToR2(ctx, key, fileBytes, fileType.MIME.Value); err != nil {
			return nil, fmt.Errorf("error uploading file: %w", err)
		}

		asset := &models.MediaAsset{
			FileName: key,
			FileType: fileType.MIME.Value,
			FileSize: int64(len(fileBytes)),
			FileURL:  s.r2.PublicURL(key),
		}
		assetID, err := s.ma.Create(ctx, asset)
		if err != nil {
			return nil, fmt.Errorf("error saving media file: %w", err)
		}
		asset.ID = assetID
		assets = append(assets, asset)
	}
	return assets, nil
}

func (s *mediaService) List(ctx context.Context) ([]*models.MediaAsset, error) {
	assets, err := s.ma.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("Error getting media assets")
	}
	return assets, nil
}
