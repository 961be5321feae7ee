package services

import (
	"context"
	"fmt"
	"io"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"villadash/commands"
	"villadash/errors"
	"villadash/models"
)

const villaImageFolder = "villas"

// Uploader stores a file and returns its public URL.
type Uploader interface {
	Upload(ctx context.Context, file io.Reader, folder string) (string, error)
}

// CloudinaryUploader uploads to a Cloudinary account.
type CloudinaryUploader struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryUploader(cld *cloudinary.Cloudinary) *CloudinaryUploader {
	return &CloudinaryUploader{cld: cld}
}

func (u *CloudinaryUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	resp, err := u.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return "", err
	}
	if resp.Error.Message != "" {
		return "", fmt.Errorf("cloudinary: %s", resp.Error.Message)
	}
	return resp.SecureURL, nil
}

// MediaService attaches uploaded images to villas.
type MediaService struct {
	uploader Uploader
	api      commands.VillaAPI
	store    *DataStore
}

func NewMediaService(up Uploader, api commands.VillaAPI, store *DataStore) *MediaService {
	return &MediaService{uploader: up, api: api, store: store}
}

// UploadVillaImage uploads the file and points the villa's image at it.
func (s *MediaService) UploadVillaImage(ctx context.Context, villaID uint, file io.Reader) (*models.Villa, error) {
	if s.uploader == nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, "Image upload is not configured", nil)
	}
	url, err := s.uploader.Upload(ctx, file, villaImageFolder)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeUnavailable, "Image upload failed", err)
	}

	cmd := commands.NewPatchVillaCommand(villaID, map[string]interface{}{"image": url}, s.api)
	if err := s.store.Execute(ctx, cmd); err != nil {
		return nil, err
	}
	return cmd.Result, nil
}
