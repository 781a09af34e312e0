/*
 * Copyright 2025 InfAI (CC SES)
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *    http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"time"

	models_error "github.com/SENERGY-Platform/photo-picker-api/pkg/models/error"
	models_image "github.com/SENERGY-Platform/photo-picker-api/pkg/models/image"
	"github.com/SENERGY-Platform/photo-picker-api/pkg/models/slog_attr"
	models_storage "github.com/SENERGY-Platform/photo-picker-api/pkg/models/storage"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// mimetype never reads more than 3072 bytes.
const sniffLen = 3072

func (s *Service) UploadImage(ctx context.Context, src io.Reader, description string) (models_image.UploadResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	head := make([]byte, sniffLen)
	n, err := io.ReadFull(src, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return models_image.UploadResult{}, models_error.NewFileErr("", err)
	}
	mType := mimetype.Detect(head[:n])
	if !strings.HasPrefix(mType.String(), "image/") {
		logger.Warn("rejected upload", slog_attr.MimeTypeKey, mType.String())
		return models_image.UploadResult{}, models_error.InvalidInputErr
	}
	id := uuid.NewString()
	filename := id + mType.Extension()
	filePath, size, err := s.fileHdl.Create(filename, io.MultiReader(bytes.NewReader(head[:n]), src))
	if err != nil {
		return models_image.UploadResult{}, err
	}
	timestamp := time.Now().UTC()
	err = s.storageHdl.CreateImg(ctx, models_storage.Image{
		ID:          id,
		Filename:    filename,
		Filepath:    filePath,
		Description: description,
		UploadDate:  timestamp,
		FileSize:    size,
		MimeType:    mType.String(),
		Created:     timestamp,
		Updated:     timestamp,
	})
	if err != nil {
		if rmErr := s.fileHdl.Remove(filename); rmErr != nil {
			logger.Error("removing staged file failed", slog_attr.FilenameKey, filename, slog_attr.ErrorKey, rmErr)
		}
		return models_image.UploadResult{}, err
	}
	logger.Info("image uploaded", slog_attr.IDKey, id, slog_attr.MimeTypeKey, mType.String(), slog_attr.FileSizeKey, size)
	return models_image.UploadResult{
		ID:       id,
		Filename: filename,
		URL:      s.imageURL(filename),
	}, nil
}

func (s *Service) Images(ctx context.Context, filter models_image.ImageFilter) ([]models_image.Image, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stgImages, err := s.storageHdl.ListImg(ctx, models_storage.ImageFilter{MimeType: filter.MimeType})
	if err != nil {
		return nil, err
	}
	var images []models_image.Image
	for _, stgImg := range stgImages {
		images = append(images, models_image.Image{
			ImageBase: models_image.ImageBase{
				ID:          stgImg.ID,
				Filename:    stgImg.Filename,
				Description: stgImg.Description,
				MimeType:    stgImg.MimeType,
				FileSize:    stgImg.FileSize,
			},
			URL:      s.imageURL(stgImg.Filename),
			Uploaded: stgImg.UploadDate,
		})
	}
	return images, nil
}

// ImageFilePath resolves a stored filename to its path on disk.
func (s *Service) ImageFilePath(name string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	file, _, err := s.fileHdl.Open(name)
	if err != nil {
		return "", err
	}
	defer file.Close()
	return file.Name(), nil
}

func (s *Service) UpdateImageDescription(ctx context.Context, id, description string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, err := s.storageHdl.ReadImg(ctx, id)
	if err != nil {
		return err
	}
	img.Description = description
	img.Updated = time.Now().UTC()
	if err = s.storageHdl.UpdateImg(ctx, img); err != nil {
		return err
	}
	logger.Info("image description updated", slog_attr.IDKey, id)
	return nil
}

func (s *Service) DeleteImage(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	img, err := s.storageHdl.ReadImg(ctx, id)
	if err != nil {
		return err
	}
	if err = s.storageHdl.DeleteImg(ctx, id); err != nil {
		return err
	}
	if err = s.fileHdl.Remove(img.Filename); err != nil && !errors.Is(err, models_error.NotFoundErr) {
		logger.Error("removing image file failed", slog_attr.FilenameKey, img.Filename, slog_attr.ErrorKey, err)
	}
	logger.Info("image deleted", slog_attr.IDKey, id)
	return nil
}

func (s *Service) imageURL(filename string) string {
	return strings.TrimSuffix(s.config.BaseURL, "/") + "/images/" + filename
}
