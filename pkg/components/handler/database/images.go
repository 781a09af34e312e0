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

package database

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	models_error "github.com/SENERGY-Platform/photo-picker-api/pkg/models/error"
	models_storage "github.com/SENERGY-Platform/photo-picker-api/pkg/models/storage"
)

const selectFromImagesStatement = "SELECT id, filename, filepath, description, upload_date, file_size, mime_type, created_at, updated_at FROM images"

func (h *Handler) ListImg(ctx context.Context, filter models_storage.ImageFilter) ([]models_storage.Image, error) {
	fc, val := genImgFilter(filter)
	rows, err := h.sqlDB.QueryContext(ctx, selectFromImagesStatement+fc+" ORDER BY upload_date DESC;", val...)
	if err != nil {
		return nil, models_error.NewStorageErr(err)
	}
	defer rows.Close()
	var images []models_storage.Image
	for rows.Next() {
		img, err := scanImage(rows.Scan)
		if err != nil {
			return nil, models_error.NewStorageErr(err)
		}
		images = append(images, img)
	}
	if err = rows.Err(); err != nil {
		return nil, models_error.NewStorageErr(err)
	}
	return images, nil
}

func (h *Handler) ReadImg(ctx context.Context, id string) (models_storage.Image, error) {
	row := h.sqlDB.QueryRowContext(ctx, selectFromImagesStatement+" WHERE id = ?;", id)
	img, err := scanImage(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models_storage.Image{}, models_error.NotFoundErr
		}
		return models_storage.Image{}, models_error.NewStorageErr(err)
	}
	return img, nil
}

func (h *Handler) CreateImg(ctx context.Context, img models_storage.Image) error {
	_, err := h.sqlDB.ExecContext(
		ctx,
		"INSERT INTO images (id, filename, filepath, description, upload_date, file_size, mime_type, created_at, updated_at) VALUES ("+genQuestionMarks(9)+")",
		img.ID,
		img.Filename,
		img.Filepath,
		img.Description,
		img.UploadDate,
		img.FileSize,
		img.MimeType,
		img.Created,
		img.Updated,
	)
	if err != nil {
		return models_error.NewStorageErr(err)
	}
	return nil
}

func (h *Handler) UpdateImg(ctx context.Context, img models_storage.Image) error {
	res, err := h.sqlDB.ExecContext(ctx, "UPDATE images SET description = ?, updated_at = ? WHERE id = ?", img.Description, img.Updated, img.ID)
	if err != nil {
		return models_error.NewStorageErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models_error.NewStorageErr(err)
	}
	if n < 1 {
		return models_error.NotFoundErr
	}
	return nil
}

func (h *Handler) DeleteImg(ctx context.Context, id string) error {
	res, err := h.sqlDB.ExecContext(ctx, "DELETE FROM images WHERE id = ?", id)
	if err != nil {
		return models_error.NewStorageErr(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return models_error.NewStorageErr(err)
	}
	if n < 1 {
		return models_error.NotFoundErr
	}
	return nil
}

func scanImage(scan func(dest ...any) error) (models_storage.Image, error) {
	var img models_storage.Image
	var ud, ct, ut []uint8
	err := scan(&img.ID, &img.Filename, &img.Filepath, &img.Description, &ud, &img.FileSize, &img.MimeType, &ct, &ut)
	if err != nil {
		return models_storage.Image{}, err
	}
	if img.UploadDate, err = time.Parse(timeLayout, string(ud)); err != nil {
		return models_storage.Image{}, err
	}
	if img.Created, err = time.Parse(timeLayout, string(ct)); err != nil {
		return models_storage.Image{}, err
	}
	if img.Updated, err = time.Parse(timeLayout, string(ut)); err != nil {
		return models_storage.Image{}, err
	}
	return img, nil
}

func genImgFilter(filter models_storage.ImageFilter) (string, []any) {
	var fc []string
	var val []any
	if len(filter.IDs) > 0 {
		ids := removeDuplicates(filter.IDs)
		fc = append(fc, "id IN ("+genQuestionMarks(len(ids))+")")
		for _, id := range ids {
			val = append(val, id)
		}
	}
	if filter.MimeType != "" {
		fc = append(fc, "mime_type = ?")
		val = append(val, filter.MimeType)
	}
	if len(fc) > 0 {
		return " WHERE " + strings.Join(fc, " AND "), val
	}
	return "", nil
}
