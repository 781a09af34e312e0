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

package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	models_api "github.com/SENERGY-Platform/photo-picker-api/pkg/models/api"
	models_error "github.com/SENERGY-Platform/photo-picker-api/pkg/models/error"
	models_image "github.com/SENERGY-Platform/photo-picker-api/pkg/models/image"
	"github.com/gin-gonic/gin"
)

type imagesQuery struct {
	MimeType string `form:"mime_type"`
}

func limitUploadH(a *Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		if !a.uploadLimiter.Allow(gc.ClientIP(), time.Now()) {
			gc.AbortWithStatus(http.StatusTooManyRequests)
		}
	}
}

// Allowance for multipart boundaries and form fields on top of the file size limit.
const uploadBodyOverhead = 64 << 10

func postUploadH(a *Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		if a.config.MaxUploadSize > 0 {
			gc.Request.Body = http.MaxBytesReader(gc.Writer, gc.Request.Body, a.config.MaxUploadSize+uploadBodyOverhead)
		}
		fileHeader, err := gc.FormFile(models_api.UploadFormFileKey)
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				_ = gc.Error(models_error.PayloadSizeErr)
				return
			}
			_ = gc.Error(fmt.Errorf("%w: %s", models_error.InvalidInputErr, err))
			return
		}
		if a.config.MaxUploadSize > 0 && fileHeader.Size > a.config.MaxUploadSize {
			_ = gc.Error(models_error.PayloadSizeErr)
			return
		}
		file, err := fileHeader.Open()
		if err != nil {
			_ = gc.Error(fmt.Errorf("%w: %s", models_error.InvalidInputErr, err))
			return
		}
		defer file.Close()
		result, err := a.service.UploadImage(gc.Request.Context(), file, gc.PostForm(models_api.UploadFormDescriptionKey))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.JSON(http.StatusOK, models_api.UploadResponse{
			Success:  true,
			Message:  "Image uploaded successfully",
			ImageID:  result.ID,
			ImageURL: result.URL,
			Filename: result.Filename,
		})
	}
}

func getImagesH(a *Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		query := imagesQuery{}
		if err := gc.ShouldBindQuery(&query); err != nil {
			_ = gc.Error(fmt.Errorf("%w: %s", models_error.InvalidInputErr, err))
			return
		}
		images, err := a.service.Images(gc.Request.Context(), models_image.ImageFilter{MimeType: query.MimeType})
		if err != nil {
			_ = gc.Error(err)
			return
		}
		items := make([]models_api.ImageItem, 0, len(images))
		for _, img := range images {
			items = append(items, models_api.ImageItem{
				ID:          img.ID,
				URL:         img.URL,
				Description: img.Description,
				UploadDate:  img.Uploaded.Format(time.RFC3339Nano),
				FileSize:    img.FileSize,
				MimeType:    img.MimeType,
			})
		}
		gc.JSON(http.StatusOK, models_api.ImagesResponse{
			Success: true,
			Images:  items,
		})
	}
}

func getImageFileH(a *Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		filePath, err := a.service.ImageFilePath(gc.Param(imgParam))
		if err != nil {
			_ = gc.Error(err)
			return
		}
		gc.File(filePath)
	}
}

func patchImageH(a *Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		var req models_api.ImageUpdateRequest
		if err := gc.ShouldBindJSON(&req); err != nil {
			_ = gc.Error(fmt.Errorf("%w: %s", models_error.InvalidInputErr, err))
			return
		}
		if err := a.service.UpdateImageDescription(gc.Request.Context(), gc.Param(imgParam), req.Description); err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}

func deleteImageH(a *Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		if err := a.service.DeleteImage(gc.Request.Context(), gc.Param(imgParam)); err != nil {
			_ = gc.Error(err)
			return
		}
		gc.Status(http.StatusOK)
	}
}
