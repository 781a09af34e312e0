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
	"context"
	"io"
	"os"

	models_storage "github.com/SENERGY-Platform/photo-picker-api/pkg/models/storage"
)

type storageHandler interface {
	ListImg(ctx context.Context, filter models_storage.ImageFilter) ([]models_storage.Image, error)
	ReadImg(ctx context.Context, id string) (models_storage.Image, error)
	CreateImg(ctx context.Context, img models_storage.Image) error
	UpdateImg(ctx context.Context, img models_storage.Image) error
	DeleteImg(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}

type fileHandler interface {
	Create(name string, src io.Reader) (string, int64, error)
	Open(name string) (*os.File, os.FileInfo, error)
	Remove(name string) error
}
