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

	models_error "github.com/SENERGY-Platform/photo-picker-api/pkg/models/error"
	models_storage "github.com/SENERGY-Platform/photo-picker-api/pkg/models/storage"
)

type storageHandlerMock struct {
	Imgs      map[string]models_storage.Image
	ListErr   error
	CreateErr error
	PingErr   error
}

func (m *storageHandlerMock) ListImg(_ context.Context, filter models_storage.ImageFilter) ([]models_storage.Image, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	var images []models_storage.Image
	for _, img := range m.Imgs {
		if filter.MimeType != "" && img.MimeType != filter.MimeType {
			continue
		}
		images = append(images, img)
	}
	return images, nil
}

func (m *storageHandlerMock) ReadImg(_ context.Context, id string) (models_storage.Image, error) {
	img, ok := m.Imgs[id]
	if !ok {
		return models_storage.Image{}, models_error.NotFoundErr
	}
	return img, nil
}

func (m *storageHandlerMock) CreateImg(_ context.Context, img models_storage.Image) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Imgs[img.ID] = img
	return nil
}

func (m *storageHandlerMock) UpdateImg(_ context.Context, img models_storage.Image) error {
	if _, ok := m.Imgs[img.ID]; !ok {
		return models_error.NotFoundErr
	}
	m.Imgs[img.ID] = img
	return nil
}

func (m *storageHandlerMock) DeleteImg(_ context.Context, id string) error {
	if _, ok := m.Imgs[id]; !ok {
		return models_error.NotFoundErr
	}
	delete(m.Imgs, id)
	return nil
}

func (m *storageHandlerMock) Ping(_ context.Context) error {
	return m.PingErr
}
