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
	"context"
	"io"

	srv_info_hdl "github.com/SENERGY-Platform/go-service-base/srv-info-hdl"
	models_error "github.com/SENERGY-Platform/photo-picker-api/pkg/models/error"
	models_image "github.com/SENERGY-Platform/photo-picker-api/pkg/models/image"
)

type serviceMock struct {
	UploadRes         models_image.UploadResult
	UploadCalled      bool
	UploadDescription string
	Imgs              []models_image.Image
	ImgFilter         models_image.ImageFilter
	FilePath          string
	UpdateID          string
	UpdateDescription string
	DeleteID          string
	DeleteErr         bool
	Health            models_image.HealthInfo
}

func (m *serviceMock) UploadImage(_ context.Context, src io.Reader, description string) (models_image.UploadResult, error) {
	m.UploadCalled = true
	_, _ = io.Copy(io.Discard, src)
	m.UploadDescription = description
	return m.UploadRes, nil
}

func (m *serviceMock) Images(_ context.Context, filter models_image.ImageFilter) ([]models_image.Image, error) {
	m.ImgFilter = filter
	return m.Imgs, nil
}

func (m *serviceMock) ImageFilePath(_ string) (string, error) {
	if m.FilePath == "" {
		return "", models_error.NotFoundErr
	}
	return m.FilePath, nil
}

func (m *serviceMock) UpdateImageDescription(_ context.Context, id, description string) error {
	m.UpdateID = id
	m.UpdateDescription = description
	return nil
}

func (m *serviceMock) DeleteImage(_ context.Context, id string) error {
	if m.DeleteErr {
		return models_error.NotFoundErr
	}
	m.DeleteID = id
	return nil
}

func (m *serviceMock) HealthInfo(_ context.Context) models_image.HealthInfo {
	return m.Health
}

type infoHandlerMock struct {
	name    string
	version string
}

func (m *infoHandlerMock) ServiceInfo() srv_info_hdl.ServiceInfo {
	return srv_info_hdl.ServiceInfo{Name: m.name, Version: m.version}
}

func (m *infoHandlerMock) Version() string {
	return m.version
}

func (m *infoHandlerMock) Name() string {
	return m.name
}
