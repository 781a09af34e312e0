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
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	handler_fs "github.com/SENERGY-Platform/photo-picker-api/pkg/components/handler/fs"
	models_error "github.com/SENERGY-Platform/photo-picker-api/pkg/models/error"
	models_image "github.com/SENERGY-Platform/photo-picker-api/pkg/models/image"
	models_storage "github.com/SENERGY-Platform/photo-picker-api/pkg/models/storage"
)

var pngSig = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}

func newTestService(t *testing.T, stgHdlMock *storageHandlerMock) (*Service, string) {
	t.Helper()
	InitLogger(slog.Default())
	tmpDir := t.TempDir()
	fileHdl := handler_fs.New(handler_fs.Config{WorkDirPath: tmpDir})
	s := New(stgHdlMock, fileHdl, Config{BaseURL: "http://test.local"})
	return s, tmpDir
}

func TestService_UploadImage(t *testing.T) {
	stgHdlMock := &storageHandlerMock{Imgs: make(map[string]models_storage.Image)}
	s, tmpDir := newTestService(t, stgHdlMock)
	result, err := s.UploadImage(context.Background(), bytes.NewReader(pngSig), "a test image")
	if err != nil {
		t.Fatal(err)
	}
	if result.ID == "" {
		t.Error("expected id")
	}
	if !strings.HasSuffix(result.Filename, ".png") {
		t.Errorf("expected .png suffix, got: %s", result.Filename)
	}
	if result.URL != "http://test.local/images/"+result.Filename {
		t.Errorf("expected: %s, got: %s", "http://test.local/images/"+result.Filename, result.URL)
	}
	img, ok := stgHdlMock.Imgs[result.ID]
	if !ok {
		t.Fatal("expected stored image")
	}
	if img.MimeType != "image/png" {
		t.Errorf("expected: %s, got: %s", "image/png", img.MimeType)
	}
	if img.FileSize != int64(len(pngSig)) {
		t.Errorf("expected: %d, got: %d", len(pngSig), img.FileSize)
	}
	if img.Description != "a test image" {
		t.Errorf("expected: %s, got: %s", "a test image", img.Description)
	}
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("expected: %d, got: %d", 1, len(entries))
	}
	t.Run("error", func(t *testing.T) {
		t.Run("not an image", func(t *testing.T) {
			_, err = s.UploadImage(context.Background(), strings.NewReader("plain text"), "")
			if !errors.Is(err, models_error.InvalidInputErr) {
				t.Errorf("expected: %v, got: %v", models_error.InvalidInputErr, err)
			}
		})
		t.Run("storage failure removes staged file", func(t *testing.T) {
			stgHdlMock.CreateErr = errors.New("insert failed")
			defer func() { stgHdlMock.CreateErr = nil }()
			_, err = s.UploadImage(context.Background(), bytes.NewReader(pngSig), "")
			if err == nil {
				t.Error("expected error")
			}
			entries, err = os.ReadDir(tmpDir)
			if err != nil {
				t.Fatal(err)
			}
			if len(entries) != 1 {
				t.Errorf("expected: %d, got: %d", 1, len(entries))
			}
		})
	})
}

func TestService_Images(t *testing.T) {
	timestamp := time.Now().UTC()
	stgHdlMock := &storageHandlerMock{Imgs: map[string]models_storage.Image{
		"123": {
			ID:          "123",
			Filename:    "123.png",
			Filepath:    "uploads/123.png",
			Description: "test",
			UploadDate:  timestamp,
			FileSize:    8,
			MimeType:    "image/png",
			Created:     timestamp,
			Updated:     timestamp,
		},
	}}
	s, _ := newTestService(t, stgHdlMock)
	images, err := s.Images(context.Background(), models_image.ImageFilter{})
	if err != nil {
		t.Fatal(err)
	}
	if len(images) != 1 {
		t.Fatalf("expected: %d, got: %d", 1, len(images))
	}
	a := models_image.Image{
		ImageBase: models_image.ImageBase{
			ID:          "123",
			Filename:    "123.png",
			Description: "test",
			MimeType:    "image/png",
			FileSize:    8,
		},
		URL:      "http://test.local/images/123.png",
		Uploaded: timestamp,
	}
	if images[0] != a {
		t.Errorf("expected: %v, got: %v", a, images[0])
	}
	t.Run("error", func(t *testing.T) {
		stgHdlMock.ListErr = errors.New("query failed")
		defer func() { stgHdlMock.ListErr = nil }()
		if _, err = s.Images(context.Background(), models_image.ImageFilter{}); err == nil {
			t.Error("expected error")
		}
	})
}

func TestService_UpdateImageDescription(t *testing.T) {
	timestamp := time.Now().UTC().Add(-time.Hour)
	stgHdlMock := &storageHandlerMock{Imgs: map[string]models_storage.Image{
		"123": {
			ID:          "123",
			Filename:    "123.png",
			Description: "old",
			Updated:     timestamp,
		},
	}}
	s, _ := newTestService(t, stgHdlMock)
	if err := s.UpdateImageDescription(context.Background(), "123", "new"); err != nil {
		t.Fatal(err)
	}
	img := stgHdlMock.Imgs["123"]
	if img.Description != "new" {
		t.Errorf("expected: %s, got: %s", "new", img.Description)
	}
	if !img.Updated.After(timestamp) {
		t.Error("expected updated timestamp to advance")
	}
	t.Run("error", func(t *testing.T) {
		t.Run("does not exist", func(t *testing.T) {
			err := s.UpdateImageDescription(context.Background(), "456", "new")
			if !errors.Is(err, models_error.NotFoundErr) {
				t.Errorf("expected: %v, got: %v", models_error.NotFoundErr, err)
			}
		})
	})
}

func TestService_DeleteImage(t *testing.T) {
	stgHdlMock := &storageHandlerMock{Imgs: make(map[string]models_storage.Image)}
	s, tmpDir := newTestService(t, stgHdlMock)
	result, err := s.UploadImage(context.Background(), bytes.NewReader(pngSig), "")
	if err != nil {
		t.Fatal(err)
	}
	if err = s.DeleteImage(context.Background(), result.ID); err != nil {
		t.Fatal(err)
	}
	if _, ok := stgHdlMock.Imgs[result.ID]; ok {
		t.Error("expected image to be removed from storage")
	}
	entries, err := os.ReadDir(tmpDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected: %d, got: %d", 0, len(entries))
	}
	t.Run("error", func(t *testing.T) {
		t.Run("does not exist", func(t *testing.T) {
			err = s.DeleteImage(context.Background(), "456")
			if !errors.Is(err, models_error.NotFoundErr) {
				t.Errorf("expected: %v, got: %v", models_error.NotFoundErr, err)
			}
		})
	})
}

func TestService_ImageFilePath(t *testing.T) {
	stgHdlMock := &storageHandlerMock{Imgs: make(map[string]models_storage.Image)}
	s, _ := newTestService(t, stgHdlMock)
	result, err := s.UploadImage(context.Background(), bytes.NewReader(pngSig), "")
	if err != nil {
		t.Fatal(err)
	}
	filePath, err := s.ImageFilePath(result.Filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err = os.Stat(filePath); err != nil {
		t.Error(err)
	}
	t.Run("error", func(t *testing.T) {
		t.Run("does not exist", func(t *testing.T) {
			_, err = s.ImageFilePath("456.png")
			if !errors.Is(err, models_error.NotFoundErr) {
				t.Errorf("expected: %v, got: %v", models_error.NotFoundErr, err)
			}
		})
	})
}

func TestService_HealthInfo(t *testing.T) {
	stgHdlMock := &storageHandlerMock{Imgs: make(map[string]models_storage.Image)}
	s, _ := newTestService(t, stgHdlMock)
	info := s.HealthInfo(context.Background())
	if !info.Database {
		t.Error("expected database to be healthy")
	}
	if info.Environment != models_image.EnvDevelopment {
		t.Errorf("expected: %s, got: %s", models_image.EnvDevelopment, info.Environment)
	}
	t.Run("database down", func(t *testing.T) {
		stgHdlMock.PingErr = errors.New("no connection")
		defer func() { stgHdlMock.PingErr = nil }()
		info = s.HealthInfo(context.Background())
		if info.Database {
			t.Error("expected database to be unhealthy")
		}
	})
	t.Run("production", func(t *testing.T) {
		InitLogger(slog.Default())
		ps := New(stgHdlMock, nil, Config{Production: true})
		info = ps.HealthInfo(context.Background())
		if info.Environment != models_image.EnvProduction {
			t.Errorf("expected: %s, got: %s", models_image.EnvProduction, info.Environment)
		}
	})
}
