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

package fs

import (
	"errors"
	"io"
	"os"
	"path"
	"strings"

	models_error "github.com/SENERGY-Platform/photo-picker-api/pkg/models/error"
)

type Handler struct {
	config Config
}

func New(config Config) *Handler {
	return &Handler{config: config}
}

func (h *Handler) Init() error {
	return os.MkdirAll(h.config.WorkDirPath, 0775)
}

// Create writes src to a new file and returns its path and size.
// The file must not exist yet.
func (h *Handler) Create(name string, src io.Reader) (string, int64, error) {
	filePath, err := h.Path(name)
	if err != nil {
		return "", 0, err
	}
	dst, err := os.OpenFile(filePath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0664)
	if err != nil {
		return "", 0, models_error.NewFileErr(name, err)
	}
	defer dst.Close()
	size, err := io.Copy(dst, src)
	if err != nil {
		_ = os.Remove(filePath)
		return "", 0, models_error.NewFileErr(name, err)
	}
	return filePath, size, nil
}

func (h *Handler) Open(name string) (*os.File, os.FileInfo, error) {
	filePath, err := h.Path(name)
	if err != nil {
		return nil, nil, err
	}
	file, err := os.Open(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil, models_error.NotFoundErr
		}
		return nil, nil, models_error.NewFileErr(name, err)
	}
	info, err := file.Stat()
	if err != nil {
		file.Close()
		return nil, nil, models_error.NewFileErr(name, err)
	}
	return file, info, nil
}

func (h *Handler) Remove(name string) error {
	filePath, err := h.Path(name)
	if err != nil {
		return err
	}
	if err = os.Remove(filePath); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return models_error.NotFoundErr
		}
		return models_error.NewFileErr(name, err)
	}
	return nil
}

// Path joins name with the upload dir and rejects names that would
// resolve outside of it.
func (h *Handler) Path(name string) (string, error) {
	if name == "" || name != path.Base(name) || strings.HasPrefix(name, ".") {
		return "", models_error.InvalidInputErr
	}
	return path.Join(h.config.WorkDirPath, name), nil
}
