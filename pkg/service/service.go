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
	"log/slog"
	"sync"
	"time"

	models_image "github.com/SENERGY-Platform/photo-picker-api/pkg/models/image"
	"github.com/SENERGY-Platform/photo-picker-api/pkg/models/slog_attr"
)

var logger *slog.Logger

func InitLogger(l *slog.Logger) {
	logger = l.With(slog_attr.ComponentKey, "service")
}

type Config struct {
	BaseURL    string `json:"base_url" env_var:"EXTERNAL_BASE_URL"`
	Production bool   `json:"production" env_var:"CONTAINER"`
}

type Service struct {
	storageHdl storageHandler
	fileHdl    fileHandler
	config     Config
	mu         sync.RWMutex
}

func New(storageHdl storageHandler, fileHdl fileHandler, config Config) *Service {
	return &Service{
		storageHdl: storageHdl,
		fileHdl:    fileHdl,
		config:     config,
	}
}

func (s *Service) HealthInfo(ctx context.Context) models_image.HealthInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	env := models_image.EnvDevelopment
	if s.config.Production {
		env = models_image.EnvProduction
	}
	dbOK := true
	if err := s.storageHdl.Ping(ctx); err != nil {
		logger.Warn("database ping failed", slog_attr.ErrorKey, err)
		dbOK = false
	}
	return models_image.HealthInfo{
		Database:    dbOK,
		Environment: env,
		Timestamp:   time.Now().UTC(),
	}
}
