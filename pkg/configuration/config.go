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

package configuration

import (
	"time"

	sb_config_hdl "github.com/SENERGY-Platform/go-service-base/config-hdl"
	struct_logger "github.com/SENERGY-Platform/go-service-base/struct-logger"
	"github.com/SENERGY-Platform/photo-picker-api/pkg/api"
	handler_database "github.com/SENERGY-Platform/photo-picker-api/pkg/components/handler/database"
	handler_fs "github.com/SENERGY-Platform/photo-picker-api/pkg/components/handler/fs"
	helper_sql_db "github.com/SENERGY-Platform/photo-picker-api/pkg/components/helper/sql_db"
	"github.com/SENERGY-Platform/photo-picker-api/pkg/service"
)

type UploadRateLimitConfig struct {
	RPS     float64       `json:"rps" env_var:"UPLOAD_RATE_LIMIT_RPS"`
	Burst   int           `json:"burst" env_var:"UPLOAD_RATE_LIMIT_BURST"`
	IdleTTL time.Duration `json:"idle_ttl" env_var:"UPLOAD_RATE_LIMIT_IDLE_TTL"`
}

type DatabaseConfig struct {
	MySQL handler_database.Config `json:"mysql"`
	SQL   helper_sql_db.Config    `json:"sql"`
	URL   string                  `json:"url" env_var:"DATABASE_URL"`
}

type Config struct {
	ServerPort      uint                  `json:"server_port" env_var:"SERVER_PORT"`
	FileHandler     handler_fs.Config     `json:"file_handler"`
	Service         service.Config        `json:"service"`
	HttpApi         api.Config            `json:"http_api"`
	UploadRateLimit UploadRateLimitConfig `json:"upload_rate_limit"`
	Logger          struct_logger.Config  `json:"logger"`
	Database        DatabaseConfig        `json:"database"`
}

func New(path string) (*Config, error) {
	cfg := Config{
		ServerPort: 8000,
		FileHandler: handler_fs.Config{
			WorkDirPath: "uploads",
		},
		Service: service.Config{
			BaseURL: "http://localhost:8000",
		},
		HttpApi: api.Config{
			MaxUploadSize: 10485760,
		},
		UploadRateLimit: UploadRateLimitConfig{
			RPS:     2,
			Burst:   10,
			IdleTTL: time.Minute * 10,
		},
		Logger: struct_logger.Config{
			Handler:    struct_logger.TextHandlerSelector,
			Level:      struct_logger.LevelInfo,
			TimeFormat: time.RFC3339Nano,
			TimeUtc:    true,
			AddMeta:    false,
		},
		Database: DatabaseConfig{
			MySQL: handler_database.Config{
				Address:  "localhost:3306",
				Database: "photo_picker_db",
				User:     "root",
				Timeout:  time.Second * 30,
			},
			SQL: helper_sql_db.Config{
				MaxOpenConns:    25,
				MaxIdleConns:    25,
				ConnMaxLifetime: time.Minute * 5,
			},
		},
	}
	err := sb_config_hdl.Load(&cfg, nil, envTypeParser, nil, path)
	if err != nil {
		return nil, err
	}
	if cfg.Database.URL != "" {
		mysqlCfg, err := parseDatabaseURL(cfg.Database.URL, cfg.Database.MySQL.Timeout)
		if err != nil {
			return nil, err
		}
		cfg.Database.MySQL = mysqlCfg
	}
	return &cfg, nil
}
