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

package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"

	sb_config_hdl "github.com/SENERGY-Platform/go-service-base/config-hdl"
	srv_info_hdl "github.com/SENERGY-Platform/go-service-base/srv-info-hdl"
	struct_logger "github.com/SENERGY-Platform/go-service-base/struct-logger"
	"github.com/SENERGY-Platform/photo-picker-api/pkg/api"
	handler_database "github.com/SENERGY-Platform/photo-picker-api/pkg/components/handler/database"
	handler_database_schema "github.com/SENERGY-Platform/photo-picker-api/pkg/components/handler/database/schema"
	handler_fs "github.com/SENERGY-Platform/photo-picker-api/pkg/components/handler/fs"
	helper_os_signal "github.com/SENERGY-Platform/photo-picker-api/pkg/components/helper/os_signal"
	helper_ratelimiter "github.com/SENERGY-Platform/photo-picker-api/pkg/components/helper/ratelimiter"
	helper_sql_db "github.com/SENERGY-Platform/photo-picker-api/pkg/components/helper/sql_db"
	"github.com/SENERGY-Platform/photo-picker-api/pkg/configuration"
	"github.com/SENERGY-Platform/photo-picker-api/pkg/models/slog_attr"
	"github.com/SENERGY-Platform/photo-picker-api/pkg/service"
)

var version string

func main() {
	ec := 0
	defer func() {
		os.Exit(ec)
	}()

	srvInfoHdl := srv_info_hdl.New("photo-picker-api", version)

	configuration.ParseFlags()

	config, err := configuration.New(configuration.ConfPath)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		ec = 1
		return
	}

	logger := struct_logger.New(config.Logger, os.Stderr, "", srvInfoHdl.Name())

	logger.Info("starting service", slog_attr.VersionKey, srvInfoHdl.Version(), slog_attr.ConfigValuesKey, sb_config_hdl.StructToMap(config, true))

	ctx, cf := context.WithCancel(context.Background())

	mySQLConnector, err := handler_database.NewConnector(config.Database.MySQL)
	if err != nil {
		logger.Error("creating mysql connector failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}
	sqlDB := helper_sql_db.NewSQLDatabase(mySQLConnector, config.Database.SQL)
	defer sqlDB.Close()

	databaseHdl := handler_database.New(sqlDB)
	err = databaseHdl.Migrate(ctx, handler_database_schema.Init)
	if err != nil {
		logger.Error("database migration failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	fileHdl := handler_fs.New(config.FileHandler)
	if err = fileHdl.Init(); err != nil {
		logger.Error("initializing upload dir failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	service.InitLogger(logger)
	srv := service.New(databaseHdl, fileHdl, config.Service)

	uploadLimiter := helper_ratelimiter.New(config.UploadRateLimit.RPS, config.UploadRateLimit.Burst, config.UploadRateLimit.IdleTTL)

	httpApi, err := api.New(
		srv,
		srvInfoHdl,
		logger,
		uploadLimiter,
		config.HttpApi,
	)
	if err != nil {
		logger.Error("creating http engine failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	httpServer := &http.Server{Handler: httpApi.Handler()}
	serverListener, err := net.Listen("tcp", ":"+strconv.FormatInt(int64(config.ServerPort), 10))
	if err != nil {
		logger.Error("creating server listener failed", slog_attr.ErrorKey, err)
		ec = 1
		return
	}

	go func() {
		helper_os_signal.Wait(ctx, logger, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
		cf()
	}()

	wg := &sync.WaitGroup{}

	go func() {
		logger.Info("starting http server")
		if err := httpServer.Serve(serverListener); !errors.Is(err, http.ErrServerClosed) {
			logger.Error("starting server failed", slog_attr.ErrorKey, err)
			ec = 1
		}
		cf()
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		<-ctx.Done()
		logger.Info("stopping http server")
		ctxWt, cf2 := context.WithTimeout(context.Background(), time.Second*5)
		defer cf2()
		if err := httpServer.Shutdown(ctxWt); err != nil {
			logger.Error("stopping server failed", slog_attr.ErrorKey, err)
			ec = 1
		} else {
			logger.Info("http server stopped")
		}
	}()

	wg.Wait()
}
