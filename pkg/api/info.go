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
	"net/http"
	"time"

	models_api "github.com/SENERGY-Platform/photo-picker-api/pkg/models/api"
	"github.com/gin-gonic/gin"
)

func getInfoH(a *Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		gc.JSON(http.StatusOK, models_api.InfoResponse{
			Message:   a.infoHdl.Name() + " " + a.infoHdl.Version() + " is running",
			Status:    "success",
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		})
	}
}

func getHealthH(a *Api) gin.HandlerFunc {
	return func(gc *gin.Context) {
		info := a.service.HealthInfo(gc.Request.Context())
		dbStatus := "connected"
		status := "healthy"
		if !info.Database {
			dbStatus = "disconnected"
			status = "degraded"
		}
		gc.JSON(http.StatusOK, models_api.HealthResponse{
			Status:      status,
			Timestamp:   info.Timestamp.Format(time.RFC3339Nano),
			Database:    dbStatus,
			Environment: info.Environment,
		})
	}
}
