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
	"sort"

	models_api "github.com/SENERGY-Platform/photo-picker-api/pkg/models/api"
	"github.com/gin-gonic/gin"
)

const imgParam = "i"

func setRoutes(a *Api, e *gin.Engine) [][2]string {
	e.GET("/", getInfoH(a))
	e.POST("/"+models_api.UploadPath, limitUploadH(a), postUploadH(a))
	e.GET("/"+models_api.ImagesPath, getImagesH(a))
	e.GET("/"+models_api.ImagesPath+"/:"+imgParam, getImageFileH(a))
	e.PATCH("/"+models_api.ImagesPath+"/:"+imgParam, patchImageH(a))
	e.DELETE("/"+models_api.ImagesPath+"/:"+imgParam, deleteImageH(a))
	e.GET("/"+models_api.HealthCheckPath, getHealthH(a))
	routes := e.Routes()
	sort.Slice(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
	var rInfo [][2]string
	for _, info := range routes {
		rInfo = append(rInfo, [2]string{info.Method, info.Path})
	}
	return rInfo
}
