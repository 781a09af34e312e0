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

const (
	HeaderRequestID = "X-Request-ID"
	HeaderApiVer    = "X-Api-Version"
	HeaderSrvName   = "X-Service"
)

const (
	UploadPath      = "upload"
	ImagesPath      = "images"
	HealthCheckPath = "health"
)

const (
	UploadFormFileKey        = "image"
	UploadFormDescriptionKey = "description"
)

type ImageItem struct {
	ID          string `json:"id"`
	URL         string `json:"url"`
	Description string `json:"description"`
	UploadDate  string `json:"uploadDate"`
	FileSize    int64  `json:"fileSize"`
	MimeType    string `json:"mimeType"`
}

type ImagesResponse struct {
	Success bool        `json:"success"`
	Images  []ImageItem `json:"images"`
}

type UploadResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	ImageID  string `json:"imageId"`
	ImageURL string `json:"imageUrl"`
	Filename string `json:"filename"`
}

type ImageUpdateRequest struct {
	Description string `json:"description"`
}

type InfoResponse struct {
	Message   string `json:"message"`
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
}

type HealthResponse struct {
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	Database    string `json:"database"`
	Environment string `json:"environment"`
}
