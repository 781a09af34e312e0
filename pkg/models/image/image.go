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

package image

import "time"

type ImageBase struct {
	ID          string
	Filename    string
	Description string
	MimeType    string
	FileSize    int64
}

type Image struct {
	ImageBase
	URL      string
	Uploaded time.Time
}

type ImageFilter struct {
	MimeType string
}

type UploadResult struct {
	ID       string
	Filename string
	URL      string
}

type HealthInfo struct {
	Database    bool
	Environment string
	Timestamp   time.Time
}

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"
)
