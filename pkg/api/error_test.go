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
	"errors"
	"fmt"
	"net/http"
	"testing"

	models_error "github.com/SENERGY-Platform/photo-picker-api/pkg/models/error"
)

func TestGetStatusCode(t *testing.T) {
	if c := getStatusCode(models_error.NotFoundErr); c != http.StatusNotFound {
		t.Errorf("expected: %d, got: %d", http.StatusNotFound, c)
	}
	if c := getStatusCode(models_error.InvalidInputErr); c != http.StatusBadRequest {
		t.Errorf("expected: %d, got: %d", http.StatusBadRequest, c)
	}
	if c := getStatusCode(fmt.Errorf("%w: detail", models_error.InvalidInputErr)); c != http.StatusBadRequest {
		t.Errorf("expected: %d, got: %d", http.StatusBadRequest, c)
	}
	if c := getStatusCode(models_error.PayloadSizeErr); c != http.StatusRequestEntityTooLarge {
		t.Errorf("expected: %d, got: %d", http.StatusRequestEntityTooLarge, c)
	}
	if c := getStatusCode(models_error.NewStorageErr(errors.New("test"))); c != http.StatusInternalServerError {
		t.Errorf("expected: %d, got: %d", http.StatusInternalServerError, c)
	}
}
