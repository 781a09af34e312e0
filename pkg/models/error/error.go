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

package error

import "errors"

var NotFoundErr = errors.New("not found")

var InvalidInputErr = errors.New("invalid input")

var PayloadSizeErr = errors.New("payload too large")

type StorageErr struct {
	err error
}

func NewStorageErr(err error) *StorageErr {
	return &StorageErr{err: err}
}

func (e *StorageErr) Error() string {
	return e.err.Error()
}

func (e *StorageErr) Unwrap() error {
	return e.err
}

type FileErr struct {
	Name string
	err  error
}

func NewFileErr(name string, err error) *FileErr {
	return &FileErr{
		Name: name,
		err:  err,
	}
}

func (e *FileErr) Error() string {
	return e.err.Error()
}

func (e *FileErr) Unwrap() error {
	return e.err
}
