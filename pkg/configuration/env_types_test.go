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
	"reflect"
	"testing"
	"time"

	envldr "github.com/SENERGY-Platform/go-env-loader"
)

func TestDurationEnvTypeParser(t *testing.T) {
	typ, parser := envTypeParser[0]()
	if typ != reflect.TypeOf(time.Duration(0)) || envldr.Parser(parser) == nil {
		t.Fatal("missing duration parser")
	}
	t.Run("duration string", func(t *testing.T) {
		v, err := parser(reflect.TypeOf(time.Duration(0)), "30s", nil, nil)
		if err != nil {
			t.Error(err)
		}
		if v != time.Second*30 {
			t.Errorf("expected: %s, got: %v", time.Second*30, v)
		}
	})
	t.Run("nanosecond int", func(t *testing.T) {
		v, err := parser(reflect.TypeOf(time.Duration(0)), "1000000000", nil, nil)
		if err != nil {
			t.Error(err)
		}
		if v != time.Second {
			t.Errorf("expected: %s, got: %v", time.Second, v)
		}
	})
	t.Run("error", func(t *testing.T) {
		_, err := parser(reflect.TypeOf(time.Duration(0)), "test", nil, nil)
		if err == nil {
			t.Error("expected error")
		}
	})
}
