// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package logger

import (
	"bytes"
	"testing"

	"github.com/raywall/filmes-service/pkg/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestConfigure(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	t.Run("Default Level Info", func(t *testing.T) {
		_ = New(config.LoggingConf{}, &bytes.Buffer{})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("Custom Level Debug", func(t *testing.T) {
		_ = New(config.LoggingConf{Level: "DEBUG"}, &bytes.Buffer{})
		assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
	})

	t.Run("Invalid Level falls back to Info", func(t *testing.T) {
		_ = New(config.LoggingConf{Level: "verbose"}, &bytes.Buffer{})
		assert.Equal(t, zerolog.InfoLevel, zerolog.GlobalLevel())
	})

	t.Run("JSON output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(config.LoggingConf{Level: "info", Format: "json"}, buf)
		logger.Info().Str("colecao", "filmes").Msg("teste")

		assert.Contains(t, buf.String(), `"colecao":"filmes"`)
		assert.Contains(t, buf.String(), `"message":"teste"`)
	})

	t.Run("Console output", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(config.LoggingConf{Level: "info", Format: "console"}, buf)
		logger.Info().Msg("teste")

		assert.Contains(t, buf.String(), "teste")
		assert.NotContains(t, buf.String(), `"message"`)
	})

	t.Run("Disabled Logger", func(t *testing.T) {
		buf := &bytes.Buffer{}
		logger := New(config.LoggingConf{Level: "disabled"}, buf)
		logger.Error().Msg("teste")

		assert.Empty(t, buf.String())
	})
}
