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
package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type call struct {
	Type  string
	Name  string
	Value float64
	Tags  []string
}

// MockProvider para verificar chamadas
type MockProvider struct {
	Calls []call
	Err   error
}

func (m *MockProvider) Count(name string, val float64, tags []string) error {
	m.Calls = append(m.Calls, call{"count", name, val, tags})
	return m.Err
}

func (m *MockProvider) Gauge(name string, val float64, tags []string) error {
	m.Calls = append(m.Calls, call{"gauge", name, val, tags})
	return m.Err
}

func (m *MockProvider) Histogram(name string, val float64, tags []string) error {
	m.Calls = append(m.Calls, call{"histogram", name, val, tags})
	return m.Err
}

func (m *MockProvider) Close() error { return nil }

func TestRecorder_ObserveRequest(t *testing.T) {
	provider := &MockProvider{}
	rec := NewRecorder(provider, "service:filmes")

	rec.ObserveRequest("POST", "/api/filmes/", 201, 15*time.Millisecond)

	if assert.Len(t, provider.Calls, 2) {
		assert.Equal(t, call{"count", MetricRequests, 1, []string{"service:filmes", "method:POST", "route:/api/filmes/", "status:201"}}, provider.Calls[0])
		assert.Equal(t, "histogram", provider.Calls[1].Type)
		assert.Equal(t, MetricRequestLatency, provider.Calls[1].Name)
		assert.Equal(t, float64(15), provider.Calls[1].Value)
	}
}

func TestRecorder_StoreAndValidation(t *testing.T) {
	provider := &MockProvider{}
	rec := NewRecorder(provider)

	rec.StoreError("insertOne")
	rec.ValidationFailure("update", 3)

	assert.Equal(t, []call{
		{"count", MetricStoreErrors, 1, []string{"op:insertOne"}},
		{"count", MetricValidationErrors, 3, []string{"op:update"}},
	}, provider.Calls)
}

func TestRecorder_ProviderErrorIsIgnored(t *testing.T) {
	provider := &MockProvider{Err: errors.New("statsd offline")}
	rec := NewRecorder(provider)

	assert.NotPanics(t, func() { rec.StoreError("find") })
	assert.Len(t, provider.Calls, 1)
}

func TestRecorder_Nil(t *testing.T) {
	var rec *Recorder
	assert.NotPanics(t, func() {
		rec.ObserveRequest("GET", "/", 200, time.Millisecond)
		rec.StoreError("find")
		rec.ValidationFailure("create", 1)
	})
}
