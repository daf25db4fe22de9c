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
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
)

// Recorder traduz eventos do serviço em chamadas ao Provider.
// Falhas de envio nunca interrompem a requisição, apenas são logadas.
type Recorder struct {
	provider Provider
	tags     []string
}

// NewRecorder cria um Recorder; tags são anexadas a todas as métricas.
func NewRecorder(provider Provider, tags ...string) *Recorder {
	return &Recorder{provider: provider, tags: tags}
}

// ObserveRequest registra contagem e latência de uma requisição HTTP.
func (r *Recorder) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	if r == nil || r.provider == nil {
		return
	}
	tags := r.with("method:"+method, "route:"+route, "status:"+strconv.Itoa(status))
	r.report(MetricRequests, r.provider.Count(MetricRequests, 1, tags))
	r.report(MetricRequestLatency, r.provider.Histogram(MetricRequestLatency, float64(elapsed.Milliseconds()), tags))
}

// StoreError registra uma falha do banco na operação op.
func (r *Recorder) StoreError(op string) {
	if r == nil || r.provider == nil {
		return
	}
	r.report(MetricStoreErrors, r.provider.Count(MetricStoreErrors, 1, r.with("op:"+op)))
}

// ValidationFailure registra quantas regras falharam na operação op.
func (r *Recorder) ValidationFailure(op string, violations int) {
	if r == nil || r.provider == nil {
		return
	}
	r.report(MetricValidationErrors, r.provider.Count(MetricValidationErrors, float64(violations), r.with("op:"+op)))
}

func (r *Recorder) with(extra ...string) []string {
	tags := make([]string, 0, len(r.tags)+len(extra))
	tags = append(tags, r.tags...)
	return append(tags, extra...)
}

func (r *Recorder) report(name string, err error) {
	if err != nil {
		log.Warn().Err(err).Str("metric", name).Msg("falha ao enviar métrica")
	}
}
