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
package transport

import (
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/mux"
	"github.com/raywall/filmes-service/pkg/metrics"
)

// RouterConfig agrupa o necessário para montar as rotas do recurso.
type RouterConfig struct {
	BasePath string
	Timeout  time.Duration
	Metrics  *metrics.Recorder
}

// NewRouter registra as rotas de filmes sob BasePath. A rota da coleção
// responde com e sem a barra final.
func NewRouter(cfg RouterConfig, h *Handler) *mux.Router {
	base := strings.TrimRight(cfg.BasePath, "/")

	r := mux.NewRouter()
	r.Use(ObservabilityMiddleware(cfg.Metrics), RecoveryMiddleware, TimeoutMiddleware(cfg.Timeout))

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)

	for _, collection := range []string{base, base + "/"} {
		if collection == "" {
			continue
		}
		r.HandleFunc(collection, h.List).Methods(http.MethodGet)
		r.HandleFunc(collection, h.Create).Methods(http.MethodPost)
		r.HandleFunc(collection, h.Update).Methods(http.MethodPut)
	}

	r.HandleFunc(base+"/user_id/{user_id}", h.ByUserID).Methods(http.MethodGet)
	r.HandleFunc(base+"/razao/{razao}", h.ByRazao).Methods(http.MethodGet)
	r.HandleFunc(base+"/{id}", h.Delete).Methods(http.MethodDelete)

	return r
}
