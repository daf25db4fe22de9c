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
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/raywall/filmes-service/filmes"
	"github.com/raywall/filmes-service/pkg/metrics"
	"github.com/rs/zerolog/log"
)

// maxBodyBytes limita o corpo aceito em POST e PUT.
const maxBodyBytes = 1 << 20

const msgListagem = "Erro ao obter a listagem dos filmes"

// errorsResponse é o corpo das respostas com lista de violações.
type errorsResponse struct {
	Errors []filmes.FieldError `json:"errors"`
}

// storeErrorResponse é o corpo das falhas do banco e de panics recuperados.
type storeErrorResponse struct {
	Error string `json:"error"`
}

var bodyError = errorsResponse{Errors: []filmes.FieldError{{
	Msg:      "Corpo da requisição inválido",
	Param:    "body",
	Location: filmes.LocationBody,
}}}

// Handler expõe as operações do filmes.Service via HTTP.
type Handler struct {
	svc     *filmes.Service
	metrics *metrics.Recorder
}

// NewHandler cria o Handler. rec pode ser nil.
func NewHandler(svc *filmes.Service, rec *metrics.Recorder) *Handler {
	return &Handler{svc: svc, metrics: rec}
}

// List devolve todos os filmes ordenados por nome. Qualquer falha do banco
// resulta em 500.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.List(r.Context())
	if err != nil {
		h.logStoreError(r, err)
		writeJSON(w, http.StatusInternalServerError, errorsResponse{Errors: []filmes.FieldError{{
			Value: driverMessage(err),
			Msg:   msgListagem,
			Param: "/",
		}}})
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) ByUserID(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.ByUserID(r.Context(), mux.Vars(r)["user_id"])
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

func (h *Handler) ByRazao(w http.ResponseWriter, r *http.Request) {
	docs, err := h.svc.ByRazao(r.Context(), mux.Vars(r)["razao"])
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, docs)
}

// Create responde 201 com o resultado da inserção ou 400 para documento inválido.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var f filmes.Filme
	if !decodeBody(w, r, &f) {
		return
	}

	res, err := h.svc.Create(r.Context(), f)
	if err != nil {
		h.serviceFailure(w, r, err, "create", http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusCreated, res)
}

// Update extrai o _id do corpo e aplica os demais campos. Documento inválido
// responde 403, mantendo o contrato dos clientes existentes.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req filmes.UpdateRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := h.svc.Update(r.Context(), req.ID, req.Filme)
	if err != nil {
		h.serviceFailure(w, r, err, "update", http.StatusForbidden)
		return
	}
	writeJSON(w, http.StatusAccepted, res)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.Delete(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		h.storeFailure(w, r, err)
		return
	}
	writeJSON(w, http.StatusAccepted, res)
}

// Health verifica a conexão com o banco.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Ping(r.Context()); err != nil {
		log.Ctx(r.Context()).Warn().Err(err).Msg("health check falhou")
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) serviceFailure(w http.ResponseWriter, r *http.Request, err error, op string, invalidStatus int) {
	var verr *filmes.ValidationError
	if errors.As(err, &verr) {
		h.metrics.ValidationFailure(op, len(verr.Errors))
		writeJSON(w, invalidStatus, errorsResponse{Errors: verr.Errors})
		return
	}
	h.storeFailure(w, r, err)
}

func (h *Handler) storeFailure(w http.ResponseWriter, r *http.Request, err error) {
	h.logStoreError(r, err)
	writeJSON(w, http.StatusBadRequest, storeErrorResponse{Error: driverMessage(err)})
}

func (h *Handler) logStoreError(r *http.Request, err error) {
	op := "unknown"
	var serr *filmes.StoreError
	if errors.As(err, &serr) {
		op = serr.Op
	}
	h.metrics.StoreError(op)
	log.Ctx(r.Context()).Error().Err(err).Str("op", op).Msg("falha no banco de dados")
}

// driverMessage devolve a mensagem original do driver, sem o prefixo do serviço.
func driverMessage(err error) string {
	var serr *filmes.StoreError
	if errors.As(err, &serr) && serr.Err != nil {
		return serr.Err.Error()
	}
	return err.Error()
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.Ctx(r.Context()).Debug().Err(err).Msg("corpo JSON inválido")
		writeJSON(w, http.StatusBadRequest, bodyError)
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("falha ao escrever resposta")
	}
}
