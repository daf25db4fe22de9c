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
// Package memstore implementa o filmes.Repository em memória.
// Útil para desenvolvimento local (store.driver: memory) e testes de ponta a ponta.
package memstore

import (
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/raywall/filmes-service/filmes"
)

// Repository guarda os documentos em um mapa protegido por RWMutex.
type Repository struct {
	sync.RWMutex
	data map[string]filmes.Filme
}

// New cria um repositório vazio.
func New() *Repository {
	return &Repository{data: map[string]filmes.Filme{}}
}

// Find aplica os filtros da query sobre uma cópia dos documentos.
func (r *Repository) Find(_ context.Context, q filmes.Query) ([]filmes.Filme, error) {
	r.RLock()
	defer r.RUnlock()

	razao := strings.ToLower(q.RazaoSocial)
	result := make([]filmes.Filme, 0, len(r.data))
	for _, f := range r.data {
		if q.UserID != "" && f.UserID != q.UserID {
			continue
		}
		if razao != "" && !strings.Contains(strings.ToLower(f.RazaoSocial), razao) {
			continue
		}
		result = append(result, f)
	}

	if q.SortByNome {
		slices.SortStableFunc(result, func(a, b filmes.Filme) int {
			return strings.Compare(a.Nome, b.Nome)
		})
	}
	return result, nil
}

// InsertOne grava o documento com um novo identificador.
func (r *Repository) InsertOne(_ context.Context, f filmes.Filme) (filmes.InsertResult, error) {
	r.Lock()
	defer r.Unlock()

	f.ID = uuid.NewString()
	r.data[f.ID] = f
	return filmes.InsertResult{Acknowledged: true, InsertedID: f.ID}, nil
}

// UpdateOne substitui os campos do documento mantendo o identificador.
func (r *Repository) UpdateOne(_ context.Context, id string, f filmes.Filme) (filmes.UpdateResult, error) {
	r.Lock()
	defer r.Unlock()

	existing, ok := r.data[id]
	if !ok {
		return filmes.UpdateResult{Acknowledged: true}, nil
	}

	f.ID = id
	if f.UserID == "" {
		f.UserID = existing.UserID
	}
	if f.RazaoSocial == "" {
		f.RazaoSocial = existing.RazaoSocial
	}

	var modified int64
	if f != existing {
		modified = 1
	}
	r.data[id] = f
	return filmes.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: modified}, nil
}

// DeleteOne remove o documento; identificadores inexistentes resultam em zero exclusões.
func (r *Repository) DeleteOne(_ context.Context, id string) (filmes.DeleteResult, error) {
	r.Lock()
	defer r.Unlock()

	if _, ok := r.data[id]; !ok {
		return filmes.DeleteResult{Acknowledged: true}, nil
	}
	delete(r.data, id)
	return filmes.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (r *Repository) Ping(context.Context) error  { return nil }
func (r *Repository) Close(context.Context) error { return nil }
