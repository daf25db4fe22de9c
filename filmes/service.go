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
package filmes

import (
	"context"
)

// Service centraliza as operações do recurso de filmes.
// Create e Update validam o documento antes de chegar ao Repository.
type Service struct {
	repo  Repository
	valid *Validator
}

// NewService cria um Service sobre o Repository informado
func NewService(repo Repository) (*Service, error) {
	if repo == nil {
		return nil, ErrNilRepository
	}
	return &Service{
		repo:  repo,
		valid: NewValidator(),
	}, nil
}

// List retorna todos os filmes ordenados por nome.
func (s *Service) List(ctx context.Context) ([]Filme, error) {
	return s.find(ctx, Query{SortByNome: true})
}

// ByUserID retorna os filmes cujo user_id é exatamente o informado.
func (s *Service) ByUserID(ctx context.Context, userID string) ([]Filme, error) {
	return s.find(ctx, Query{UserID: userID})
}

// ByRazao retorna os filmes cuja razao_social contém o texto, ignorando caixa.
func (s *Service) ByRazao(ctx context.Context, razao string) ([]Filme, error) {
	return s.find(ctx, Query{RazaoSocial: razao})
}

func (s *Service) find(ctx context.Context, q Query) ([]Filme, error) {
	docs, err := s.repo.Find(ctx, q)
	if err != nil {
		return nil, &StoreError{Op: "find", Err: err}
	}
	if docs == nil {
		docs = []Filme{}
	}
	return docs, nil
}

// Create valida e insere um novo filme. O identificador é gerado pelo store.
func (s *Service) Create(ctx context.Context, f Filme) (InsertResult, error) {
	f.ID = ""
	f.Normalize()
	if errs := s.valid.Validate(ctx, f); len(errs) > 0 {
		return InsertResult{}, &ValidationError{Errors: errs}
	}

	res, err := s.repo.InsertOne(ctx, f)
	if err != nil {
		return InsertResult{}, &StoreError{Op: "insertOne", Err: err}
	}
	return res, nil
}

// Update valida e altera o filme identificado por id. O _id nunca é sobrescrito.
func (s *Service) Update(ctx context.Context, id string, f Filme) (UpdateResult, error) {
	f.ID = ""
	f.Normalize()
	if errs := s.valid.Validate(ctx, f); len(errs) > 0 {
		return UpdateResult{}, &ValidationError{Errors: errs}
	}

	res, err := s.repo.UpdateOne(ctx, id, f)
	if err != nil {
		return UpdateResult{}, &StoreError{Op: "updateOne", Err: err}
	}
	return res, nil
}

// Delete remove o filme identificado por id. Não há validação do identificador
// além da conversão feita pelo próprio store.
func (s *Service) Delete(ctx context.Context, id string) (DeleteResult, error) {
	res, err := s.repo.DeleteOne(ctx, id)
	if err != nil {
		return DeleteResult{}, &StoreError{Op: "deleteOne", Err: err}
	}
	return res, nil
}

// Ping verifica a conectividade com o store.
func (s *Service) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}
