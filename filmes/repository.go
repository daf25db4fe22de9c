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

import "context"

// Query descreve os filtros suportados pelo Find.
//
// UserID é comparado por igualdade exata. RazaoSocial é uma busca por substring
// sem distinção de maiúsculas/minúsculas. Campos vazios não filtram.
type Query struct {
	UserID      string
	RazaoSocial string
	SortByNome  bool
}

// Repository é o contrato do document store para a coleção de filmes.
// A conversão do identificador em string para o formato nativo do store é
// responsabilidade da implementação, que devolve ErrInvalidID quando não for possível.
type Repository interface {
	Find(ctx context.Context, q Query) ([]Filme, error)
	InsertOne(ctx context.Context, f Filme) (InsertResult, error)
	UpdateOne(ctx context.Context, id string, f Filme) (UpdateResult, error)
	DeleteOne(ctx context.Context, id string) (DeleteResult, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}
