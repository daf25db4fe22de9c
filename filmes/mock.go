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

// MockRepository é um mock do Repository baseado em campos de função.
//
// Campos não definidos devolvem valores neutros: lista vazia, resultados
// reconhecidos e nenhum erro.
type MockRepository struct {
	FindFn      func(ctx context.Context, q Query) ([]Filme, error)
	InsertOneFn func(ctx context.Context, f Filme) (InsertResult, error)
	UpdateOneFn func(ctx context.Context, id string, f Filme) (UpdateResult, error)
	DeleteOneFn func(ctx context.Context, id string) (DeleteResult, error)
	PingFn      func(ctx context.Context) error
	CloseFn     func(ctx context.Context) error
}

func (m *MockRepository) Find(ctx context.Context, q Query) ([]Filme, error) {
	if m.FindFn != nil {
		return m.FindFn(ctx, q)
	}
	return []Filme{}, nil
}

func (m *MockRepository) InsertOne(ctx context.Context, f Filme) (InsertResult, error) {
	if m.InsertOneFn != nil {
		return m.InsertOneFn(ctx, f)
	}
	return InsertResult{Acknowledged: true}, nil
}

func (m *MockRepository) UpdateOne(ctx context.Context, id string, f Filme) (UpdateResult, error) {
	if m.UpdateOneFn != nil {
		return m.UpdateOneFn(ctx, id, f)
	}
	return UpdateResult{Acknowledged: true}, nil
}

func (m *MockRepository) DeleteOne(ctx context.Context, id string) (DeleteResult, error) {
	if m.DeleteOneFn != nil {
		return m.DeleteOneFn(ctx, id)
	}
	return DeleteResult{Acknowledged: true}, nil
}

func (m *MockRepository) Ping(ctx context.Context) error {
	if m.PingFn != nil {
		return m.PingFn(ctx)
	}
	return nil
}

func (m *MockRepository) Close(ctx context.Context) error {
	if m.CloseFn != nil {
		return m.CloseFn(ctx)
	}
	return nil
}
