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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewService_NilRepository(t *testing.T) {
	_, err := NewService(nil)
	assert.ErrorIs(t, err, ErrNilRepository)
}

func TestService_List(t *testing.T) {
	var got Query
	repo := &MockRepository{
		FindFn: func(ctx context.Context, q Query) ([]Filme, error) {
			got = q
			return nil, nil
		},
	}
	service, err := NewService(repo)
	require.NoError(t, err)

	docs, err := service.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
	assert.Equal(t, Query{SortByNome: true}, got)
}

func TestService_Filters(t *testing.T) {
	var queries []Query
	repo := &MockRepository{
		FindFn: func(ctx context.Context, q Query) ([]Filme, error) {
			queries = append(queries, q)
			return []Filme{validFilme()}, nil
		},
	}
	service, _ := NewService(repo)

	_, err := service.ByUserID(context.Background(), "u-1")
	require.NoError(t, err)
	_, err = service.ByRazao(context.Background(), "acme")
	require.NoError(t, err)

	assert.Equal(t, []Query{{UserID: "u-1"}, {RazaoSocial: "acme"}}, queries)
}

func TestService_FindError(t *testing.T) {
	boom := errors.New("boom")
	repo := &MockRepository{
		FindFn: func(ctx context.Context, q Query) ([]Filme, error) { return nil, boom },
	}
	service, _ := NewService(repo)

	_, err := service.List(context.Background())

	var serr *StoreError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, "find", serr.Op)
	assert.ErrorIs(t, err, boom)
}

func TestService_Create(t *testing.T) {
	t.Run("documento inválido não chega ao store", func(t *testing.T) {
		called := false
		repo := &MockRepository{
			InsertOneFn: func(ctx context.Context, f Filme) (InsertResult, error) {
				called = true
				return InsertResult{}, nil
			},
		}
		service, _ := NewService(repo)

		f := validFilme()
		f.Diretor = ""
		_, err := service.Create(context.Background(), f)

		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.NotEmpty(t, verr.Errors)
		assert.False(t, called)
	})

	t.Run("documento válido é gravado já normalizado", func(t *testing.T) {
		var stored Filme
		repo := &MockRepository{
			InsertOneFn: func(ctx context.Context, f Filme) (InsertResult, error) {
				stored = f
				return InsertResult{Acknowledged: true, InsertedID: "abc"}, nil
			},
		}
		service, _ := NewService(repo)

		f := validFilme()
		f.ID = "cliente-nao-escolhe"
		f.Nome = "  Matrix  "
		res, err := service.Create(context.Background(), f)

		require.NoError(t, err)
		assert.Equal(t, "abc", res.InsertedID)
		assert.Equal(t, "Matrix", stored.Nome)
		assert.Empty(t, stored.ID)
	})

	t.Run("falha do store", func(t *testing.T) {
		repo := &MockRepository{
			InsertOneFn: func(ctx context.Context, f Filme) (InsertResult, error) {
				return InsertResult{}, errors.New("duplicate key")
			},
		}
		service, _ := NewService(repo)

		_, err := service.Create(context.Background(), validFilme())
		var serr *StoreError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, "insertOne", serr.Op)
	})
}

func TestService_Update(t *testing.T) {
	var gotID string
	var gotDoc Filme
	repo := &MockRepository{
		UpdateOneFn: func(ctx context.Context, id string, f Filme) (UpdateResult, error) {
			gotID, gotDoc = id, f
			return UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	service, _ := NewService(repo)

	f := validFilme()
	f.ID = "outro"
	f.Genero = "Drama"
	res, err := service.Update(context.Background(), "X", f)

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, "X", gotID)
	assert.Empty(t, gotDoc.ID)
	assert.Equal(t, "Drama", gotDoc.Genero)

	t.Run("inválido", func(t *testing.T) {
		f := validFilme()
		f.Genero = "Romance"
		_, err := service.Update(context.Background(), "X", f)
		var verr *ValidationError
		assert.ErrorAs(t, err, &verr)
	})
}

func TestService_Delete(t *testing.T) {
	repo := &MockRepository{
		DeleteOneFn: func(ctx context.Context, id string) (DeleteResult, error) {
			if id == "bad" {
				return DeleteResult{}, ErrInvalidID
			}
			return DeleteResult{Acknowledged: true}, nil
		},
	}
	service, _ := NewService(repo)

	res, err := service.Delete(context.Background(), "inexistente")
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)

	_, err = service.Delete(context.Background(), "bad")
	assert.ErrorIs(t, err, ErrInvalidID)
}
