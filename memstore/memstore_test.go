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
package memstore

import (
	"context"
	"testing"

	"github.com/raywall/filmes-service/filmes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := New()
	service, err := filmes.NewService(repo)
	require.NoError(t, err)

	for _, nome := range []string{"Tubarão", "Matrix", "Alien"} {
		_, err := service.Create(ctx, filmes.Filme{Genero: "Ação", Nome: nome, Diretor: "Fulano", Ano: "1999", Nota: "9"})
		require.NoError(t, err)
	}

	docs, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "Alien", docs[0].Nome)
	assert.Equal(t, "Matrix", docs[1].Nome)
	assert.Equal(t, "Tubarão", docs[2].Nome)
	assert.NotEmpty(t, docs[1].ID)
}

func TestRepository_UpdateKeepsID(t *testing.T) {
	ctx := context.Background()
	repo := New()

	ins, err := repo.InsertOne(ctx, filmes.Filme{Genero: "Ação", Nome: "Matrix", UserID: "u1"})
	require.NoError(t, err)

	res, err := repo.UpdateOne(ctx, ins.InsertedID, filmes.Filme{ID: "outro", Genero: "Drama", Nome: "Matrix"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Equal(t, int64(1), res.ModifiedCount)

	docs, _ := repo.Find(ctx, filmes.Query{UserID: "u1"})
	require.Len(t, docs, 1)
	assert.Equal(t, ins.InsertedID, docs[0].ID)
	assert.Equal(t, "Drama", docs[0].Genero)

	res, err = repo.UpdateOne(ctx, "nao-existe", filmes.Filme{Nome: "x"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.MatchedCount)
}

func TestRepository_FindByRazao(t *testing.T) {
	ctx := context.Background()
	repo := New()
	_, _ = repo.InsertOne(ctx, filmes.Filme{Nome: "A", RazaoSocial: "Acme Filmes LTDA"})
	_, _ = repo.InsertOne(ctx, filmes.Filme{Nome: "B", RazaoSocial: "Outra SA"})

	docs, err := repo.Find(ctx, filmes.Query{RazaoSocial: "filmes"})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "A", docs[0].Nome)
}

func TestRepository_DeleteMissing(t *testing.T) {
	res, err := New().DeleteOne(context.Background(), "nao-existe")
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Equal(t, int64(0), res.DeletedCount)
}
