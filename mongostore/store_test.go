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
package mongostore

import (
	"context"
	"errors"
	"testing"

	"github.com/raywall/filmes-service/filmes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// MockCollection é um mock para a interface Collection
type MockCollection struct {
	mock.Mock
}

func (m *MockCollection) Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.Cursor), args.Error(1)
}

func (m *MockCollection) InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error) {
	args := m.Called(ctx, document)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.InsertOneResult), args.Error(1)
}

func (m *MockCollection) UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error) {
	args := m.Called(ctx, filter, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.UpdateResult), args.Error(1)
}

func (m *MockCollection) DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.DeleteResult), args.Error(1)
}

func TestBuildFilter(t *testing.T) {
	t.Run("sem filtros", func(t *testing.T) {
		assert.Equal(t, bson.D{}, buildFilter(filmes.Query{SortByNome: true}))
	})

	t.Run("user_id por igualdade", func(t *testing.T) {
		got := buildFilter(filmes.Query{UserID: "42"})
		assert.Equal(t, bson.D{{Key: "user_id", Value: bson.D{{Key: "$eq", Value: "42"}}}}, got)
	})

	t.Run("razao_social como substring literal e case-insensitive", func(t *testing.T) {
		got := buildFilter(filmes.Query{RazaoSocial: "acme.(br)"})
		require.Len(t, got, 1)
		assert.Equal(t, "razao_social", got[0].Key)
		assert.Equal(t, bson.Regex{Pattern: `acme\.\(br\)`, Options: "i"}, got[0].Value)
	})
}

func TestParseID(t *testing.T) {
	oid := bson.NewObjectID()

	got, err := parseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)

	_, err = parseID("nao-e-um-id")
	assert.ErrorIs(t, err, filmes.ErrInvalidID)
}

func TestStoredDocument_ToFilme(t *testing.T) {
	oid := bson.NewObjectID()

	t.Run("ano e nota numéricos viram texto", func(t *testing.T) {
		raw, err := bson.Marshal(bson.D{
			{Key: "_id", Value: oid},
			{Key: "nome", Value: "Matrix"},
			{Key: "diretor", Value: "Wachowski"},
			{Key: "genero", Value: "Ação"},
			{Key: "ano", Value: int32(1999)},
			{Key: "nota", Value: 9.5},
			{Key: "senha", Value: "segredo"},
		})
		require.NoError(t, err)

		var doc storedDocument
		require.NoError(t, bson.Unmarshal(raw, &doc))

		f := doc.toFilme()
		assert.Equal(t, oid.Hex(), f.ID)
		assert.Equal(t, filmes.NumericText("1999"), f.Ano)
		assert.Equal(t, filmes.NumericText("9.5"), f.Nota)
		assert.Equal(t, "Matrix", f.Nome)
	})

	t.Run("campos ausentes ficam vazios", func(t *testing.T) {
		raw, err := bson.Marshal(bson.D{{Key: "_id", Value: oid}, {Key: "nome", Value: "Alien"}})
		require.NoError(t, err)

		var doc storedDocument
		require.NoError(t, bson.Unmarshal(raw, &doc))

		f := doc.toFilme()
		assert.Empty(t, f.Ano)
		assert.Empty(t, f.Nota)
	})
}

func TestRepository_Find(t *testing.T) {
	coll := &MockCollection{}
	repo := NewWithCollection(coll)

	oid := bson.NewObjectID()
	cursor, err := mongo.NewCursorFromDocuments([]any{
		bson.D{{Key: "_id", Value: oid}, {Key: "nome", Value: "Alien"}, {Key: "ano", Value: "1979"}},
	}, nil, nil)
	require.NoError(t, err)

	coll.On("Find", mock.Anything, bson.D{}).Return(cursor, nil)

	docs, err := repo.Find(context.Background(), filmes.Query{SortByNome: true})
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, oid.Hex(), docs[0].ID)
	assert.Equal(t, filmes.NumericText("1979"), docs[0].Ano)
	coll.AssertExpectations(t)
}

func TestRepository_Find_Error(t *testing.T) {
	coll := &MockCollection{}
	repo := NewWithCollection(coll)

	coll.On("Find", mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	_, err := repo.Find(context.Background(), filmes.Query{UserID: "1"})
	assert.ErrorContains(t, err, "connection refused")
}

func TestRepository_InsertOne(t *testing.T) {
	coll := &MockCollection{}
	repo := NewWithCollection(coll)
	oid := bson.NewObjectID()

	f := filmes.Filme{Genero: "Ação", Nome: "Matrix", Diretor: "Wachowski", Ano: "1999", Nota: "9"}
	coll.On("InsertOne", mock.Anything, fromFilme(f)).
		Return(&mongo.InsertOneResult{InsertedID: oid, Acknowledged: true}, nil)

	res, err := repo.InsertOne(context.Background(), f)
	require.NoError(t, err)
	assert.True(t, res.Acknowledged)
	assert.Equal(t, oid.Hex(), res.InsertedID)
}

func TestRepository_UpdateOne(t *testing.T) {
	coll := &MockCollection{}
	repo := NewWithCollection(coll)
	oid := bson.NewObjectID()

	f := filmes.Filme{ID: "ignorado", Genero: "Drama", Nome: "Matrix", Diretor: "Wachowski", Ano: "1999", Nota: "9"}
	update := bson.D{{Key: "$set", Value: fromFilme(f)}}
	coll.On("UpdateOne", mock.Anything, idFilter(oid), update).
		Return(&mongo.UpdateResult{MatchedCount: 1, ModifiedCount: 1, Acknowledged: true}, nil)

	res, err := repo.UpdateOne(context.Background(), oid.Hex(), f)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.MatchedCount)
	assert.Nil(t, res.UpsertedID)

	t.Run("identificador inválido não chega ao driver", func(t *testing.T) {
		_, err := repo.UpdateOne(context.Background(), "xyz", f)
		assert.ErrorIs(t, err, filmes.ErrInvalidID)
	})
	coll.AssertNumberOfCalls(t, "UpdateOne", 1)
}

func TestRepository_DeleteOne(t *testing.T) {
	coll := &MockCollection{}
	repo := NewWithCollection(coll)
	oid := bson.NewObjectID()

	coll.On("DeleteOne", mock.Anything, idFilter(oid)).
		Return(&mongo.DeleteResult{DeletedCount: 0, Acknowledged: true}, nil)

	res, err := repo.DeleteOne(context.Background(), oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)
	assert.True(t, res.Acknowledged)
}
