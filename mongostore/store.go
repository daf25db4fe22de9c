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
// Package mongostore implementa o filmes.Repository sobre o MongoDB.
package mongostore

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"github.com/raywall/filmes-service/filmes"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

// DefaultCollection é o nome da coleção usada quando Config.Collection está vazio.
const DefaultCollection = "filmes"

// Collection abstrai a *mongo.Collection (permite Mocking)
type Collection interface {
	Find(ctx context.Context, filter any, opts ...options.Lister[options.FindOptions]) (*mongo.Cursor, error)
	InsertOne(ctx context.Context, document any, opts ...options.Lister[options.InsertOneOptions]) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter any, update any, opts ...options.Lister[options.UpdateOneOptions]) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error)
}

// Config — configuração da conexão
type Config struct {
	URI            string        `yaml:"uri" env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	Database       string        `yaml:"database" env:"MONGODB_DATABASE"`
	Collection     string        `yaml:"collection" env:"MONGODB_COLLECTION" envDefault:"filmes"`
	ConnectTimeout time.Duration `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
}

// Repository é o filmes.Repository sobre uma coleção do MongoDB.
type Repository struct {
	client *mongo.Client
	coll   Collection
}

// New conecta ao MongoDB e valida a conexão com um ping.
func New(ctx context.Context, cfg Config) (*Repository, error) {
	opts := options.Client().ApplyURI(cfg.URI)
	if cfg.ConnectTimeout > 0 {
		opts.SetConnectTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, fmt.Errorf("mongostore: connect failed: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("mongostore: ping failed: %w", err)
	}

	name := cfg.Collection
	if name == "" {
		name = DefaultCollection
	}

	return &Repository{
		client: client,
		coll:   client.Database(cfg.Database).Collection(name),
	}, nil
}

// NewWithCollection cria o repositório sobre uma Collection já existente.
// Ping e Close viram no-op porque não há cliente associado.
func NewWithCollection(coll Collection) *Repository {
	return &Repository{coll: coll}
}

// Find executa o find com filtro, projeção sem "senha" e ordenação opcional por nome.
func (r *Repository) Find(ctx context.Context, q filmes.Query) ([]filmes.Filme, error) {
	cursor, err := r.coll.Find(ctx, buildFilter(q), findOptions(q))
	if err != nil {
		return nil, fmt.Errorf("mongostore: find failed: %w", err)
	}

	var docs []storedDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("mongostore: decode failed: %w", err)
	}

	result := make([]filmes.Filme, 0, len(docs))
	for _, d := range docs {
		result = append(result, d.toFilme())
	}
	return result, nil
}

// InsertOne grava o documento; o _id é gerado pelo driver.
func (r *Repository) InsertOne(ctx context.Context, f filmes.Filme) (filmes.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, fromFilme(f))
	if err != nil {
		return filmes.InsertResult{}, fmt.Errorf("mongostore: insertOne failed: %w", err)
	}

	out := filmes.InsertResult{Acknowledged: res.Acknowledged}
	if oid, ok := res.InsertedID.(bson.ObjectID); ok {
		out.InsertedID = oid.Hex()
	} else if res.InsertedID != nil {
		out.InsertedID = fmt.Sprint(res.InsertedID)
	}
	return out, nil
}

// UpdateOne aplica $set dos campos no documento com _id igual ao informado.
func (r *Repository) UpdateOne(ctx context.Context, id string, f filmes.Filme) (filmes.UpdateResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return filmes.UpdateResult{}, err
	}

	res, err := r.coll.UpdateOne(ctx, idFilter(oid), bson.D{{Key: "$set", Value: fromFilme(f)}})
	if err != nil {
		return filmes.UpdateResult{}, fmt.Errorf("mongostore: updateOne failed: %w", err)
	}

	out := filmes.UpdateResult{
		Acknowledged:  res.Acknowledged,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
	}
	if upserted, ok := res.UpsertedID.(bson.ObjectID); ok {
		hex := upserted.Hex()
		out.UpsertedID = &hex
	}
	return out, nil
}

// DeleteOne remove o documento com _id igual ao informado.
func (r *Repository) DeleteOne(ctx context.Context, id string) (filmes.DeleteResult, error) {
	oid, err := parseID(id)
	if err != nil {
		return filmes.DeleteResult{}, err
	}

	res, err := r.coll.DeleteOne(ctx, idFilter(oid))
	if err != nil {
		return filmes.DeleteResult{}, fmt.Errorf("mongostore: deleteOne failed: %w", err)
	}
	return filmes.DeleteResult{Acknowledged: res.Acknowledged, DeletedCount: res.DeletedCount}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx, readpref.Primary())
}

func (r *Repository) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}

func buildFilter(q filmes.Query) bson.D {
	filter := bson.D{}
	if q.UserID != "" {
		filter = append(filter, bson.E{Key: "user_id", Value: bson.D{{Key: "$eq", Value: q.UserID}}})
	}
	if q.RazaoSocial != "" {
		// O texto é tratado como literal: metacaracteres não viram expressão regular.
		filter = append(filter, bson.E{Key: "razao_social", Value: bson.Regex{
			Pattern: regexp.QuoteMeta(q.RazaoSocial),
			Options: "i",
		}})
	}
	return filter
}

func findOptions(q filmes.Query) *options.FindOptionsBuilder {
	opts := options.Find().SetProjection(bson.D{{Key: "senha", Value: 0}})
	if q.SortByNome {
		opts.SetSort(bson.D{{Key: "nome", Value: 1}})
	}
	return opts
}

func idFilter(oid bson.ObjectID) bson.D {
	return bson.D{{Key: "_id", Value: bson.D{{Key: "$eq", Value: oid}}}}
}

func parseID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.ObjectID{}, fmt.Errorf("%w: %q", filmes.ErrInvalidID, id)
	}
	return oid, nil
}
