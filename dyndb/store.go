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
package dyndb

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/google/uuid"
	"github.com/raywall/filmes-service/filmes"
)

// Store é o filmes.Repository sobre uma tabela do DynamoDB.
type Store struct {
	client DynamoDBClient
	cfg    TableConfig
	newID  func() string
}

// New cria um store reutilizável
func New(client DynamoDBClient, cfg TableConfig) *Store {
	if cfg.TableName == "" {
		cfg.TableName = "filmes"
	}
	return &Store{
		client: client,
		cfg:    cfg,
		newID:  uuid.NewString,
	}
}

// Find lê a tabela aplicando os filtros da query.
func (s *Store) Find(ctx context.Context, q filmes.Query) ([]filmes.Filme, error) {
	scan := s.Scan()
	if q.UserID != "" {
		scan.FilterEqual("user_id", q.UserID)
	}
	if q.RazaoSocial != "" {
		scan.FilterContains(searchAttribute, strings.ToLower(q.RazaoSocial))
	}

	items, err := scan.Exec(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]filmes.Filme, 0, len(items))
	for _, it := range items {
		result = append(result, it.toFilme())
	}
	if q.SortByNome {
		slices.SortStableFunc(result, func(a, b filmes.Filme) int {
			return strings.Compare(a.Nome, b.Nome)
		})
	}
	return result, nil
}

// InsertOne grava o filme com um novo _id
func (s *Store) InsertOne(ctx context.Context, f filmes.Filme) (filmes.InsertResult, error) {
	it := toItem(s.newID(), f)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return filmes.InsertResult{}, fmt.Errorf("dyndb: marshal failed: %w", err)
	}

	expr, err := expression.NewBuilder().
		WithCondition(expression.AttributeNotExists(expression.Name(KeyAttribute))).
		Build()
	if err != nil {
		return filmes.InsertResult{}, fmt.Errorf("dyndb: expression build failed: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(s.cfg.TableName),
		Item:                     av,
		ConditionExpression:      expr.Condition(),
		ExpressionAttributeNames: expr.Names(),
	})
	if err != nil {
		return filmes.InsertResult{}, fmt.Errorf("dyndb: put failed: %w", err)
	}
	return filmes.InsertResult{Acknowledged: true, InsertedID: it.ID}, nil
}

// UpdateOne aplica SET nos campos do filme identificado por id.
func (s *Store) UpdateOne(ctx context.Context, id string, f filmes.Filme) (filmes.UpdateResult, error) {
	if err := parseID(id); err != nil {
		return filmes.UpdateResult{}, err
	}

	next := toItem(id, f)
	update := expression.Set(expression.Name("genero"), expression.Value(next.Genero)).
		Set(expression.Name("nome"), expression.Value(next.Nome)).
		Set(expression.Name("diretor"), expression.Value(next.Diretor)).
		Set(expression.Name("ano"), expression.Value(next.Ano)).
		Set(expression.Name("nota"), expression.Value(next.Nota))
	if next.UserID != "" {
		update = update.Set(expression.Name("user_id"), expression.Value(next.UserID))
	}
	if next.RazaoSocial != "" {
		update = update.
			Set(expression.Name("razao_social"), expression.Value(next.RazaoSocial)).
			Set(expression.Name(searchAttribute), expression.Value(next.RazaoBusca))
	}

	expr, err := expression.NewBuilder().
		WithUpdate(update).
		WithCondition(expression.AttributeExists(expression.Name(KeyAttribute))).
		Build()
	if err != nil {
		return filmes.UpdateResult{}, fmt.Errorf("dyndb: expression build failed: %w", err)
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Key:                       key(id),
		UpdateExpression:          expr.Update(),
		ConditionExpression:       expr.Condition(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ReturnValues:              types.ReturnValueAllOld,
	})
	if err != nil {
		var notFound *types.ConditionalCheckFailedException
		if errors.As(err, &notFound) {
			return filmes.UpdateResult{Acknowledged: true}, nil
		}
		return filmes.UpdateResult{}, fmt.Errorf("dyndb: update failed: %w", err)
	}

	var old item
	if err := attributevalue.UnmarshalMap(out.Attributes, &old); err != nil {
		return filmes.UpdateResult{}, fmt.Errorf("dyndb: unmarshal failed: %w", err)
	}
	if next.UserID == "" {
		next.UserID = old.UserID
	}
	if next.RazaoSocial == "" {
		next.RazaoSocial, next.RazaoBusca = old.RazaoSocial, old.RazaoBusca
	}

	res := filmes.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if old != next {
		res.ModifiedCount = 1
	}
	return res, nil
}

// DeleteOne remove o item; ids inexistentes resultam em deletedCount 0
func (s *Store) DeleteOne(ctx context.Context, id string) (filmes.DeleteResult, error) {
	if err := parseID(id); err != nil {
		return filmes.DeleteResult{}, err
	}

	out, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:    aws.String(s.cfg.TableName),
		Key:          key(id),
		ReturnValues: types.ReturnValueAllOld,
	})
	if err != nil {
		return filmes.DeleteResult{}, fmt.Errorf("dyndb: delete failed: %w", err)
	}

	res := filmes.DeleteResult{Acknowledged: true}
	if len(out.Attributes) > 0 {
		res.DeletedCount = 1
	}
	return res, nil
}

// Ping confirma que a tabela existe e está acessível
func (s *Store) Ping(ctx context.Context) error {
	_, err := s.client.DescribeTable(ctx, &dynamodb.DescribeTableInput{
		TableName: aws.String(s.cfg.TableName),
	})
	if err != nil {
		return fmt.Errorf("dyndb: describe table failed: %w", err)
	}
	return nil
}

func (s *Store) Close(context.Context) error { return nil }

func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", filmes.ErrInvalidID, id)
	}
	return nil
}

func key(id string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		KeyAttribute: &types.AttributeValueMemberS{Value: id},
	}
}

func toItem(id string, f filmes.Filme) item {
	return item{
		ID:          id,
		Genero:      f.Genero,
		Nome:        f.Nome,
		Diretor:     f.Diretor,
		Ano:         string(f.Ano),
		Nota:        string(f.Nota),
		UserID:      f.UserID,
		RazaoSocial: f.RazaoSocial,
		RazaoBusca:  strings.ToLower(f.RazaoSocial),
	}
}

func (it item) toFilme() filmes.Filme {
	return filmes.Filme{
		ID:          it.ID,
		Genero:      it.Genero,
		Nome:        it.Nome,
		Diretor:     it.Diretor,
		Ano:         filmes.NumericText(it.Ano),
		Nota:        filmes.NumericText(it.Nota),
		UserID:      it.UserID,
		RazaoSocial: it.RazaoSocial,
	}
}
