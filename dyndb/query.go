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
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// ScanBuilder — builder fluente do Scan
type ScanBuilder struct {
	store      *Store
	filterCond *expression.ConditionBuilder
	projection *expression.ProjectionBuilder
}

// Scan inicia um Scan projetando apenas os atributos do filme
func (s *Store) Scan() *ScanBuilder {
	names := make([]expression.NameBuilder, 0, len(projectedAttributes))
	for _, attr := range projectedAttributes {
		names = append(names, expression.Name(attr))
	}
	proj := expression.NamesList(names[0], names[1:]...)

	return &ScanBuilder{
		store:      s,
		projection: &proj,
	}
}

func (sb *ScanBuilder) and(cond expression.ConditionBuilder) *ScanBuilder {
	if sb.filterCond == nil {
		sb.filterCond = &cond
	} else {
		tmp := sb.filterCond.And(cond)
		sb.filterCond = &tmp
	}
	return sb
}

func (sb *ScanBuilder) FilterEqual(field string, value any) *ScanBuilder {
	return sb.and(expression.Equal(expression.Name(field), expression.Value(value)))
}

func (sb *ScanBuilder) FilterContains(field string, value string) *ScanBuilder {
	return sb.and(expression.Contains(expression.Name(field), value))
}

// Exec executa o Scan seguindo o LastEvaluatedKey até o fim da tabela
func (sb *ScanBuilder) Exec(ctx context.Context) ([]item, error) {
	builder := expression.NewBuilder().WithProjection(*sb.projection)
	if sb.filterCond != nil {
		builder = builder.WithFilter(*sb.filterCond)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("dyndb: expression build failed: %w", err)
	}

	var (
		result  []item
		lastKey map[string]types.AttributeValue
	)
	for {
		out, err := sb.store.client.Scan(ctx, &dynamodb.ScanInput{
			TableName:                 aws.String(sb.store.cfg.TableName),
			FilterExpression:          expr.Filter(),
			ProjectionExpression:      expr.Projection(),
			ExpressionAttributeNames:  expr.Names(),
			ExpressionAttributeValues: expr.Values(),
			ConsistentRead:            aws.Bool(sb.store.cfg.ConsistentRead),
			ExclusiveStartKey:         lastKey,
		})
		if err != nil {
			return nil, fmt.Errorf("dyndb: scan failed: %w", err)
		}

		page := make([]item, 0, len(out.Items))
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("dyndb: unmarshal failed: %w", err)
		}
		result = append(result, page...)

		if len(out.LastEvaluatedKey) == 0 {
			return result, nil
		}
		lastKey = out.LastEvaluatedKey
	}
}
