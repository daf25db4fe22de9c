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

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// Nomes de atributos da tabela
const (
	KeyAttribute    = "_id"
	searchAttribute = "razao_social_busca"
)

// DynamoDBClient interface para abstrair o cliente DynamoDB
type DynamoDBClient interface {
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	DescribeTable(ctx context.Context, params *dynamodb.DescribeTableInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DescribeTableOutput, error)
}

// TableConfig — configuração da tabela
type TableConfig struct {
	TableName      string `yaml:"table_name" env:"DYNAMODB_TABLE_NAME" envDefault:"filmes"`
	ConsistentRead bool   `yaml:"consistent_read" env:"DYNAMODB_CONSISTENT_READ"`
}

// item é a representação do filme na tabela.
type item struct {
	ID          string `dynamodbav:"_id"`
	Genero      string `dynamodbav:"genero"`
	Nome        string `dynamodbav:"nome"`
	Diretor     string `dynamodbav:"diretor"`
	Ano         string `dynamodbav:"ano"`
	Nota        string `dynamodbav:"nota"`
	UserID      string `dynamodbav:"user_id,omitempty"`
	RazaoSocial string `dynamodbav:"razao_social,omitempty"`
	RazaoBusca  string `dynamodbav:"razao_social_busca,omitempty"`
}

// projectedAttributes é a lista de atributos lidos pelo Scan; qualquer outro
// atributo do item (ex: senha) fica de fora.
var projectedAttributes = []string{
	KeyAttribute, "genero", "nome", "diretor", "ano", "nota", "user_id", "razao_social",
}
