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
//
// Package dyndb implementa o filmes.Repository sobre o AWS DynamoDB Go SDK (v2).
//
// Visão Geral:
// Cada filme é um item da tabela configurada em TableConfig, com chave de partição
// "_id" (uuid gerado no insert). As operações seguem a mesma semântica do driver
// do MongoDB usado por padrão:
//   - InsertOne: PutItem condicionado a attribute_not_exists(_id).
//   - UpdateOne: UpdateItem com SET dos campos e condição attribute_exists(_id);
//     item inexistente resulta em matchedCount 0, não em erro.
//   - DeleteOne: DeleteItem com ReturnValues ALL_OLD para calcular deletedCount.
//   - Find: Scan paginado internamente, com filtros via expression builder e
//     ordenação por nome feita após a leitura.
//
// A busca por razao_social ignora caixa: o item guarda uma cópia em minúsculas
// (razao_social_busca) e o filtro usa contains sobre ela.
//
// Exemplo:
//
//	cfg, _ := config.LoadDefaultConfig(ctx)
//	repo := dyndb.New(dynamodb.NewFromConfig(cfg), dyndb.TableConfig{TableName: "filmes"})
//	docs, err := repo.Find(ctx, filmes.Query{SortByNome: true})
package dyndb
