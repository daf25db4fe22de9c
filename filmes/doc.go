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

// Package filmes concentra o domínio do recurso REST de filmes.
//
// Visão Geral:
// Um Filme é um documento simples (nome, diretor, genero, ano e nota) persistido
// em uma coleção de um document store. O pacote oferece:
//   - Filme: o documento e seus tipos de resultado (insert, update, delete).
//   - Validator: regras declarativas por campo avaliadas com validator/v10,
//     retornando todas as violações de cada campo.
//   - Repository: o contrato mínimo do document store (find, insertOne,
//     updateOne, deleteOne), implementado por mongostore e dyndb.
//   - Service: as operações do recurso (listar, filtrar, criar, alterar e
//     excluir) sem nenhum detalhe de HTTP.
//   - MockRepository: mock baseado em campos de função para testes.
//
// Exemplo de uso:
//
//	repo, _ := mongostore.New(ctx, mongostore.Config{URI: "mongodb://localhost:27017", Database: "app"})
//	service, _ := filmes.NewService(repo)
//
//	res, err := service.Create(ctx, filmes.Filme{
//		Genero: "Ação", Nome: "Matrix", Diretor: "Wachowski", Ano: "1999", Nota: "9",
//	})
//	var verr *filmes.ValidationError
//	if errors.As(err, &verr) {
//		// verr.Errors contém as mensagens por campo
//	}
package filmes
