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

// Package filmesservice é o serviço REST de cadastro de filmes.
//
// Visão Geral:
// O serviço expõe o recurso /api/filmes (listagem, filtros por user_id e
// razao_social, criação, alteração e exclusão) sobre um document store. Os
// documentos são validados antes de chegar ao banco e as respostas seguem o
// contrato já consumido pelos clientes (listas de violações com value, msg,
// param e location).
//
// Sub-Pacotes Principais:
//
// 1. envloader:
//   - Carregamento de configurações via tags "env", "envDefault" e "envRequired".
//
// 2. pkg/config:
//   - YAML local ou s3://, sobreposição por variáveis de ambiente, placeholders
//     ${env.X}, ${ssm./caminho} e ${secret.nome#campo} e validação estrutural.
//
// 3. filmes:
//   - Documento Filme, regras de validação, contrato Repository e Service.
//
// 4. mongostore, dyndb e memstore:
//   - Implementações do Repository sobre MongoDB, DynamoDB e memória.
//
// 5. pkg/transport:
//   - Router gorilla/mux, middlewares de observabilidade, recovery e timeout,
//     servidor HTTP com shutdown gracioso e adaptador para AWS Lambda.
//
// Exemplo de configuração:
//
//	service:
//	  name: filmes-service
//	  runtime: local
//	  port: 3000
//	  route: /api/filmes
//	store:
//	  driver: mongodb
//	  mongodb:
//	    uri: ${ssm./filmes/mongo/uri}
//	    database: cinema
//	logging:
//	  level: info
//	  format: json
//
// O binário fica em cmd/server e lê o caminho do arquivo de CONFIG_FILE_PATH.
package filmesservice
