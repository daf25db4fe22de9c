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
// Package envloader carrega variáveis de ambiente para campos de uma struct Go,
// usando as tags `env`, `envDefault` e `envRequired`.
//
// Regras de precedência para cada campo com tag `env`:
//  1. Variável de ambiente definida e não vazia: sobrescreve o valor atual.
//  2. Campo ainda com valor zero e `envDefault` presente: recebe o default.
//  3. Caso contrário o valor atual é mantido (ex: veio de um arquivo YAML).
//
// Assim a mesma struct pode ser preenchida primeiro pelo arquivo de configuração
// e depois sobreposta pelo ambiente.
//
// Tipos suportados: string, int*, uint*, bool, float*, time.Duration e []string
// (valores separados por vírgula), além de structs aninhadas e ponteiros para struct.
//
// Exemplo:
//
//	type Config struct {
//		Port    int           `env:"PORT" envDefault:"8080"`
//		Timeout time.Duration `env:"TIMEOUT" envDefault:"30s"`
//		URI     string        `env:"MONGODB_URI" envRequired:"true"`
//	}
//
//	var cfg Config
//	if err := envloader.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
package envloader
