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
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ConfigValidator struct {
	validate *validator.Validate
}

// NewValidator cria uma nova instância do validador
func NewValidator() *ConfigValidator {
	return &ConfigValidator{
		validate: validator.New(),
	}
}

// Validate realiza validações estruturais (tags) e semânticas (lógica)
func (cv *ConfigValidator) Validate(cfg *ServiceConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuração nula")
	}

	// 1. Validação Estrutural (Tags do struct: required, oneof, etc)
	if err := cv.validate.Struct(cfg); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			var errMsgs []string
			for _, e := range validationErrors {
				errMsgs = append(errMsgs, fmt.Sprintf("Campo '%s' falhou na regra '%s'", e.Namespace(), e.Tag()))
			}
			return fmt.Errorf("erros de validação estrutural:\n- %s", strings.Join(errMsgs, "\n- "))
		}
		return fmt.Errorf("erro de validação estrutural: %w", err)
	}

	// 2. Validação Semântica (Regras de negócio da configuração)
	if err := cv.validateSemantics(cfg); err != nil {
		return fmt.Errorf("erro de validação semântica: %w", err)
	}

	return nil
}

func (cv *ConfigValidator) validateSemantics(cfg *ServiceConfig) error {
	// Fora do Lambda o serviço precisa de uma porta para escutar
	if cfg.Service.Runtime != "lambda" && cfg.Service.Port == 0 {
		return fmt.Errorf("runtime '%s' exige 'service.port'", cfg.Service.Runtime)
	}

	switch cfg.Store.Driver {
	case DriverMongoDB:
		if cfg.Store.Mongo.URI == "" {
			return fmt.Errorf("driver mongodb exige 'store.mongodb.uri'")
		}
		if cfg.Store.Mongo.Database == "" {
			return fmt.Errorf("driver mongodb exige 'store.mongodb.database'")
		}
	case DriverDynamoDB:
		if cfg.Store.Dynamo.TableName == "" {
			return fmt.Errorf("driver dynamodb exige 'store.dynamodb.table_name'")
		}
	}

	return nil
}
