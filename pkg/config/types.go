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
	"time"

	"github.com/raywall/filmes-service/dyndb"
	"github.com/raywall/filmes-service/mongostore"
)

// Drivers de armazenamento suportados
const (
	DriverMongoDB  = "mongodb"
	DriverDynamoDB = "dynamodb"
	DriverMemory   = "memory"
)

// ServiceConfig representa a estrutura raiz do arquivo YAML do serviço.
type ServiceConfig struct {
	Service ServiceDetails `yaml:"service"`
	Store   StoreConf      `yaml:"store"`
	Logging LoggingConf    `yaml:"logging"`
	Metrics MetricsConf    `yaml:"metrics"`
}

// ServiceDetails contém os metadados e configurações de runtime do serviço.
type ServiceDetails struct {
	Name            string        `yaml:"name" env:"SERVICE_NAME" envDefault:"filmes-service" validate:"required,hostname_rfc1123"`
	Runtime         string        `yaml:"runtime" env:"SERVICE_RUNTIME" envDefault:"local" validate:"required,oneof=local lambda ecs eks ec2"`
	Port            int           `yaml:"port" env:"PORT" envDefault:"3000" validate:"gte=0,lte=65535"`
	Route           string        `yaml:"route" env:"SERVICE_ROUTE" envDefault:"/api/filmes" validate:"required,startswith=/"`
	Timeout         time.Duration `yaml:"timeout" env:"SERVICE_TIMEOUT" envDefault:"30s" validate:"gt=0"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVICE_SHUTDOWN_TIMEOUT" envDefault:"10s" validate:"gt=0"`
}

// StoreConf seleciona o driver e carrega a configuração de cada um.
type StoreConf struct {
	Driver string            `yaml:"driver" env:"STORE_DRIVER" envDefault:"mongodb" validate:"required,oneof=mongodb dynamodb memory"`
	Region string            `yaml:"region" env:"AWS_REGION"`
	Mongo  mongostore.Config `yaml:"mongodb"`
	Dynamo dyndb.TableConfig `yaml:"dynamodb"`
}

type LoggingConf struct {
	Level  string `yaml:"level" env:"LOG_LEVEL" envDefault:"info" validate:"oneof=trace debug info warn error disabled"`
	Format string `yaml:"format" env:"LOG_FORMAT" envDefault:"json" validate:"oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string   `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string   `yaml:"namespace" env:"DD_NAMESPACE" envDefault:"filmes."`
	Tags      []string `yaml:"tags" env:"DD_TAGS"`
}
