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
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/raywall/filmes-service/envloader"
	"github.com/raywall/filmes-service/pkg/config/injector"
	"gopkg.in/yaml.v3"
)

// S3Downloader abstrai o cliente S3 usado para buscar o YAML (permite Mocking)
type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

// Loader monta a ServiceConfig na ordem: arquivo YAML, variáveis de ambiente,
// placeholders (${env.}, ${ssm.}, ${secret.}) e por fim a validação.
type Loader struct {
	S3       S3Downloader
	Injector *injector.Injector

	validator *ConfigValidator
}

// NewLoader cria um Loader com o injector padrão (clientes AWS sob demanda).
func NewLoader() *Loader {
	return &Loader{
		Injector:  injector.New(),
		validator: NewValidator(),
	}
}

// Load é o atalho usado pelo bootstrap do serviço.
func Load(ctx context.Context, source string) (*ServiceConfig, error) {
	return NewLoader().Load(ctx, source)
}

// Load lê a configuração de source. Um source vazio dispensa o arquivo e usa
// apenas ambiente e defaults. Aceita caminho local, file:// ou s3://bucket/key.
func (l *Loader) Load(ctx context.Context, source string) (*ServiceConfig, error) {
	cfg := &ServiceConfig{}

	if source != "" {
		raw, err := l.read(ctx, source)
		if err != nil {
			return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("erro de parse no YAML: %w", err)
		}
	}

	// Variáveis de ambiente sobrescrevem o arquivo
	if err := envloader.Load(cfg); err != nil {
		return nil, fmt.Errorf("erro carregando variáveis de ambiente: %w", err)
	}

	if l.Injector != nil {
		if err := l.Injector.Inject(ctx, cfg); err != nil {
			return nil, fmt.Errorf("erro resolvendo placeholders: %w", err)
		}
	}

	if err := l.validator.Validate(cfg); err != nil {
		return nil, fmt.Errorf("configuração inválida: %w", err)
	}

	return cfg, nil
}

func (l *Loader) read(ctx context.Context, source string) ([]byte, error) {
	if strings.HasPrefix(source, "s3://") {
		if l.S3 == nil {
			awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return nil, fmt.Errorf("falha ao carregar configuração AWS: %w", err)
			}
			l.S3 = s3.NewFromConfig(awsCfg)
		}
		return l.readFromS3(ctx, source)
	}

	// Suporta tanto "file://config.yaml" quanto apenas "config.yaml"
	return os.ReadFile(strings.TrimPrefix(source, "file://"))
}

func (l *Loader) readFromS3(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, fmt.Errorf("URL S3 inválida: esperado s3://bucket/key, recebido %s", uri)
	}

	out, err := l.S3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}
