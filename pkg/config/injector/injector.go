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
package injector

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"reflect"
	"regexp"
	"strings"
	"sync"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
)

// Regex para capturar padrões ${tipo.chave}
// Ex: ${env.MONGO_PASS}, ${ssm./filmes/mongo/uri}, ${secret.filmes-db#password}
var pattern = regexp.MustCompile(`\$\{(env|ssm|secret)\.([^}]+)\}`)

// SSMClient abstrai o Parameter Store (permite Mocking)
type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// SecretsClient abstrai o Secrets Manager (permite Mocking)
type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Injector resolve placeholders em campos string de uma struct de configuração.
// Os clientes AWS só são criados quando algum placeholder ssm/secret aparece.
type Injector struct {
	SSM     SSMClient
	Secrets SecretsClient

	once    sync.Once
	initErr error
}

func New() *Injector {
	return &Injector{}
}

// Inject percorre target (ponteiro para struct) substituindo os placeholders.
func (i *Injector) Inject(ctx context.Context, target interface{}) error {
	v := reflect.ValueOf(target)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return fmt.Errorf("injector: target deve ser um ponteiro para struct não nulo")
	}
	return i.injectRecursive(ctx, v.Elem())
}

func (i *Injector) injectRecursive(ctx context.Context, v reflect.Value) error {
	switch v.Kind() {
	case reflect.Struct:
		for k := 0; k < v.NumField(); k++ {
			if err := i.injectRecursive(ctx, v.Field(k)); err != nil {
				return err
			}
		}

	case reflect.String:
		if !v.CanSet() {
			return nil
		}
		newValue, err := i.interpolateString(ctx, v.String())
		if err != nil {
			return err
		}
		v.SetString(newValue)

	case reflect.Ptr:
		if !v.IsNil() {
			return i.injectRecursive(ctx, v.Elem())
		}

	case reflect.Slice:
		for j := 0; j < v.Len(); j++ {
			if err := i.injectRecursive(ctx, v.Index(j)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (i *Injector) interpolateString(ctx context.Context, input string) (string, error) {
	if !strings.Contains(input, "${") {
		return input, nil
	}

	var err error
	result := pattern.ReplaceAllStringFunc(input, func(match string) string {
		groups := pattern.FindStringSubmatch(match)
		val, resolveErr := i.fetchValue(ctx, groups[1], groups[2])
		if resolveErr != nil {
			if err == nil {
				err = resolveErr
			}
			return match
		}
		return val
	})

	return result, err
}

func (i *Injector) fetchValue(ctx context.Context, sourceType, key string) (string, error) {
	switch sourceType {
	case "env":
		return os.Getenv(key), nil

	case "ssm":
		if err := i.initClients(ctx); err != nil {
			return "", err
		}
		out, err := i.SSM.GetParameter(ctx, &ssm.GetParameterInput{
			Name:           &key,
			WithDecryption: ptr(true),
		})
		if err != nil {
			return "", fmt.Errorf("injector: erro no SSM GetParameter %s: %w", key, err)
		}
		if out.Parameter == nil || out.Parameter.Value == nil {
			return "", fmt.Errorf("injector: parâmetro SSM %s sem valor", key)
		}
		return *out.Parameter.Value, nil

	case "secret":
		if err := i.initClients(ctx); err != nil {
			return "", err
		}
		return i.fetchSecret(ctx, key)
	}

	return "", fmt.Errorf("injector: fonte desconhecida %s", sourceType)
}

// fetchSecret aceita "nome" (valor bruto) ou "nome#campo" para segredos em JSON.
func (i *Injector) fetchSecret(ctx context.Context, key string) (string, error) {
	secretID, field, hasField := strings.Cut(key, "#")

	out, err := i.Secrets.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: &secretID,
	})
	if err != nil {
		return "", fmt.Errorf("injector: erro no SecretsManager %s: %w", secretID, err)
	}
	if out.SecretString == nil {
		return "", fmt.Errorf("injector: segredo %s sem SecretString", secretID)
	}
	if !hasField {
		return *out.SecretString, nil
	}

	var data map[string]interface{}
	if err := json.Unmarshal([]byte(*out.SecretString), &data); err != nil {
		return "", fmt.Errorf("injector: segredo %s não é JSON: %w", secretID, err)
	}
	val, ok := data[field]
	if !ok {
		return "", fmt.Errorf("injector: campo %s não encontrado no segredo %s", field, secretID)
	}
	return fmt.Sprintf("%v", val), nil
}

func (i *Injector) initClients(ctx context.Context) error {
	i.once.Do(func() {
		if i.SSM != nil && i.Secrets != nil {
			return
		}
		cfg, err := awsconfig.LoadDefaultConfig(ctx)
		if err != nil {
			i.initErr = fmt.Errorf("injector: falha ao carregar configuração AWS: %w", err)
			return
		}
		if i.SSM == nil {
			i.SSM = ssm.NewFromConfig(cfg)
		}
		if i.Secrets == nil {
			i.Secrets = secretsmanager.NewFromConfig(cfg)
		}
	})
	return i.initErr
}

func ptr[T any](v T) *T { return &v }
