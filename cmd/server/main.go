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
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/raywall/filmes-service/dyndb"
	"github.com/raywall/filmes-service/filmes"
	"github.com/raywall/filmes-service/memstore"
	"github.com/raywall/filmes-service/mongostore"
	"github.com/raywall/filmes-service/pkg/config"
	"github.com/raywall/filmes-service/pkg/logger"
	"github.com/raywall/filmes-service/pkg/metrics"
	"github.com/raywall/filmes-service/pkg/observability"
	"github.com/raywall/filmes-service/pkg/transport"
	"github.com/rs/zerolog/log"
)

var (
	configPath string
	// Variáveis injetáveis para mocking
	serverStarter = func(ctx context.Context, srv *transport.Server) error { return srv.Start(ctx) }
	lambdaStarter = lambda.Start
	storeOpener   = openStore
)

func init() {
	// Sem arquivo, a configuração vem apenas do ambiente
	configPath = os.Getenv("CONFIG_FILE_PATH")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, configPath); err != nil {
		log.Fatal().Err(err).Msg("FATAL: falha na execução do serviço")
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.Load(ctx, cfgPath)
	if err != nil {
		return err
	}

	logger.Configure(cfg.Logging)
	log.Info().
		Str("service", cfg.Service.Name).
		Str("runtime", cfg.Service.Runtime).
		Str("driver", cfg.Store.Driver).
		Msg("iniciando serviço")

	provider, err := observability.SetupMetrics(cfg.Metrics)
	if err != nil {
		return err
	}
	defer provider.Close()

	repo, err := storeOpener(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), cfg.Service.ShutdownTimeout)
		defer cancel()
		if err := repo.Close(closeCtx); err != nil {
			log.Warn().Err(err).Msg("falha ao fechar conexão com o banco")
		}
	}()

	svc, err := filmes.NewService(repo)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder(provider, "service:"+cfg.Service.Name)
	router := transport.NewRouter(transport.RouterConfig{
		BasePath: cfg.Service.Route,
		Timeout:  cfg.Service.Timeout,
		Metrics:  recorder,
	}, transport.NewHandler(svc, recorder))

	// Seleciona Runtime Strategy
	switch cfg.Service.Runtime {
	case "local", "ec2", "ecs", "eks":
		return serverStarter(ctx, transport.NewServer(cfg.Service, router))
	case "lambda":
		handler := transport.NewLambdaHandler(router)
		lambdaStarter(handler.Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}

// openStore cria o filmes.Repository do driver configurado.
func openStore(ctx context.Context, cfg config.StoreConf) (filmes.Repository, error) {
	switch cfg.Driver {
	case config.DriverMongoDB:
		repo, err := mongostore.New(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		return repo, nil

	case config.DriverDynamoDB:
		var opts []func(*awsconfig.LoadOptions) error
		if cfg.Region != "" {
			opts = append(opts, awsconfig.WithRegion(cfg.Region))
		}
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("falha ao carregar configuração AWS: %w", err)
		}
		store := dyndb.New(dynamodb.NewFromConfig(awsCfg), cfg.Dynamo)

		pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			return nil, fmt.Errorf("tabela %s indisponível: %w", cfg.Dynamo.TableName, err)
		}
		return store, nil

	case config.DriverMemory:
		log.Warn().Msg("driver memory: os dados não sobrevivem ao processo")
		return memstore.New(), nil
	}

	return nil, fmt.Errorf("driver desconhecido: %s", cfg.Driver)
}
