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
package transport

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/raywall/filmes-service/filmes"
	"github.com/raywall/filmes-service/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLambdaHandler_RoutesThroughRouter(t *testing.T) {
	handler := NewLambdaHandler(newTestRouter(t, memstore.New()))

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       basePath + "/",
		Headers: map[string]string{
			"Content-Type":      "application/json",
			HeaderCorrelationID: "lambda-1",
		},
		Body: matrix,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "lambda-1", resp.Headers[HeaderCorrelationID])
	assert.Equal(t, "application/json; charset=utf-8", resp.Headers["content-type"])

	resp, err = handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       basePath,
	})
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var docs []filmes.Filme
	require.NoError(t, json.Unmarshal([]byte(resp.Body), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "Matrix", docs[0].Nome)
}

func TestLambdaHandler_Base64Body(t *testing.T) {
	handler := NewLambdaHandler(newTestRouter(t, memstore.New()))

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            basePath,
		Body:            base64.StdEncoding.EncodeToString([]byte(matrix)),
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, err = handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod:      http.MethodPost,
		Path:            basePath,
		Body:            "%%%",
		IsBase64Encoded: true,
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLambdaHandler_PathParams(t *testing.T) {
	var got filmes.Query
	repo := &filmes.MockRepository{
		FindFn: func(ctx context.Context, q filmes.Query) ([]filmes.Filme, error) {
			got = q
			return []filmes.Filme{{Nome: "Matrix", RazaoSocial: "Acme Ltda"}}, nil
		},
	}
	handler := NewLambdaHandler(newTestRouter(t, repo))

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       basePath + "/razao/Acme Ltda",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Acme Ltda", got.RazaoSocial)
}

func TestLambdaHandler_NotFound(t *testing.T) {
	handler := NewLambdaHandler(newTestRouter(t, memstore.New()))

	resp, err := handler.Handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/outra/rota",
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
