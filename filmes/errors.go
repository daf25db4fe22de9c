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
package filmes

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidID     = errors.New("filmes: identificador inválido")
	ErrNilRepository = errors.New("filmes: repository não configurado")
)

// FieldError descreve uma violação de regra em um campo.
// O formato JSON é o mesmo consumido pelos clientes existentes: value, msg, param e location.
type FieldError struct {
	Value    string `json:"value,omitempty"`
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location,omitempty"`
}

// ValidationError agrupa todas as violações encontradas em um documento.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Errors))
	for _, fe := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", fe.Param, fe.Msg))
	}
	return "filmes: documento inválido: " + strings.Join(msgs, "; ")
}

// StoreError encapsula uma falha devolvida pelo document store.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("filmes: %s falhou: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
