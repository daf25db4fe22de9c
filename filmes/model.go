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
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Generos aceitos. A comparação é exata (case-sensitive, com acentos).
var Generos = []string{"Ação", "Terror", "Drama", "Comédia", "Documentário"}

// Filme representa o documento armazenado na coleção "filmes".
//
// UserID e RazaoSocial não fazem parte das regras de validação; existem apenas
// para as consultas por user_id e razao_social.
type Filme struct {
	ID          string      `json:"_id,omitempty"`
	Genero      string      `json:"genero"`
	Nome        string      `json:"nome"`
	Diretor     string      `json:"diretor"`
	Ano         NumericText `json:"ano"`
	Nota        NumericText `json:"nota"`
	UserID      string      `json:"user_id,omitempty"`
	RazaoSocial string      `json:"razao_social,omitempty"`
}

// Normalize aplica trim nos campos validados, o mesmo valor que será persistido.
func (f *Filme) Normalize() {
	f.Genero = strings.TrimSpace(f.Genero)
	f.Nome = strings.TrimSpace(f.Nome)
	f.Diretor = strings.TrimSpace(f.Diretor)
	f.Ano = NumericText(strings.TrimSpace(string(f.Ano)))
	f.Nota = NumericText(strings.TrimSpace(string(f.Nota)))
}

// UpdateRequest é o corpo do PUT: o documento acompanhado do _id alvo.
type UpdateRequest struct {
	ID string `json:"_id"`
	Filme
}

// NumericText é um texto numérico (ano, nota). Aceita tanto "1999" quanto 1999
// no JSON e sempre é armazenado como string.
type NumericText string

// UnmarshalJSON aceita string, número ou null.
func (n *NumericText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*n = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumericText(s)
		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("filmes: valor numérico inválido %s: %w", data, err)
	}
	*n = NumericText(num.String())
	return nil
}

// InsertResult espelha o reconhecimento do insertOne.
type InsertResult struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateResult espelha o reconhecimento do updateOne.
type UpdateResult struct {
	Acknowledged  bool    `json:"acknowledged"`
	MatchedCount  int64   `json:"matchedCount"`
	ModifiedCount int64   `json:"modifiedCount"`
	UpsertedCount int64   `json:"upsertedCount"`
	UpsertedID    *string `json:"upsertedId"`
}

// DeleteResult espelha o reconhecimento do deleteOne.
type DeleteResult struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
