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
package mongostore

import (
	"strconv"

	"github.com/raywall/filmes-service/filmes"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// fields é o conjunto de campos gravados por insertOne e aplicados via $set no updateOne.
// O _id não faz parte dele: é gerado pelo servidor e nunca sobrescrito.
type fields struct {
	Genero      string `bson:"genero"`
	Nome        string `bson:"nome"`
	Diretor     string `bson:"diretor"`
	Ano         string `bson:"ano"`
	Nota        string `bson:"nota"`
	UserID      string `bson:"user_id,omitempty"`
	RazaoSocial string `bson:"razao_social,omitempty"`
}

// storedDocument é a leitura de um documento da coleção. Documentos antigos podem
// trazer ano/nota como números, por isso os campos são lidos como RawValue.
type storedDocument struct {
	ID          bson.RawValue `bson:"_id"`
	Genero      string        `bson:"genero"`
	Nome        string        `bson:"nome"`
	Diretor     string        `bson:"diretor"`
	Ano         bson.RawValue `bson:"ano"`
	Nota        bson.RawValue `bson:"nota"`
	UserID      string        `bson:"user_id,omitempty"`
	RazaoSocial string        `bson:"razao_social,omitempty"`
}

func fromFilme(f filmes.Filme) fields {
	return fields{
		Genero:      f.Genero,
		Nome:        f.Nome,
		Diretor:     f.Diretor,
		Ano:         string(f.Ano),
		Nota:        string(f.Nota),
		UserID:      f.UserID,
		RazaoSocial: f.RazaoSocial,
	}
}

func (d storedDocument) toFilme() filmes.Filme {
	return filmes.Filme{
		ID:          idText(d.ID),
		Genero:      d.Genero,
		Nome:        d.Nome,
		Diretor:     d.Diretor,
		Ano:         filmes.NumericText(rawText(d.Ano)),
		Nota:        filmes.NumericText(rawText(d.Nota)),
		UserID:      d.UserID,
		RazaoSocial: d.RazaoSocial,
	}
}

func idText(v bson.RawValue) string {
	if oid, ok := v.ObjectIDOK(); ok {
		return oid.Hex()
	}
	return rawText(v)
}

func rawText(v bson.RawValue) string {
	switch v.Type {
	case bson.TypeString:
		return v.StringValue()
	case bson.TypeInt32:
		return strconv.FormatInt(int64(v.Int32()), 10)
	case bson.TypeInt64:
		return strconv.FormatInt(v.Int64(), 10)
	case bson.TypeDouble:
		return strconv.FormatFloat(v.Double(), 'f', -1, 64)
	default:
		return ""
	}
}
