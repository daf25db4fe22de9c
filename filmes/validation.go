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
	"context"
	"strings"

	"github.com/go-playground/validator/v10"
)

// LocationBody identifica que o campo veio do corpo da requisição.
const LocationBody = "body"

type rule struct {
	tag string
	msg string
}

type fieldRules struct {
	param string
	value func(Filme) string
	rules []rule
}

// Cada regra é avaliada isoladamente para que todas as violações de um campo
// apareçam no resultado (o validator/v10 para na primeira tag que falha).
var filmeRules = []fieldRules{
	{
		param: "genero",
		value: func(f Filme) string { return f.Genero },
		rules: []rule{
			{"required", "É obrigatório informar o genero do filme"},
			{"oneof=" + strings.Join(Generos, " "), "O genêro informado deve ser Ação, Terror, Drama, Comédia ou Documentário"},
		},
	},
	{
		param: "nome",
		value: func(f Filme) string { return f.Nome },
		rules: []rule{
			{"required", "É obrigatório informar o nome do filme"},
			{"min=2", "O nome do filme informado é muito curto. Informe ao menos 2 caracteres"},
			{"max=100", "O nome do filme informado é muito longo. Informe ao máximo 100 caracteres"},
		},
	},
	{
		param: "diretor",
		value: func(f Filme) string { return f.Diretor },
		rules: []rule{
			{"required", "É obrigatório informar o nome do diretor"},
			{"min=2", "O nome do diretor é muito curto. Informe ao menos 2 caracteres"},
			{"max=100", "O nome do diretor é muito longo. Informe no máximo 100 caracteres"},
		},
	},
	{
		param: "ano",
		value: func(f Filme) string { return string(f.Ano) },
		rules: []rule{
			{"required", "É obrigatório informar o ano que o filme foi lançado"},
			{"number", "O ano só pode conter números"},
			{"min=3", "O ano digitado não pode ser usado. Informe um ano entre 1900 a 2025"},
			{"max=4", "O ano digitado não pode ser usado. Informe um ano entre 1900 a 2025"},
		},
	},
	{
		param: "nota",
		value: func(f Filme) string { return string(f.Nota) },
		rules: []rule{
			{"required", "É obrigatório informar a nota do filme"},
			{"number", "a nota só pode conter números de 0 a 10"},
			{"min=0", "O numero digitado não pode ser usado. Informe um número entre 0 a 10"},
			{"max=2", "O numero digitado não pode ser usado. Informe um número entre 0 a 10"},
		},
	},
}

// Validator aplica as regras de campo do Filme.
type Validator struct {
	valid *validator.Validate
}

// NewValidator cria um Validator com uma instância própria do validator/v10
func NewValidator() *Validator {
	return &Validator{valid: validator.New()}
}

// Validate retorna a lista de violações do documento; lista vazia significa válido.
// Os valores são avaliados após trim.
func (v *Validator) Validate(ctx context.Context, f Filme) []FieldError {
	var errs []FieldError
	for _, fr := range filmeRules {
		value := strings.TrimSpace(fr.value(f))
		for _, r := range fr.rules {
			if err := v.valid.VarCtx(ctx, value, r.tag); err != nil {
				errs = append(errs, FieldError{
					Value:    value,
					Msg:      r.msg,
					Param:    fr.param,
					Location: LocationBody,
				})
			}
		}
	}
	return errs
}
