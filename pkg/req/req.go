package req

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mvcampos/painel-iptv/pkg/logger"
	"github.com/mvcampos/painel-iptv/pkg/res"
)

// Decode decodifica o JSON de um io.ReadCloser em uma struct do tipo T.
func Decode[T any](body io.ReadCloser) (T, error) {
	var payload T
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return payload, err
	}
	return payload, nil
}

// IsValid valida uma struct do tipo T.
func IsValid[T any](payload T) error {
	validate := validator.New()
	return validate.Struct(payload)
}

// HandleBody decodifica, valida e trata o corpo da requisição.
func HandleBody[T any](w http.ResponseWriter, r *http.Request, log *logger.Logger) (*T, error) {
	body, err := Decode[T](r.Body)
	if err != nil {
		res.JsonErrorResponse(w, res.ErrorResponse{Error: "Formato de requisição inválido"}, http.StatusUnprocessableEntity, log)
		return nil, err
	}

	if err := IsValid(body); err != nil {
		res.JsonErrorResponse(w, res.ErrorResponse{Error: "Dados de requisição inválidos", Details: err.Error()}, http.StatusUnprocessableEntity, log)
		return nil, err
	}
	return &body, nil
}
