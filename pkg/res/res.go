package res

import (
	"encoding/json"
	"net/http"

	"github.com/mvcampos/painel-iptv/pkg/logger"
)

// ErrorResponse representa o formato JSON de resposta para erros.
type ErrorResponse struct {
	Error     string `json:"error"`                // Mensagem de erro (para o usuário)
	ErrorCode int    `json:"error_code,omitempty"` // Código de erro (para tratamento programático)
	Details   any    `json:"details,omitempty"`    // Detalhes do erro (por exemplo, erros de validação)
}

// JsonResponse envia uma resposta JSON com o status informado.
func JsonResponse(w http.ResponseWriter, data any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// JsonErrorResponse envia uma resposta JSON de erro.
func JsonErrorResponse(w http.ResponseWriter, errResponse ErrorResponse, status int, log *logger.Logger) {
	JsonResponse(w, errResponse, status)
	log.Errorw("Error response sent", "error", errResponse.Error, "status", status)
}
