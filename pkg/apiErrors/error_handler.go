package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Códigos de erro da API
const (
	// Erros de validação
	ErrInvalidRequest   = "VAL_001" // Requisição inválida
	ErrInvalidFormat    = "VAL_003" // Formato de dados inválido
	ErrMethodNotAllowed = "VAL_004" // Método HTTP não suportado pela rota

	// Recursos
	ErrRouteNotFound = "RES_000" // Rota inexistente
	ErrChartNotFound = "RES_001" // Gráfico não encontrado
	ErrJobNotFound   = "RES_002" // Tipo de job desconhecido

	// Limites e concorrência
	ErrRateLimited      = "LIM_001" // Muitas requisições
	ErrSyncInProgress   = "LIM_002" // Atualização já em andamento
	ErrSnapshotNotReady = "LIM_003" // Nenhuma venda carregada ainda

	// Erros do servidor
	ErrInternalServer  = "SRV_001" // Erro interno do servidor
	ErrExternalService = "SRV_003" // Erro em serviço externo
)

// Mapeamento de códigos de erro para status HTTP
var httpStatusMap = map[string]int{
	ErrInvalidRequest:   http.StatusBadRequest,
	ErrInvalidFormat:    http.StatusBadRequest,
	ErrMethodNotAllowed: http.StatusMethodNotAllowed,
	ErrRouteNotFound:    http.StatusNotFound,
	ErrChartNotFound:    http.StatusNotFound,
	ErrJobNotFound:      http.StatusNotFound,
	ErrRateLimited:      http.StatusTooManyRequests,
	ErrSyncInProgress:   http.StatusConflict,
	ErrSnapshotNotReady: http.StatusServiceUnavailable,
	ErrInternalServer:   http.StatusInternalServerError,
	ErrExternalService:  http.StatusBadGateway,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`              // Código de erro para o cliente
	Message string `json:"message,omitempty"` // Mensagem descritiva (opcional)
	Details any    `json:"details,omitempty"` // Detalhes adicionais (opcional)
}

func (e APIError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// StatusFor retorna o status HTTP de um código; códigos desconhecidos viram 500
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	_ = json.NewEncoder(w).Encode(apiErr)
}

// FromError cria um erro de API a partir de um erro Go
func FromError(err error, code string) APIError {
	if err == nil {
		return APIError{
			Code:    ErrInternalServer,
			Message: "Erro desconhecido",
		}
	}

	return APIError{
		Code:    code,
		Message: err.Error(),
	}
}
