package domain

import "errors"

// Erros da aplicação
var (
	// ErrNotFound registro não encontrado
	ErrNotFound = errors.New("record not found")

	// ErrValidation campo obrigatório ausente ou inválido
	ErrValidation = errors.New("validation failed")

	// ErrStorageUnavailable armazenamento externo inacessível
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrImport arquivo CSV malformado ou inserção em lote rejeitada
	ErrImport = errors.New("import failed")

	// ErrInvalidCredentials senha não corresponde a nenhum dos dois papéis
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidScope escopo ausente ou desconhecido
	ErrInvalidScope = errors.New("invalid owner scope")

	// ErrCatalogFloor o catálogo precisa manter pelo menos um plano
	ErrCatalogFloor = errors.New("catalog must keep at least one plan")
)
