package handler

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_handler.go -package=mocks

// SalesRefresher dispara e acompanha a atualização das vendas
type SalesRefresher interface {
	TriggerManualSync() error
	GetStatus() map[string]any
}
