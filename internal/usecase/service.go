package usecase

import (
	"movie-ticket-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Inventory InventoryService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Inventory: NewInventoryService(repo, log),
	}
}
