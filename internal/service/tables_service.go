package service

import (
	"context"
	"qaforum/internal/repository"
)

type TablesService interface {
	Health(ctx context.Context) (int, error)
}

type tablesService struct {
	tablesRepo repository.TablesRepository
}

func NewTablesService(tablesRepo repository.TablesRepository) TablesService {
	return &tablesService{tablesRepo: tablesRepo}
}

// Health pings the store and returns how many tables it holds.
func (t *tablesService) Health(ctx context.Context) (int, error) {
	if err := t.tablesRepo.Ping(ctx); err != nil {
		return 0, err
	}

	return t.tablesRepo.CountTables(ctx)
}
