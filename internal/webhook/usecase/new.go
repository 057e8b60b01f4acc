package usecase

import (
	"net/http"
	"sync"

	"crashvault/internal/webhook/provider"
	"crashvault/internal/webhook/repository"
	"crashvault/pkg/log"
)

// implUseCase is the private implementation of webhook.UseCase.
type implUseCase struct {
	repo   repository.Repository
	client *http.Client
	l      log.Logger

	// mu serializes subscription mutations within this process.
	mu sync.Mutex
}

// New creates a new webhook UseCase implementation.
func New(repo repository.Repository, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		client: provider.DefaultClient(),
		l:      l,
	}
}
