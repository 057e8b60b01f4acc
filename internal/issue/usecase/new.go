package usecase

import (
	"sync"

	"crashvault/internal/issue"
	"crashvault/internal/issue/repository"
	"crashvault/pkg/log"
)

// implUseCase is the private implementation of issue.UseCase.
//
// mu serializes every read-modify-write of the index so two concurrent
// ingests of the same new message cannot both create an issue. This is
// a single-process guarantee; across processes the last writer wins.
type implUseCase struct {
	repo   repository.Repository
	events issue.EventPurger
	l      log.Logger

	mu sync.Mutex
}

// New creates a new issue UseCase implementation.
func New(repo repository.Repository, events issue.EventPurger, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:   repo,
		events: events,
		l:      l,
	}
}
