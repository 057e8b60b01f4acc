package vaultfs

import (
	"fmt"

	"crashvault/internal/vault"
	"crashvault/internal/webhook/repository"
	"crashvault/pkg/log"
)

type implRepository struct {
	v *vault.Vault
	l log.Logger
}

// New creates a Repository over the "webhooks" key of the vault's
// config.json.
func New(v *vault.Vault, l log.Logger) repository.Repository {
	if v == nil {
		panic("webhook/repository/vaultfs: vault is required")
	}
	return &implRepository{v: v, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("webhook/repository/vaultfs.%s", method)
}
