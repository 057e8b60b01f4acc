package vaultfs

import (
	"fmt"

	"crashvault/internal/issue/repository"
	"crashvault/internal/vault"
	"crashvault/pkg/log"
)

type implRepository struct {
	v *vault.Vault
	l log.Logger
}

// New creates a file-backed Repository over the vault's issues.json.
func New(v *vault.Vault, l log.Logger) repository.Repository {
	if v == nil {
		panic("issue/repository/vaultfs: vault is required")
	}
	return &implRepository{v: v, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("issue/repository/vaultfs.%s", method)
}
