package internal

import (
	"os"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/envvar"
	"github.com/aryasaumitra/projecthub-backend/internal/envvar/vault"
)

// NewVaultProvider instantiates the Vault client using configuration defined in environment variables.
// It returns a nil Provider when VAULT_ADDRESS is not set.
func NewVaultProvider() (envvar.Provider, error) {
	vaultAddress := os.Getenv("VAULT_ADDRESS")
	if vaultAddress == "" {
		return nil, nil
	}

	provider, err := vault.New(os.Getenv("VAULT_TOKEN"), vaultAddress, os.Getenv("VAULT_PATH"))
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "vault.New")
	}

	return provider, nil
}
