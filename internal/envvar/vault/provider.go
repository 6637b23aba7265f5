// Package vault resolves secure configuration values stored in Hashicorp Vault.
package vault

import (
	"path"
	"strings"

	"github.com/hashicorp/vault/api"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

// Provider defines the Vault provider.
type Provider struct {
	path    string
	logical *api.Logical
}

// New instantiates the Vault client.
func New(token, addr, path string) (*Provider, error) {
	config := api.DefaultConfig()
	config.Address = addr

	client, err := api.NewClient(config)
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "api.NewClient")
	}

	client.SetToken(token)

	return &Provider{
		path:    path,
		logical: client.Logical(),
	}, nil
}

// Get retrieves the value of a secret, v uses the format "<secret path>:<key>".
func (p *Provider) Get(v string) (string, error) {
	secretPath, key, ok := strings.Cut(v, ":")
	if !ok || key == "" {
		return "", internal.NewErrorf(internal.ErrorCodeInvalidArgument, "value must be in the format <path>:<key>")
	}

	secret, err := p.logical.Read(path.Join(p.path, secretPath))
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "logical.Read")
	}

	if secret == nil {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "secret %q not found", secretPath)
	}

	data := secret.Data

	// kv version 2 nests the values under "data".
	if nested, ok := secret.Data["data"].(map[string]interface{}); ok {
		data = nested
	}

	value, ok := data[key].(string)
	if !ok {
		return "", internal.NewErrorf(internal.ErrorCodeNotFound, "key %q not found", key)
	}

	return value, nil
}
