// Package envvar loads configuration values from environment variables, optionally resolving
// secrets through a Provider.
package envvar

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/aryasaumitra/projecthub-backend/internal"
)

// Provider indicates a provider that can be used for resolving secure values.
type Provider interface {
	Get(key string) (string, error)
}

// Load reads the env filename and loads it into ENV for this process, an empty filename is a no-op.
func Load(filename string) error {
	if filename == "" {
		return nil
	}

	if err := godotenv.Load(filename); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeUnknown, "loading env var file")
	}

	return nil
}

// Configuration reads values from the environment.
type Configuration struct {
	provider Provider
}

// New instantiates a new Configuration, provider may be nil when no secure values are used.
func New(provider Provider) *Configuration {
	return &Configuration{
		provider: provider,
	}
}

// Get returns the value of the environment variable, when "<key>_SECURE" is set its value is used as
// the key to look up using the Provider.
func (c *Configuration) Get(key string) (string, error) {
	res := os.Getenv(key)

	valSecret := os.Getenv(fmt.Sprintf("%s_SECURE", key))
	if valSecret == "" {
		return res, nil
	}

	if c.provider == nil {
		return "", internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%s_SECURE set but no secure provider configured", key)
	}

	valSecretRes, err := c.provider.Get(valSecret)
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "provider.Get")
	}

	return valSecretRes, nil
}
