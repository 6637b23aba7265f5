package internal

import (
	"strconv"
	"time"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/auth"
	"github.com/aryasaumitra/projecthub-backend/internal/envvar"
)

// getDefault returns the configured value of key or def when it is empty.
func getDefault(conf *envvar.Configuration, key, def string) (string, error) {
	v, err := conf.Get(key)
	if err != nil {
		return "", internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get %s", key)
	}

	if v == "" {
		return def, nil
	}

	return v, nil
}

// NewTokensConfig reads the token signing configuration.
func NewTokensConfig(conf *envvar.Configuration) (auth.Config, error) {
	key, err := conf.Get("JWT_SIGNING_KEY")
	if err != nil {
		return auth.Config{}, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get JWT_SIGNING_KEY")
	}

	if key == "" {
		return auth.Config{}, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "JWT_SIGNING_KEY is required")
	}

	issuer, err := getDefault(conf, "JWT_ISSUER", "projecthub")
	if err != nil {
		return auth.Config{}, err
	}

	parse := func(key, def string) (time.Duration, error) {
		v, err := getDefault(conf, key, def)
		if err != nil {
			return 0, err
		}

		d, err := time.ParseDuration(v)
		if err != nil {
			return 0, internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "time.ParseDuration %s", key)
		}

		return d, nil
	}

	accessTTL, err := parse("JWT_ACCESS_TTL", "5m")
	if err != nil {
		return auth.Config{}, err
	}

	refreshTTL, err := parse("JWT_REFRESH_TTL", "24h")
	if err != nil {
		return auth.Config{}, err
	}

	return auth.Config{
		SigningKey: []byte(key),
		Issuer:     issuer,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}, nil
}

// NewPageSize reads the number of records returned per page.
func NewPageSize(conf *envvar.Configuration) (int, error) {
	v, err := getDefault(conf, "PAGE_SIZE", "10")
	if err != nil {
		return 0, err
	}

	size, err := strconv.Atoi(v)
	if err != nil || size < 1 {
		return 0, internal.NewErrorf(internal.ErrorCodeInvalidArgument, "PAGE_SIZE must be a positive integer")
	}

	return size, nil
}

// Backend returns the configured value of key, one of allowed, defaulting to the first one.
func Backend(conf *envvar.Configuration, key string, allowed ...string) (string, error) {
	v, err := getDefault(conf, key, allowed[0])
	if err != nil {
		return "", err
	}

	for _, a := range allowed {
		if v == a {
			return v, nil
		}
	}

	return "", internal.NewErrorf(internal.ErrorCodeInvalidArgument, "%s must be one of %v", key, allowed)
}

// NewBackends reads SEARCH_BACKEND and MESSAGE_BROKER, the elasticsearch index is only fed through a broker.
func NewBackends(conf *envvar.Configuration) (search, broker string, err error) {
	search, err = Backend(conf, "SEARCH_BACKEND", "postgresql", "elasticsearch")
	if err != nil {
		return "", "", err
	}

	broker, err = Backend(conf, "MESSAGE_BROKER", "none", "kafka", "rabbitmq")
	if err != nil {
		return "", "", err
	}

	if search == "elasticsearch" && broker == "none" {
		return "", "", internal.NewErrorf(internal.ErrorCodeInvalidArgument, "SEARCH_BACKEND elasticsearch requires a MESSAGE_BROKER")
	}

	return search, broker, nil
}
