package internal

import (
	"strings"

	esv7 "github.com/elastic/go-elasticsearch/v7"

	"github.com/aryasaumitra/projecthub-backend/internal"
	"github.com/aryasaumitra/projecthub-backend/internal/envvar"
)

// NewElasticSearch instantiates the Elasticsearch client using configuration defined in environment variables.
// It returns nil when ELASTICSEARCH_URL is not set.
func NewElasticSearch(conf *envvar.Configuration) (*esv7.Client, error) {
	addresses, err := conf.Get("ELASTICSEARCH_URL")
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "conf.Get ELASTICSEARCH_URL")
	}

	if addresses == "" {
		return nil, nil
	}

	es, err := esv7.NewClient(esv7.Config{
		Addresses: strings.Split(addresses, ","),
	})
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "elasticsearch.NewClient")
	}

	res, err := es.Info()
	if err != nil {
		return nil, internal.WrapErrorf(err, internal.ErrorCodeUnknown, "es.Info")
	}

	defer res.Body.Close()

	if res.IsError() {
		return nil, internal.NewErrorf(internal.ErrorCodeUnknown, "es.Info %s", res.Status())
	}

	return es, nil
}
