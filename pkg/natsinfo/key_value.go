package natsinfo

import (
	"time"

	nats "github.com/nats-io/nats.go"
)

var (
	ARTICLE_COUNT_BUCKET_NAME      = "article_counts"
	ARTICLE_COUNT_KEY_VALUE_CONFIG = nats.KeyValueConfig{
		Bucket: ARTICLE_COUNT_BUCKET_NAME,
		TTL:    time.Minute * 2,
	}

	VIEW_COUNT_BUCKET_NAME      = "view_counts"
	VIEW_COUNT_KEY_VALUE_CONFIG = nats.KeyValueConfig{
		Bucket: VIEW_COUNT_BUCKET_NAME,
		TTL:    time.Minute * 2,
	}
)
