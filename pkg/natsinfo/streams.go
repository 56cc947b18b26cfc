package natsinfo

import (
	"strings"

	nats "github.com/nats-io/nats.go"
)

const VIEWS_STREAM_ANY_VIEW_SUBJECT = "views.*"

// ViewsStream_NewViewSubject builds the subject a view event is published
// on. The kind segment groups events by target: article, page or site.
func ViewsStream_NewViewSubject(kind string) string {
	kind = strings.ReplaceAll(kind, " ", "_")
	return strings.Replace(VIEWS_STREAM_ANY_VIEW_SUBJECT, "*", kind, 1)
}

var VIEWS_STREAM_CONFIG = &nats.StreamConfig{
	Name:      "VIEWS",
	Retention: nats.WorkQueuePolicy,
	Discard:   nats.DiscardOld,
	Subjects:  []string{VIEWS_STREAM_ANY_VIEW_SUBJECT},
}

func ViewsStream_NewViewConsumerConfig(queueGroup string) (string, string, []nats.SubOpt, *nats.ConsumerConfig) {
	config := &nats.ConsumerConfig{
		Durable:        queueGroup,
		DeliverSubject: queueGroup + "-deliver",
		DeliverGroup:   queueGroup,
		AckPolicy:      nats.AckExplicitPolicy,
		FilterSubject:  VIEWS_STREAM_ANY_VIEW_SUBJECT,
	}

	subOpts := []nats.SubOpt{
		nats.Bind(VIEWS_STREAM_CONFIG.Name, queueGroup),
		nats.ManualAck(),
	}

	return VIEWS_STREAM_CONFIG.Name, VIEWS_STREAM_ANY_VIEW_SUBJECT, subOpts, config
}
