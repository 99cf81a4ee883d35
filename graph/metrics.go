package graph

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	entitiesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "channelgraph_entities_published_total",
		Help: "Number of entities published to the knowledge graph.",
	})

	triplesPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "channelgraph_triples_published_total",
		Help: "Number of triples published to the knowledge graph.",
	})
)
