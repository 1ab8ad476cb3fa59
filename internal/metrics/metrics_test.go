package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCollectorsRegistered(t *testing.T) {
	for _, c := range []prometheus.Collector{BulkAssignTargets, BulkAssignDuration, Resolutions, CacheLookups, Invalidations, DeletionsBlocked} {
		err := prometheus.Register(c)
		var already prometheus.AlreadyRegisteredError
		assert.ErrorAs(t, err, &already)
	}
}

func TestCounterIncrements(t *testing.T) {
	before := testutil.ToFloat64(DeletionsBlocked.WithLabelValues("frame"))
	DeletionsBlocked.WithLabelValues("frame").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(DeletionsBlocked.WithLabelValues("frame")))
}
