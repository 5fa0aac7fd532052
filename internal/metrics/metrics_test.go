package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounterVecLabels(t *testing.T) {
	MentionsScored.WithLabelValues("positive").Inc()
	MentionsScored.WithLabelValues("negative").Add(2)

	assert.Equal(t, 1.0, testutil.ToFloat64(MentionsScored.WithLabelValues("positive")))
	assert.Equal(t, 2.0, testutil.ToFloat64(MentionsScored.WithLabelValues("negative")))
}

func TestBrandScoreGauge(t *testing.T) {
	BrandScore.Set(73)
	assert.Equal(t, 73.0, testutil.ToFloat64(BrandScore))
}
