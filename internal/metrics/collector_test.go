package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	c := New("agentport_test", reg)

	c.ObserveValidation("success")
	c.ObserveValidation("success")
	c.ObserveValidation("failure")

	c.ObserveTranslation("n8n", 5*time.Millisecond, nil)
	c.ObserveTranslation("crewai", 2*time.Millisecond, errors.New("boom"))

	assert.Equal(t, 2.0, testutil.ToFloat64(c.validationsTotal.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.validationsTotal.WithLabelValues("failure")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.translationsTotal.WithLabelValues("n8n")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.translationErrors.WithLabelValues("crewai")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.translationErrors.WithLabelValues("n8n")))
}

func TestDefault_SingleInstance(t *testing.T) {
	require.Same(t, Default(), Default())
}
