package log

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestWithFields_DevelopmentKeepsReportFields(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	buf := &bytes.Buffer{}
	Setup("debug", buf)
	defer logrus.SetOutput(os.Stderr)

	L.WithFields(Fields{
		"report_id": "abc123",
		"cashier":   "ana",
		"internal":  "descartado",
	}).Info("relatório gerado")

	out := buf.String()
	assert.Contains(t, out, "report_id=abc123")
	assert.Contains(t, out, "cashier=ana")
	assert.NotContains(t, out, "internal")
}

func TestWithFields_ProductionKeepsAllFields(t *testing.T) {
	t.Setenv("APP_ENV", "production")

	buf := &bytes.Buffer{}
	Setup("info", buf)

	L.WithField("internal", "mantido").Info("ok")
	assert.Contains(t, buf.String(), "internal=mantido")
}

func TestSetup_InvalidLevelFallsBackToInfo(t *testing.T) {
	Setup("barulhento", &bytes.Buffer{})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}

func TestForContext_CorrelationID(t *testing.T) {
	t.Setenv("APP_ENV", "development")

	buf := &bytes.Buffer{}
	Setup("info", buf)

	ctx, id := WithCorrelationID(context.Background())
	assert.Equal(t, id, GetCorrelationID(ctx))
	assert.Empty(t, GetCorrelationID(context.Background()))

	ForContext(ctx).Info("requisição")
	assert.Contains(t, buf.String(), "correlation_id="+id)
}
