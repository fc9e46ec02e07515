package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/config"
	v1 "github.com/Eliseu75766/dashboard-riscos-logisticos/internal/handler/http/v1"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/metrics"
	"github.com/Eliseu75766/dashboard-riscos-logisticos/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "riscos version "+Version+"\n", out.String())
}

func TestPrintRun(t *testing.T) {
	var out bytes.Buffer
	printRun(&out, &models.GenerationRun{
		Seed:          42,
		RowCount:      1240,
		TotalCost:     89_699_400,
		OutputPath:    "riscos.csv",
		CarrierCounts: map[models.Carrier]int{models.CarrierBrado: 142, models.CarrierJSL: 128, models.CarrierTegma: 119},
	})

	text := out.String()
	assert.Contains(t, text, "Incidents: 1240")
	assert.Contains(t, text, "R$ 89.7 million")
	assert.Contains(t, text, "Brado        142")
	assert.Contains(t, text, "LATAM Cargo  0")
}

func TestNewRouter_ServesSwaggerAndMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	router := newRouter(metrics.New(), v1.NewHandler(nil, nil, logger, &config.Config{}))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/report/summary"`)
	assert.Contains(t, w.Body.String(), `"/datasets/generate"`)
	assert.Contains(t, w.Body.String(), "Logistics Risk Dashboard API")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/system/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "riscos_http_requests_total")
}
