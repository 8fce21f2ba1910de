package telemetry_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.opentelemetry.io/otel"

	"github.com/KirkDiggler/battlemap-api/internal/telemetry"
)

type TelemetryTestSuite struct {
	suite.Suite
	ctx context.Context
}

func TestTelemetrySuite(t *testing.T) {
	suite.Run(t, new(TelemetryTestSuite))
}

func (s *TelemetryTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *TelemetryTestSuite) TestDisabledWithoutEndpoint() {
	before := otel.GetTracerProvider()

	shutdown, err := telemetry.Setup(s.ctx, telemetry.Config{ServiceName: "battlemap-test"})
	s.Require().NoError(err)
	s.Assert().NoError(shutdown(s.ctx))
	s.Assert().Equal(before, otel.GetTracerProvider())
}

func (s *TelemetryTestSuite) TestExportsSpansOnShutdown() {
	var requests atomic.Int32
	collector := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/v1/traces" {
			requests.Add(1)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer collector.Close()

	before := otel.GetTracerProvider()
	defer otel.SetTracerProvider(before)

	shutdown, err := telemetry.Setup(s.ctx, telemetry.Config{
		Endpoint:    collector.URL + "/v1/traces",
		ServiceName: "battlemap-test",
	})
	s.Require().NoError(err)

	_, span := telemetry.Tracer().Start(s.ctx, "gameboard.NextTurn")
	span.End()

	s.Require().NoError(shutdown(s.ctx))
	s.Assert().Equal(int32(1), requests.Load())
}
