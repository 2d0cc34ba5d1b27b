package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"catchup-service/internal/config"
	"catchup-service/internal/domain/catchup"
	"catchup-service/internal/metrics"
	"catchup-service/internal/providers/fixture"
	"catchup-service/internal/providers/sportsdata"
)

type stubHTTPServer struct {
	addr          string
	handler       http.Handler
	listenCalls   int
	shutdownCalls int
	listenErr     error
	shutdownErr   error
}

func (s *stubHTTPServer) ListenAndServe() error {
	s.listenCalls++
	return s.listenErr
}

func (s *stubHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	s.shutdownCalls++
	return s.shutdownErr
}

func (s *stubHTTPServer) Addr() string {
	return s.addr
}

func (s *stubHTTPServer) Handler() http.Handler {
	return s.handler
}

type blockingHTTPServer struct {
	shutdownCalls int
	unblock       chan struct{}
}

func (s *blockingHTTPServer) ListenAndServe() error {
	return nil
}

func (s *blockingHTTPServer) Shutdown(ctx context.Context) error {
	s.shutdownCalls++
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.unblock:
		return nil
	}
}

func (s *blockingHTTPServer) Addr() string {
	return ":0"
}

func (s *blockingHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestServerServesCatchupEndToEnd(t *testing.T) {
	cfg := config.Config{Port: "0", Provider: "fixture"}
	srv := newServerWithProvider(cfg, nil, fixture.New())

	router := srv.Handler()

	healthReq := httptest.NewRequest(http.MethodGet, "/health", nil)
	healthRec := httptest.NewRecorder()
	router.ServeHTTP(healthRec, healthReq)
	if healthRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from /health, got %d", healthRec.Code)
	}

	catchupReq := httptest.NewRequest(http.MethodGet, "/games/1001/catchup", nil)
	catchupRec := httptest.NewRecorder()
	router.ServeHTTP(catchupRec, catchupReq)
	if catchupRec.Code != http.StatusOK {
		t.Fatalf("expected 200 from catchup, got %d: %s", catchupRec.Code, catchupRec.Body.String())
	}

	var resp catchup.Response
	if err := json.NewDecoder(catchupRec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed decoding catchup response: %v", err)
	}
	if resp.Game.ID != "1001" {
		t.Fatalf("unexpected game id %s", resp.Game.ID)
	}
	if len(resp.Timeline) == 0 {
		t.Fatal("expected populated timeline")
	}
}

func TestNewConstructsServerWithFactoryProvider(t *testing.T) {
	cfg := config.Config{Port: "0", Provider: "fixture"}
	srv := New(cfg, nil)
	if srv == nil || srv.Handler() == nil {
		t.Fatal("expected server with handler")
	}
}

func TestSelectProviderFallsBackToFixture(t *testing.T) {
	provider := selectProvider(config.Config{Provider: "unknown"})
	if _, ok := provider.(*fixture.Provider); !ok {
		t.Fatalf("expected fixture fallback, got %T", provider)
	}
}

func TestSelectProviderChoosesSportsData(t *testing.T) {
	provider := selectProvider(config.Config{
		Provider: "sportsdata",
		SportsData: config.SportsDataConfig{
			BaseURL: "http://example.com",
			APIKey:  "key",
		},
	})
	if _, ok := provider.(*sportsdata.Client); !ok {
		t.Fatalf("expected sportsdata provider, got %T", provider)
	}
}

func TestProviderFactoryWrapsWithDecorators(t *testing.T) {
	factory := newProviderFactory(nil, nil)
	provider := factory.build(config.Config{Provider: "fixture"})
	if provider == nil {
		t.Fatal("expected wrapped provider")
	}

	// The decorated chain must still serve the fixture payload.
	payload, err := provider.FetchGameDetail(context.Background(), "1001")
	if err != nil {
		t.Fatalf("expected fixture fetch through decorators, got %v", err)
	}
	if payload.Game == nil {
		t.Fatal("expected payload from fixture")
	}
}

func TestGracefulShutdownStopsAllComponents(t *testing.T) {
	httpSrv := &stubHTTPServer{}
	metricsSrv := &stubHTTPServer{}
	metricsStops := 0

	srv := &Server{
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop: func(ctx context.Context) error {
			_ = ctx
			metricsStops++
			return nil
		},
	}
	srv.gracefulShutdown()

	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected http shutdown once, got %d", httpSrv.shutdownCalls)
	}
	if metricsSrv.shutdownCalls != 1 {
		t.Fatalf("expected metrics shutdown once, got %d", metricsSrv.shutdownCalls)
	}
	if metricsStops != 1 {
		t.Fatalf("expected metrics stop once, got %d", metricsStops)
	}
}

func TestGracefulShutdownContinuesPastErrors(t *testing.T) {
	httpSrv := &stubHTTPServer{shutdownErr: errors.New("shutdown failure")}
	srv := &Server{
		httpServer: httpSrv,
		metricsStop: func(ctx context.Context) error {
			_ = ctx
			return errors.New("stop failure")
		},
	}
	srv.gracefulShutdown()

	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected http shutdown attempted, got %d", httpSrv.shutdownCalls)
	}
}

func TestGracefulShutdownTimesOut(t *testing.T) {
	blocking := &blockingHTTPServer{unblock: make(chan struct{})}

	original := shutdownTimeout
	shutdownTimeout = 5 * time.Millisecond
	defer func() { shutdownTimeout = original }()

	srv := &Server{httpServer: blocking}

	start := time.Now()
	srv.gracefulShutdown()
	elapsed := time.Since(start)

	if blocking.shutdownCalls != 1 {
		t.Fatalf("expected shutdown called once, got %d", blocking.shutdownCalls)
	}
	if elapsed > 200*time.Millisecond {
		t.Fatalf("shutdown took too long: %s", elapsed)
	}
}

func TestStartServerStopsOnListenError(t *testing.T) {
	httpSrv := &stubHTTPServer{listenErr: errors.New("listen failure")}
	srv := &Server{httpServer: httpSrv}

	stopCalled := make(chan struct{})
	srv.startServer(func() { close(stopCalled) })

	select {
	case <-stopCalled:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("expected stop to be called on listen failure")
	}
}

type closeableHTTPServer struct {
	shutdownCalls int
}

func (c *closeableHTTPServer) ListenAndServe() error {
	return http.ErrServerClosed
}

func (c *closeableHTTPServer) Shutdown(ctx context.Context) error {
	_ = ctx
	c.shutdownCalls++
	return nil
}

func (c *closeableHTTPServer) Addr() string {
	return ":0"
}

func (c *closeableHTTPServer) Handler() http.Handler {
	return http.NewServeMux()
}

func TestRunCancelsAndShutsDown(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	httpSrv := &closeableHTTPServer{}
	srv := &Server{httpServer: httpSrv}

	done := make(chan struct{})
	go func() {
		srv.Run(ctx, cancel)
		close(done)
	}()

	time.Sleep(10 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("run did not return after cancel")
	}

	if httpSrv.shutdownCalls != 1 {
		t.Fatalf("expected shutdown called once, got %d", httpSrv.shutdownCalls)
	}
}

func TestBuildMetricsFallsBackWhenSetupFails(t *testing.T) {
	original := metricsSetup
	metricsSetup = func(ctx context.Context, cfg metrics.TelemetryConfig) (*metrics.Recorder, http.Handler, func(context.Context) error, error) {
		return nil, nil, nil, errors.New("setup failure")
	}
	defer func() { metricsSetup = original }()

	rec, metricsSrv, shutdown := buildMetrics(config.Config{}, nil)
	if rec == nil {
		t.Fatal("expected fallback recorder")
	}
	if metricsSrv != nil || shutdown != nil {
		t.Fatal("expected no metrics server or shutdown on setup failure")
	}
}

func TestBuildMetricsDisabledHasNoServer(t *testing.T) {
	rec, metricsSrv, shutdown := buildMetrics(config.Config{}, nil)
	if rec == nil {
		t.Fatal("expected recorder")
	}
	if metricsSrv != nil {
		t.Fatal("expected no metrics server when disabled")
	}
	if shutdown == nil {
		t.Fatal("expected no-op shutdown function")
	}
}

func TestBuildMetricsEnabledServesPrometheus(t *testing.T) {
	cfg := config.Config{Metrics: config.MetricsConfig{Enabled: true, Port: "0"}}
	rec, metricsSrv, shutdown := buildMetrics(cfg, nil)
	if rec == nil || metricsSrv == nil || shutdown == nil {
		t.Fatal("expected full metrics stack when enabled")
	}
	defer func() { _ = shutdown(context.Background()) }()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := httptest.NewRecorder()
	metricsSrv.Handler().ServeHTTP(recorder, req)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 from prometheus handler, got %d", recorder.Code)
	}
}
