package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-inventory-agent/internal/agent"
	"github.com/go-inventory-agent/internal/pkg/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubMonitor struct {
	added int
	err   error
}

func (s *stubMonitor) RunCheck(_ context.Context) (int, error) { return s.added, s.err }

func newMonitorHandler(m *stubMonitor) *MonitorHandler {
	return NewMonitorHandler(agent.New(m, clock.New(), time.Hour), m)
}

func TestMonitorStatus_InitiallyStopped(t *testing.T) {
	h := newMonitorHandler(&stubMonitor{})
	rr := httptest.NewRecorder()
	h.Status(rr, httptest.NewRequest(http.MethodGet, "/v1/monitor/status", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MonitorEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Running)
	assert.Equal(t, 3600, resp.IntervalSeconds)
}

func TestMonitorStart_EmptyBody(t *testing.T) {
	h := newMonitorHandler(&stubMonitor{})
	rr := httptest.NewRecorder()
	h.Start(rr, httptest.NewRequest(http.MethodPost, "/v1/monitor/start", nil))
	defer h.agent.Stop()

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MonitorEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.True(t, resp.Running)
	assert.Equal(t, 3600, resp.IntervalSeconds)
}

func TestMonitorStart_OverridesInterval(t *testing.T) {
	h := newMonitorHandler(&stubMonitor{})
	body, _ := json.Marshal(StartMonitorRequest{IntervalSeconds: 60})
	rr := httptest.NewRecorder()
	h.Start(rr, httptest.NewRequest(http.MethodPost, "/v1/monitor/start", bytes.NewReader(body)))
	defer h.agent.Stop()

	var resp MonitorEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 60, resp.IntervalSeconds)
}

func TestMonitorStart_NegativeInterval(t *testing.T) {
	h := newMonitorHandler(&stubMonitor{})
	body, _ := json.Marshal(StartMonitorRequest{IntervalSeconds: -5})
	rr := httptest.NewRecorder()
	h.Start(rr, httptest.NewRequest(http.MethodPost, "/v1/monitor/start", bytes.NewReader(body)))

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.False(t, h.agent.Running())
}

func TestMonitorStop(t *testing.T) {
	h := newMonitorHandler(&stubMonitor{})
	h.agent.Start(0)

	rr := httptest.NewRecorder()
	h.Stop(rr, httptest.NewRequest(http.MethodPost, "/v1/monitor/stop", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp MonitorEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.False(t, resp.Running)
}

func TestMonitorCheck_ReportsAdded(t *testing.T) {
	h := newMonitorHandler(&stubMonitor{added: 3})
	rr := httptest.NewRecorder()
	h.Check(rr, httptest.NewRequest(http.MethodPost, "/v1/monitor/check", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	var resp CheckEnvelope
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 3, resp.NotificationsAdded)
}

func TestMonitorCheck_Failure(t *testing.T) {
	h := newMonitorHandler(&stubMonitor{err: errors.New("store unreachable")})
	rr := httptest.NewRecorder()
	h.Check(rr, httptest.NewRequest(http.MethodPost, "/v1/monitor/check", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
}
