package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-inventory-agent/internal/agent"
	"github.com/go-inventory-agent/internal/application/monitor"
)

// StartMonitorRequest is the optional payload for the start endpoint.
type StartMonitorRequest struct {
	IntervalSeconds int `json:"interval_seconds"`
}

// MonitorHandler controls the background monitoring agent and exposes an
// on-demand check.
type MonitorHandler struct {
	agent   *agent.Agent
	monitor monitor.Service
}

func NewMonitorHandler(a *agent.Agent, m monitor.Service) *MonitorHandler {
	return &MonitorHandler{agent: a, monitor: m}
}

// Start launches the agent. The body may override the check interval; an
// empty body keeps the configured one.
func (h *MonitorHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req StartMonitorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.IntervalSeconds < 0 {
		writeError(w, http.StatusBadRequest, "interval_seconds must not be negative")
		return
	}
	h.agent.Start(time.Duration(req.IntervalSeconds) * time.Second)
	writeJSON(w, http.StatusOK, MonitorEnvelope{
		Running:         h.agent.Running(),
		IntervalSeconds: int(h.agent.Interval().Seconds()),
		Message:         "monitoring started",
	})
}

func (h *MonitorHandler) Stop(w http.ResponseWriter, _ *http.Request) {
	h.agent.Stop()
	writeJSON(w, http.StatusOK, MonitorEnvelope{
		Running:         h.agent.Running(),
		IntervalSeconds: int(h.agent.Interval().Seconds()),
		Message:         "monitoring stopped",
	})
}

func (h *MonitorHandler) Status(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, MonitorEnvelope{
		Running:         h.agent.Running(),
		IntervalSeconds: int(h.agent.Interval().Seconds()),
	})
}

// Check runs one inventory check synchronously, outside the agent's schedule.
func (h *MonitorHandler) Check(w http.ResponseWriter, r *http.Request) {
	added, err := h.monitor.RunCheck(r.Context())
	if err != nil {
		writeDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, CheckEnvelope{NotificationsAdded: added, Status: "ok"})
}
