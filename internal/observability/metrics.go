package observability

import (
	"strconv"
	"sync"
)

// Metrics provides basic in-memory counters for outgoing traffic.
type Metrics struct {
	mu           sync.Mutex
	requestCount map[string]int64
	retryCount   int64
	refreshCount int64
	networkCount int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		requestCount: make(map[string]int64),
	}
}

// RecordRequest increments counters for an outgoing request.
func (m *Metrics) RecordRequest(method, path string, status int) {
	if m == nil {
		return
	}
	key := method + "|" + path + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.requestCount[key]++
}

// RecordRetry counts a request retried after a token refresh.
func (m *Metrics) RecordRetry() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.retryCount++
}

// RecordRefresh counts a call to the refresh endpoint.
func (m *Metrics) RecordRefresh() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshCount++
}

// RecordNetworkFailure counts a request that never reached the server.
func (m *Metrics) RecordNetworkFailure() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.networkCount++
}

// Snapshot returns copies of the current counters.
func (m *Metrics) Snapshot() (requests map[string]int64, retries, refreshes, networkFailures int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	requests = make(map[string]int64, len(m.requestCount))
	for k, v := range m.requestCount {
		requests[k] = v
	}
	return requests, m.retryCount, m.refreshCount, m.networkCount
}
