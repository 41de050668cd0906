package audit

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Event types recorded by the identity core.
const (
	EventProbeFailure = "identity_probe_failure"
	EventEscalation   = "admin_escalation"
)

// Event is a single audit trail entry.
type Event struct {
	Type       string    `json:"type"`
	At         time.Time `json:"at"`
	RequestID  string    `json:"request_id,omitempty"`
	CallerID   string    `json:"caller_id,omitempty"`
	TargetID   string    `json:"target_id,omitempty"`
	BarangayID string    `json:"barangay_id,omitempty"`
	Source     string    `json:"source,omitempty"` // failed probe: credential_store, profile_email, profile_phone
	Detail     string    `json:"detail,omitempty"`
}

// Recorder indexes audit events into Elasticsearch. Recording is best-effort:
// failures are logged and never change the outcome of the request that
// produced the event. A nil Recorder or nil client is a no-op.
type Recorder struct {
	ES     *elasticsearch.Client
	Index  string
	Logger *logrus.Logger
}

func NewRecorder(es *elasticsearch.Client, index string, logger *logrus.Logger) *Recorder {
	return &Recorder{ES: es, Index: index, Logger: logger}
}

func (r *Recorder) Record(ctx context.Context, ev Event) {
	if r == nil || r.ES == nil || r.Index == "" {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	b, err := json.Marshal(ev)
	if err != nil {
		return
	}
	req := esapi.IndexRequest{
		Index:      r.Index,
		DocumentID: uuid.NewString(),
		Body:       strings.NewReader(string(b)),
		Refresh:    "false",
	}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, r.ES)
	if err != nil {
		if r.Logger != nil {
			r.Logger.WithError(err).WithField("type", ev.Type).Warn("audit index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && r.Logger != nil {
		r.Logger.WithField("status", res.Status()).WithField("type", ev.Type).Warn("audit index response error")
	}
}
