package feed

import (
	"fmt"
	"time"
)

// Confidence bounds and the fixed deviation shown next to it.
const (
	MinConfidence = 98.0
	MaxConfidence = 99.9
	Deviation     = 0.4
)

// Snapshot is the full set of metric values displayed at one instant.
type Snapshot struct {
	GrowthROI      float64 `json:"growth_roi"`
	TotalLeads     int64   `json:"total_leads"`
	ConversionLift float64 `json:"conversion_lift"`
	CPLReduction   float64 `json:"cpl_reduction"`
	Confidence     float64 `json:"confidence"`
	Deviation      float64 `json:"deviation"`
}

// DefaultSeed returns the snapshot the dashboard starts from.
func DefaultSeed() Snapshot {
	return Snapshot{
		GrowthROI:      300.2,
		TotalLeads:     50284,
		ConversionLift: 24.8,
		CPLReduction:   42.0,
		Confidence:     99.2,
		Deviation:      Deviation,
	}
}

// Status is the simulated connection state.
type Status int

const (
	// StatusIdle means the engine has not been started, or was stopped.
	StatusIdle Status = iota
	StatusConnecting
	StatusConnected
	StatusReconnecting
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusConnecting:
		return "connecting"
	case StatusConnected:
		return "connected"
	case StatusReconnecting:
		return "reconnecting"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Label is the banner text shown for the status.
func (s Status) Label() string {
	switch s {
	case StatusConnecting:
		return "INITIALIZING SOCKET"
	case StatusConnected:
		return "LIVE SCALING"
	case StatusReconnecting:
		return "RECONNECTING..."
	default:
		return "OFFLINE"
	}
}

// MarshalText encodes the status by name.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Update is what the engine publishes on every change.
type Update struct {
	// Seq counts successful ticks since Start.
	Seq     uint64    `json:"seq"`
	Session string    `json:"session"`
	Status  Status    `json:"status"`
	Snap    Snapshot  `json:"snapshot"`
	Ping    int       `json:"ping_ms"`
	At      time.Time `json:"at"`
}

// Sink receives updates. Publish is called on the scheduler goroutine and
// must not block for long.
type Sink interface {
	Publish(u Update)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(u Update)

// Publish calls f(u).
func (f SinkFunc) Publish(u Update) {
	f(u)
}

// Tee returns a Sink that publishes to each non-nil sink in order.
func Tee(sinks ...Sink) Sink {
	out := make(multiSink, 0, len(sinks))
	for _, s := range sinks {
		if s != nil {
			out = append(out, s)
		}
	}
	return out
}

type multiSink []Sink

func (m multiSink) Publish(u Update) {
	for _, s := range m {
		s.Publish(u)
	}
}

type discardSink struct{}

func (discardSink) Publish(Update) {}
