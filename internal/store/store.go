// Package store keeps an optional audit trail of diagnosis requests.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrDisabled is returned by queries against the no-op recorder.
var ErrDisabled = errors.New("diagnosis store disabled")

// Entry is one recorded diagnosis.
type Entry struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	Symptoms      []string
	Duration      string
	Severity      int
	TopCondition  string
	TopConfidence float64
	RedFlags      []string
	MatchCount    int
}

// ConditionCount is how often a condition ranked first.
type ConditionCount struct {
	Condition string `json:"condition"`
	Count     int64  `json:"count"`
}

type Recorder interface {
	Record(ctx context.Context, e Entry) error
	TopConditions(ctx context.Context, since time.Time, limit int) ([]ConditionCount, error)
	Ping(ctx context.Context) error
	Close()
}

// NopRecorder discards entries. Used when the database is disabled.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Entry) error { return nil }

func (NopRecorder) TopConditions(context.Context, time.Time, int) ([]ConditionCount, error) {
	return nil, ErrDisabled
}

func (NopRecorder) Ping(context.Context) error { return nil }

func (NopRecorder) Close() {}
