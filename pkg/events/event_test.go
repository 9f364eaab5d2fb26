package events

import (
	"encoding/json"
	"testing"
	"time"
)

func TestNewBaseEvent(t *testing.T) {
	before := time.Now().UTC()
	e := NewBaseEvent("loan.created", "loan-123", "Loan")
	after := time.Now().UTC()

	if e.EventID() == "" {
		t.Error("EventID should not be empty")
	}
	if e.EventType() != "loan.created" {
		t.Errorf("EventType = %q, want %q", e.EventType(), "loan.created")
	}
	if e.AggregateID() != "loan-123" {
		t.Errorf("AggregateID = %q, want %q", e.AggregateID(), "loan-123")
	}
	if e.AggregateType() != "Loan" {
		t.Errorf("AggregateType = %q, want %q", e.AggregateType(), "Loan")
	}
	if e.OccurredAt().Before(before) || e.OccurredAt().After(after) {
		t.Errorf("OccurredAt = %v, want between %v and %v", e.OccurredAt(), before, after)
	}
}

func TestBaseEvent_JSONRoundTrip(t *testing.T) {
	e := NewBaseEvent("loan.payment.recorded", "loan-1", "Loan")

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded BaseEvent
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.EventID() != e.EventID() || decoded.EventType() != e.EventType() {
		t.Errorf("round trip mismatch: got %+v, want %+v", decoded, e)
	}
}

func TestCollector(t *testing.T) {
	var c Collector
	c.Record(NewBaseEvent("a", "1", "Loan"))
	c.Record(NewBaseEvent("b", "1", "Loan"))

	if len(c.Events()) != 2 {
		t.Fatalf("Events() len = %d, want 2", len(c.Events()))
	}

	var copied Collector
	copied.CopyFrom(c)
	copied.Record(NewBaseEvent("c", "1", "Loan"))
	if len(c.Events()) != 2 {
		t.Error("CopyFrom should not share the underlying slice")
	}

	cleared := c.ClearEvents()
	if len(cleared) != 2 || len(c.Events()) != 0 {
		t.Error("ClearEvents should return events and empty the collector")
	}
}
