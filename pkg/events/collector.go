package events

// Collector is embedded in aggregates to gather domain events during state
// transitions.
type Collector struct {
	events []DomainEvent
}

// Record appends a domain event to the collector.
func (c *Collector) Record(event DomainEvent) {
	c.events = append(c.events, event)
}

// Events returns the collected domain events without clearing them.
func (c *Collector) Events() []DomainEvent {
	return c.events
}

// ClearEvents returns the collected domain events and clears the internal slice.
func (c *Collector) ClearEvents() []DomainEvent {
	collected := c.events
	c.events = nil
	return collected
}

// CopyFrom replaces the collector's contents with a copy of another
// collector's events, so copy-on-write aggregates do not share slices.
func (c *Collector) CopyFrom(other Collector) {
	if other.events == nil {
		c.events = nil
		return
	}
	c.events = make([]DomainEvent, len(other.events))
	copy(c.events, other.events)
}
