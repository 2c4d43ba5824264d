package fulfillment

// Mode is the state of one stream consumer.
type Mode int

const (
	// ModeLive reads entries never delivered to any consumer.
	ModeLive Mode = iota
	// ModeRecovery replays this consumer's pending entries until none remain.
	ModeRecovery
)

func (m Mode) String() string {
	switch m {
	case ModeLive:
		return "live"
	case ModeRecovery:
		return "recovery"
	default:
		return "unknown"
	}
}

type Event int

const (
	EventProcessed Event = iota
	EventIdle
	EventFailed
	EventDrained
	EventClaimed
	// EventDeferred ends a recovery pass that left failing entries pending.
	EventDeferred
	// EventRetryDue fires in live mode once deferred entries are due again.
	EventRetryDue
)

func (e Event) String() string {
	switch e {
	case EventProcessed:
		return "processed"
	case EventIdle:
		return "idle"
	case EventFailed:
		return "failed"
	case EventDrained:
		return "drained"
	case EventClaimed:
		return "claimed"
	case EventDeferred:
		return "deferred"
	case EventRetryDue:
		return "retry_due"
	default:
		return "unknown"
	}
}

// Next is the consumer transition table.
func (m Mode) Next(e Event) Mode {
	switch m {
	case ModeLive:
		switch e {
		case EventFailed, EventClaimed, EventRetryDue:
			return ModeRecovery
		default:
			return ModeLive
		}
	case ModeRecovery:
		switch e {
		case EventDrained, EventDeferred:
			return ModeLive
		default:
			return ModeRecovery
		}
	default:
		return ModeRecovery
	}
}
