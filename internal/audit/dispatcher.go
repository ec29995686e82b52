package audit

import "github.com/rs/zerolog/log"

type Event struct {
	EstablishmentID uint
	UserID          *uint
	Action          string
	Entity          string
	EntityID        *uint
	Metadata        any
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.EstablishmentID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Error().Err(err).Str("action", ev.Action).Msg("audit write failed")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	select {
	case d.queue <- ev:
	default:
		// queue full: drop the event, the API must never block on audit
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}
