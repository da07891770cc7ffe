package session

import (
	"context"
	"errors"
	"time"

	"github.com/midbel/scatter"
	"github.com/midbel/scatter/internal/metrics"
	"github.com/rs/zerolog/log"
)

var (
	ErrClosed = errors.New("session closed")
	ErrIndex  = errors.New("category index out of range")
)

const (
	kindView   = "view"
	kindLoad   = "load"
	kindSelect = "select"
	kindToggle = "toggle"
)

type event struct {
	kind    string
	records []scatter.Record
	name    string
	value   string
	index   int
	reply   chan result
}

type result struct {
	view scatter.View
	err  error
}

// Session serializes every change of a plot: the plot is only accessed by
// the goroutine running Run, other goroutines submit events and receive the
// view that results from them.
type Session struct {
	plot   *scatter.Plot
	events chan event
	done   chan struct{}
}

func New(plot *scatter.Plot) *Session {
	return &Session{
		plot:   plot,
		events: make(chan event),
		done:   make(chan struct{}),
	}
}

func (s *Session) Run(ctx context.Context) error {
	defer close(s.done)
	for {
		select {
		case <-ctx.Done():
			return nil
		case e := <-s.events:
			e.reply <- s.apply(e)
		}
	}
}

func (s *Session) View(ctx context.Context) (scatter.View, error) {
	return s.submit(ctx, event{kind: kindView})
}

func (s *Session) Load(ctx context.Context, records []scatter.Record) (scatter.View, error) {
	return s.submit(ctx, event{
		kind:    kindLoad,
		records: records,
	})
}

// Select binds the attribute value to the axis name, as a change of one of
// the dropdowns would.
func (s *Session) Select(ctx context.Context, name, value string) (scatter.View, error) {
	return s.submit(ctx, event{
		kind:  kindSelect,
		name:  name,
		value: value,
	})
}

func (s *Session) Toggle(ctx context.Context, index int) (scatter.View, error) {
	return s.submit(ctx, event{
		kind:  kindToggle,
		index: index,
	})
}

func (s *Session) submit(ctx context.Context, e event) (scatter.View, error) {
	e.reply = make(chan result, 1)
	select {
	case s.events <- e:
	case <-s.done:
		return scatter.View{}, ErrClosed
	case <-ctx.Done():
		return scatter.View{}, ctx.Err()
	}
	select {
	case res := <-e.reply:
		return res.view, res.err
	case <-ctx.Done():
		return scatter.View{}, ctx.Err()
	}
}

func (s *Session) apply(e event) result {
	var err error
	switch e.kind {
	case kindLoad:
		s.plot.Load(e.records)
		log.Info().Int("records", len(e.records)).Int("categories", len(s.plot.Categories())).Msg("dataset loaded")
	case kindSelect:
		err = s.plot.Selector().Change(e.name, e.value)
	case kindToggle:
		if e.index < 0 || e.index >= len(s.plot.Categories()) {
			err = ErrIndex
		} else {
			s.plot.Toggle(e.index)
		}
	default:
	}
	if err != nil {
		log.Debug().Err(err).Str("event", e.kind).Msg("event rejected")
		return result{err: err}
	}
	metrics.IncEvent(e.kind)

	now := time.Now()
	view := s.plot.View()
	metrics.ObserveView(time.Since(now).Seconds(), len(view.Points))

	log.Debug().Str("event", e.kind).Int("points", len(view.Points)).Msg("view derived")
	return result{view: view}
}
