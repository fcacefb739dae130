package keytrail

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

type Loop struct {
	events     EventSource
	keysyms    KeysymResolver
	focus      *FocusTracker
	translator *Translator
	emitter    Emitter
	history    *FocusHistory
	clock      func() time.Time
	log        *zap.SugaredLogger

	processed atomic.Uint64
}

func NewLoop(
	events EventSource,
	keysyms KeysymResolver,
	focus *FocusTracker,
	translator *Translator,
	emitter Emitter,
	log *zap.SugaredLogger,
) *Loop {
	return &Loop{
		events:     events,
		keysyms:    keysyms,
		focus:      focus,
		translator: translator,
		emitter:    emitter,
		history:    NewFocusHistory(),
		clock:      time.Now,
		log:        log,
	}
}

// WithClock replaces the wall clock used to stamp events.
func (l *Loop) WithClock(clock func() time.Time) *Loop {
	l.clock = clock
	return l
}

func (l *Loop) Processed() uint64 {
	return l.processed.Load()
}

// Run alternates between waiting for the next key press and processing
// it. It only returns when ctx is done or the event source fails.
func (l *Loop) Run(ctx context.Context) error {
	resultCh := make(chan RawKeyEvent, 1)
	errCh := make(chan error, 1)

	for {
		go func() {
			ev, err := l.events.NextKeyPress()
			if err != nil {
				errCh <- err
				return
			}
			resultCh <- ev
		}()

		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-resultCh:
			l.process(ev)
		case err := <-errCh:
			return fmt.Errorf("next key press: %w", err)
		}
	}
}

func (l *Loop) process(ev RawKeyEvent) {
	ev.Time = l.clock()
	ev.Keysym = l.keysyms.BaseKeysym(ev.Keycode)

	focus, err := l.focus.Current()
	if err != nil {
		l.log.Debugw("focus query failed", "error", err)
		focus = NoFocus()
	}

	enriched := EnrichedEvent{
		Key:         ev,
		Composition: l.translator.Translate(ev),
		Focus:       focus,
	}

	l.emitter.Emit(enriched, l.history)
	l.processed.Add(1)
}
