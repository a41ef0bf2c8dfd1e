package game

import (
	"context"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
)

// event is anything the dispatch loop consumes
type event interface{}

type callEvent struct {
	fn   func()
	done chan struct{}
}

type echoEvent struct {
	text string
}

type timerEvent struct {
	gen  uint64
	step step
}

type limitEvent struct{}

type timerKind int

const (
	// timerStep is a pacing delay between two automatic steps
	timerStep timerKind = iota
	// timerDeadline waits for player input and acts when nobody answers
	timerDeadline
)

type step int

const (
	stepAdvance step = iota
	stepResolveLanding
	stepRollTimeout
	stepPurchaseTimeout
	stepAuctionClose
)

type pendingTimer struct {
	kind  timerKind
	step  step
	delay time.Duration
	timer *clock.Timer
}

// echoWait is a step that may only be scheduled once the room has shown text
type echoWait struct {
	text  string
	kind  timerKind
	step  step
	delay time.Duration
}

const sayTimeout = 10 * time.Second

func (e *Engine) post(ev event) {
	select {
	case e.events <- ev:
	case <-e.done:
	}
}

// call runs fn on the loop goroutine and waits for it
func (e *Engine) call(ctx context.Context, fn func()) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	done := make(chan struct{})
	select {
	case e.events <- callEvent{fn: fn, done: done}:
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		return ErrGameOver
	}

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-e.done:
		select {
		case <-done:
			return nil
		default:
			return ErrGameOver
		}
	}
}

func (e *Engine) handle(ev event) {
	switch ev := ev.(type) {
	case callEvent:
		ev.fn()
		close(ev.done)
	case echoEvent:
		e.observed(ev.text)
	case timerEvent:
		e.fired(ev)
	case limitEvent:
		e.timeLimitReached()
	}
}

// schedule replaces whatever was pending with a new timer
func (e *Engine) schedule(kind timerKind, s step, delay time.Duration) {
	e.cancelPending()
	if e.over() {
		return
	}

	gen := e.gen
	e.timer = &pendingTimer{kind: kind, step: s, delay: delay}
	e.timer.timer = e.clock.AfterFunc(delay, func() {
		e.post(timerEvent{gen: gen, step: s})
	})
}

// cancelPending drops the pending timer and echo wait. Any timer event
// already in flight carries an older generation and is ignored.
func (e *Engine) cancelPending() {
	if e.timer != nil {
		e.timer.timer.Stop()
		e.timer = nil
	}
	e.awaiting = nil
	e.gen++
}

func (e *Engine) fired(ev timerEvent) {
	if e.timer == nil || ev.gen != e.gen {
		return
	}
	e.timer = nil

	switch ev.step {
	case stepAdvance:
		e.advance()
	case stepResolveLanding:
		e.resolveLanding()
	case stepRollTimeout:
		e.rollTimedOut()
	case stepPurchaseTimeout:
		e.purchaseTimedOut()
	case stepAuctionClose:
		e.closeAuction()
	}
}

// announce sends text and schedules the follow-up once the room echoes it
func (e *Engine) announce(text string, kind timerKind, s step, delay time.Duration) {
	e.cancelPending()
	if e.over() {
		return
	}

	e.awaiting = &echoWait{text: strings.TrimSpace(text), kind: kind, step: s, delay: delay}
	if err := e.sayNow(text); err != nil {
		e.log.WithError(err).Warn("Failed to send message, scheduling without echo")
		e.schedule(kind, s, delay)
	}
}

// then announces text and continues automatically after delay
func (e *Engine) then(text string, s step, delay time.Duration) {
	e.announce(text, timerStep, s, delay)
}

// await announces text and waits up to timeout for player input
func (e *Engine) await(text string, s step, timeout time.Duration) {
	e.announce(text, timerDeadline, s, timeout)
}

func (e *Engine) observed(text string) {
	if e.awaiting == nil || e.awaiting.text != strings.TrimSpace(text) {
		return
	}
	w := e.awaiting
	e.schedule(w.kind, w.step, w.delay)
}

// say sends text without waiting for it to show up
func (e *Engine) say(text string) {
	if err := e.sayNow(text); err != nil {
		e.log.WithError(err).Warn("Failed to send message")
	}
}

func (e *Engine) sayNow(text string) error {
	ctx, cancel := context.WithTimeout(context.Background(), sayTimeout)
	defer cancel()
	return e.room.Say(ctx, text)
}
