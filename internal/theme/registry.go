package theme

import (
	"errors"
	"sync"

	"github.com/alexisbeaulieu97/themecast/internal/logger"
)

// ErrNotMounted is the panic value raised when a registry is used before
// one has been created and mounted.
var ErrNotMounted = errors.New("theme: registry not mounted")

// Listener receives the new bundle after every toggle.
type Listener func(StyleBundle)

// Options configures a Registry.
type Options struct {
	Initial Selector
	Table   *Table
	Logger  *logger.Logger
}

// Registry is the single owner of the current Selector. Toggle is the only
// way to change it.
type Registry struct {
	mu       sync.Mutex
	table    *Table
	selector Selector
	subs     []subscriber
	nextID   uint64
	closed   bool
	log      *logger.Logger

	// delivering is set while a pass runs; restart asks it to start over
	// with the bundle committed by a nested Toggle.
	delivering bool
	restart    bool
}

type subscriber struct {
	id uint64
	fn Listener
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	id       uint64
	registry *Registry
}

// NewRegistry creates a registry starting at opts.Initial. Without a table
// it uses DefaultTable.
func NewRegistry(opts Options) *Registry {
	table := opts.Table
	if table == nil {
		table = DefaultTable()
	}
	selector := Light
	if opts.Initial == Dark {
		selector = Dark
	}

	r := &Registry{
		table:    table,
		selector: selector,
		log:      opts.Logger.Component("theme"),
	}
	r.log.WithFields(map[string]any{"selector": selector.String()}).Debug("registry mounted")
	return r
}

// Current returns the bundle for the current selector.
func (r *Registry) Current() StyleBundle {
	r.mustBeMounted()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.table.Bundle(r.selector)
}

// Selector returns the current selector.
func (r *Registry) Selector() Selector {
	r.mustBeMounted()

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.selector
}

// Toggle flips the selector and calls every subscriber with the new bundle
// before returning. Subscribers run on the caller's goroutine without the
// registry lock held, in subscription order.
//
// A Toggle issued while a delivery pass is running only commits the flip.
// The running pass stops and starts over with the newest bundle, so no
// subscriber is left holding a bundle older than Current.
func (r *Registry) Toggle() {
	r.mustBeMounted()

	r.mu.Lock()
	r.selector = r.selector.Toggle()
	if r.delivering {
		r.restart = true
		r.mu.Unlock()
		return
	}
	r.delivering = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.delivering = false
		r.restart = false
		r.mu.Unlock()
	}()

	for r.deliver() {
	}
}

// deliver runs one pass and reports whether it has to be run again.
func (r *Registry) deliver() bool {
	r.mu.Lock()
	r.restart = false
	selector := r.selector
	bundle := r.table.Bundle(selector)
	pending := make([]subscriber, len(r.subs))
	copy(pending, r.subs)
	r.mu.Unlock()

	r.log.WithFields(map[string]any{
		"selector":    selector.String(),
		"subscribers": len(pending),
	}).Debug("theme toggled")

	for _, sub := range pending {
		// A subscriber may unsubscribe another one mid-delivery.
		ok, stale := r.check(sub.id)
		if stale {
			return true
		}
		if !ok {
			continue
		}
		sub.fn(bundle)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	return r.restart
}

// Subscribe registers fn for every future toggle. Each call returns its own
// handle, even for the same fn. After Close the returned handle is inert.
func (r *Registry) Subscribe(fn Listener) *Subscription {
	r.mustBeMounted()
	if fn == nil {
		panic("theme: Subscribe called with nil listener")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return &Subscription{}
	}
	r.nextID++
	r.subs = append(r.subs, subscriber{id: r.nextID, fn: fn})
	return &Subscription{id: r.nextID, registry: r}
}

// Unsubscribe removes a registration. Nil, foreign or already removed
// handles are ignored.
func (r *Registry) Unsubscribe(sub *Subscription) {
	r.mustBeMounted()
	if sub == nil || sub.registry != r || sub.id == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, s := range r.subs {
		if s.id == sub.id {
			r.subs = append(r.subs[:i], r.subs[i+1:]...)
			return
		}
	}
}

// Close releases every subscription. No listener is called afterwards.
func (r *Registry) Close() {
	r.mustBeMounted()

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	released := len(r.subs)
	r.closed = true
	r.subs = nil
	r.mu.Unlock()

	r.log.WithFields(map[string]any{"released": released}).Debug("registry unmounted")
}

// Len returns the number of live subscriptions.
func (r *Registry) Len() int {
	r.mustBeMounted()

	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.subs)
}

// check reports whether id is still subscribed and whether the running
// pass has been superseded by a nested Toggle.
func (r *Registry) check(id uint64) (active, stale bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.restart {
		return false, true
	}
	for _, s := range r.subs {
		if s.id == id {
			return true, false
		}
	}
	return false, false
}

func (r *Registry) mustBeMounted() {
	if r == nil {
		panic(ErrNotMounted)
	}
}

// Unsubscribe removes this subscription from its registry. Calling it more
// than once is harmless.
func (s *Subscription) Unsubscribe() {
	if s == nil || s.registry == nil {
		return
	}
	s.registry.Unsubscribe(s)
}
