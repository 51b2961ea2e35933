package rulekit

import (
	"log/slog"
	"sync"

	"github.com/google/uuid"
)

// Handler receives a failure observed by the tabular resolver, together
// with the rule it occurred in. Handlers run synchronously on the
// resolving goroutine and must not block for long.
type Handler func(rule *Rule, err error)

// Notifier is a broadcast channel for resolution failures. Every failure
// the tabular resolver encounters — whether ultimately swallowed or
// returned to the caller — is delivered exactly once to all current
// subscribers, in subscription order, before the resolver returns.
//
// All methods are safe for concurrent use. Subscribing or unsubscribing
// during a dispatch takes effect for later dispatches only.
type Notifier struct {
	mu   sync.RWMutex
	subs []subscription
}

type subscription struct {
	id uuid.UUID
	fn Handler
}

// NewNotifier creates an empty Notifier.
func NewNotifier() *Notifier {
	return &Notifier{}
}

// DefaultNotifier is the process-wide notifier used by resolvers that
// were not given one explicitly. Subscribers added here must be removed
// with Unsubscribe when no longer needed; the registry holds them until
// then.
var DefaultNotifier = NewNotifier()

// Subscribe registers a handler and returns an ID for unsubscribing.
func (n *Notifier) Subscribe(h Handler) uuid.UUID {
	id := uuid.New()
	n.mu.Lock()
	n.subs = append(n.subs, subscription{id: id, fn: h})
	n.mu.Unlock()
	return id
}

// Unsubscribe removes the handler registered under id. It reports
// whether a handler was removed.
func (n *Notifier) Unsubscribe(id uuid.UUID) bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, s := range n.subs {
		if s.id == id {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return true
		}
	}
	return false
}

// Len returns the number of current subscribers.
func (n *Notifier) Len() int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.subs)
}

// publish delivers err to all current subscribers in subscription order.
// Dispatch iterates a snapshot of the registry, so concurrent
// subscribe/unsubscribe never corrupts iteration.
func (n *Notifier) publish(rule *Rule, err error) {
	n.mu.RLock()
	subs := make([]subscription, len(n.subs))
	copy(subs, n.subs)
	n.mu.RUnlock()

	for _, s := range subs {
		s.fn(rule, err)
	}
}

// Subscribe registers a handler on the DefaultNotifier.
func Subscribe(h Handler) uuid.UUID {
	return DefaultNotifier.Subscribe(h)
}

// Unsubscribe removes a handler from the DefaultNotifier.
func Unsubscribe(id uuid.UUID) bool {
	return DefaultNotifier.Unsubscribe(id)
}

// SlogHandler returns a Handler that logs each failure to l at error
// level with the rule name attached.
func SlogHandler(l *slog.Logger) Handler {
	return func(rule *Rule, err error) {
		name := ""
		if rule != nil {
			name = rule.Name
		}
		l.Error("field resolution failed",
			slog.String("rule", name),
			slog.Any("error", err),
		)
	}
}
