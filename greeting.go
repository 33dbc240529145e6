package arix

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"
)

// FallbackGreeting is shown whenever the provider cannot produce a greeting.
const FallbackGreeting = "星光璀璨，共颂优雅圣洁。圣诞快乐。"

// ErrEmptyGreeting reports a provider that succeeded with blank text.
var ErrEmptyGreeting = errors.New("empty greeting")

// GreetingProvider produces a short greeting. Implementations may block on
// the network and should honor ctx.
type GreetingProvider interface {
	Greeting(ctx context.Context) (string, error)
}

// GreetingFunc adapts a function to GreetingProvider.
type GreetingFunc func(ctx context.Context) (string, error)

// Greeting calls f.
func (f GreetingFunc) Greeting(ctx context.Context) (string, error) { return f(ctx) }

// Greeter runs greeting requests off the frame loop and holds the latest
// displayable text. All methods are safe for concurrent use.
type Greeter struct {
	provider GreetingProvider
	timeout  time.Duration

	mu        sync.Mutex
	text      string
	pending   int
	generated bool
	wg        sync.WaitGroup
}

// NewGreeter wraps provider. A nil provider always yields FallbackGreeting.
// A non-positive timeout leaves requests bounded only by the caller's context.
func NewGreeter(provider GreetingProvider, timeout time.Duration) *Greeter {
	return &Greeter{provider: provider, timeout: timeout}
}

// Fetch calls the provider synchronously and never fails: errors, panics and
// blank results all resolve to FallbackGreeting.
func (g *Greeter) Fetch(ctx context.Context) string {
	text, err := g.call(ctx)
	if err != nil {
		log.Printf("arix: greeting unavailable, using fallback: %v", err)
		return FallbackGreeting
	}
	return text
}

func (g *Greeter) call(ctx context.Context) (text string, err error) {
	if g.provider == nil {
		return "", errors.New("no greeting provider configured")
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("greeting provider panicked: %v", r)
		}
	}()
	text, err = g.provider.Greeting(ctx)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyGreeting
	}
	return text, nil
}

// Request starts a greeting fetch in the background and returns immediately.
// When it completes the result replaces Text, even if a newer request was
// started meanwhile.
func (g *Greeter) Request(ctx context.Context) {
	g.mu.Lock()
	g.pending++
	g.mu.Unlock()

	g.wg.Add(1)
	go func() {
		defer g.wg.Done()
		text := g.Fetch(ctx)

		g.mu.Lock()
		g.text = text
		g.generated = true
		g.pending--
		g.mu.Unlock()
	}()
}

// Text returns the latest greeting, or "" before the first one completes.
func (g *Greeter) Text() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.text
}

// Loading reports whether any request is still in flight.
func (g *Greeter) Loading() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.pending > 0
}

// Generated reports whether at least one request has completed.
func (g *Greeter) Generated() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.generated
}

// Wait blocks until every in-flight request has completed.
func (g *Greeter) Wait() {
	g.wg.Wait()
}
