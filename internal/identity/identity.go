// Package identity tracks who is signed in on the client. It delegates all
// credential handling to the record service's auth API and fans auth-state
// changes out to subscribers.
package identity

import (
	"context"
	"fmt"
	"sync"

	"github.com/samidy/monosync/internal/baas"
	"github.com/samidy/monosync/internal/logger"
	"github.com/samidy/monosync/models"
)

// Event is one auth-state change delivered to subscribers. A nil User means
// signed out.
type Event struct {
	Token string
	User  *models.Identity
}

// Provider holds the current auth state. It implements the engine's
// IdentitySource.
//
// Subscriptions are single-consumer channels with a one-slot buffer: when a
// newer state arrives before the previous one was consumed, the stale event
// is replaced, so a slow consumer always observes the latest state and never
// a backlog of intermediate ones.
type Provider struct {
	auth   baas.AuthAPI
	logger *logger.Logger

	mu    sync.RWMutex
	state models.AuthState
	subs  []chan Event
}

func NewProvider(auth baas.AuthAPI, log *logger.Logger) *Provider {
	return &Provider{
		auth:   auth,
		logger: log,
	}
}

// Current returns the signed-in identity, or nil.
func (p *Provider) Current() *models.Identity {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if !p.state.SignedIn() {
		return nil
	}
	return p.state.User
}

// Token returns the current bearer token, or "".
func (p *Provider) Token() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state.Token
}

// Subscribe registers a new auth-state listener. The channel is never
// closed; each subscriber is expected to live for the process lifetime.
func (p *Provider) Subscribe() <-chan Event {
	ch := make(chan Event, 1)
	p.mu.Lock()
	p.subs = append(p.subs, ch)
	p.mu.Unlock()
	return ch
}

// SignIn authenticates with email and password. On success subscribers are
// notified with the new state.
func (p *Provider) SignIn(ctx context.Context, email, password string) error {
	state, err := p.auth.SignInWithPassword(ctx, email, password)
	if err != nil {
		p.logger.Err(err).Str("func", "Provider.SignIn").Msg("sign-in failed")
		return fmt.Errorf("sign in: %w", err)
	}

	p.setState(state)
	return nil
}

// SignUp creates an account and signs it in.
func (p *Provider) SignUp(ctx context.Context, email, password string) error {
	state, err := p.auth.SignUp(ctx, email, password)
	if err != nil {
		p.logger.Err(err).Str("func", "Provider.SignUp").Msg("sign-up failed")
		return fmt.Errorf("sign up: %w", err)
	}

	p.setState(state)
	return nil
}

// SignOut clears the local auth state and notifies subscribers. The record
// service keeps no session, so this never fails.
func (p *Provider) SignOut() {
	p.auth.SignOut()
	p.setState(models.AuthState{})
}

// RequestPasswordReset asks the record service to email a reset link. The
// local auth state is unaffected.
func (p *Provider) RequestPasswordReset(ctx context.Context, email string) error {
	if err := p.auth.RequestPasswordReset(ctx, email); err != nil {
		p.logger.Err(err).Str("func", "Provider.RequestPasswordReset").Msg("password reset failed")
		return fmt.Errorf("request password reset: %w", err)
	}
	return nil
}

func (p *Provider) setState(state models.AuthState) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.state = state
	event := Event{Token: state.Token, User: state.User}
	for _, ch := range p.subs {
		// Replace a stale undelivered event rather than blocking. Holding
		// the lock keeps senders serialized, so the drained slot stays free.
		select {
		case <-ch:
		default:
		}
		ch <- event
	}
}
