package arix

import (
	"context"
	"math/rand/v2"
)

// MorphTarget receives the morph target derived from the tree state.
// *Scene implements it.
type MorphTarget interface {
	SetTarget(state TreeState)
}

// Controller owns the tree state. Toggle is the only path that changes it and
// the only writer of the morph targets.
type Controller struct {
	target  MorphTarget
	greeter *Greeter
	rng     *rand.Rand

	state            TreeState
	regenerateChance float64
	listeners        []func(TreeState)

	ctx context.Context
}

// NewController starts in the scattered state and pushes that target once.
// greeter may be nil to disable greetings. A nil rng uses NewRand.
func NewController(target MorphTarget, greeter *Greeter, regenerateChance float64, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = NewRand()
	}
	c := &Controller{
		target:           target,
		greeter:          greeter,
		rng:              rng,
		state:            StateScattered,
		regenerateChance: regenerateChance,
		ctx:              context.Background(),
	}
	target.SetTarget(c.state)
	return c
}

// SetContext sets the parent context for greeting requests. Cancelling it
// abandons any in-flight request, which then resolves to the fallback.
func (c *Controller) SetContext(ctx context.Context) {
	c.ctx = ctx
}

// State returns the current tree state.
func (c *Controller) State() TreeState { return c.state }

// Greeter returns the controller's greeter, which may be nil.
func (c *Controller) Greeter() *Greeter { return c.greeter }

// OnToggle registers fn to be called with the new state after every toggle.
func (c *Controller) OnToggle(fn func(TreeState)) {
	c.listeners = append(c.listeners, fn)
}

// Toggle flips the tree state, retargets the morph, notifies listeners, and
// on entering the tree shape may request a fresh greeting. It never blocks on
// the greeting.
func (c *Controller) Toggle() TreeState {
	if c.state == StateScattered {
		c.state = StateTreeShape
	} else {
		c.state = StateScattered
	}
	c.target.SetTarget(c.state)

	for _, fn := range c.listeners {
		fn(c.state)
	}

	if c.state == StateTreeShape && c.greeter != nil && c.wantGreeting() {
		c.greeter.Request(c.ctx)
	}
	return c.state
}

// wantGreeting asks unconditionally until a greeting has been produced, and
// afterwards with probability regenerateChance.
func (c *Controller) wantGreeting() bool {
	if !c.greeter.Generated() {
		return true
	}
	return c.rng.Float64() < c.regenerateChance
}
