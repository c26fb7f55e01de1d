// Package controller implements the list controller shared by the
// anomaly, pattern and insight views: one query state store, one
// request builder and one fetch lifecycle, parameterized by the record
// type and its query schema instead of duplicated per entity.
package controller

import (
	"context"
	"sync"

	"github.com/zhar97/solar-om-analytics/internal/cli/query"
)

// Phase is the fetch lifecycle state of a list view.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseSucceeded
	PhaseFailed
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseLoading:
		return "loading"
	case PhaseSucceeded:
		return "succeeded"
	case PhaseFailed:
		return "failed"
	}
	return "unknown"
}

// Result is one fetched page: the records and the server-reported
// total across all pages.
type Result[T any] struct {
	Items []T
	Total int
}

// FetchFunc performs the HTTP request for a descriptor.
type FetchFunc[T any] func(ctx context.Context, d query.Descriptor) (Result[T], error)

// Observer is notified of every issued descriptor. Tests inject a spy
// here instead of reaching into controller internals.
type Observer func(d query.Descriptor)

// Ticket identifies one issued request. Seq orders requests; a
// completion presenting a ticket older than the latest issued one is
// discarded, which makes rapid query changes last-request-wins rather
// than first-response-wins.
type Ticket struct {
	Seq        uint64
	Descriptor query.Descriptor
}

// Controller drives one list view. Every query mutation produces a new
// immutable state snapshot, derives its descriptor and enters the
// loading phase; the caller runs the fetch (synchronously via Run, or
// on its own goroutine) and reports back through Complete.
//
// Selection is tracked independently of query state: changing filters,
// sort or page never clears it, even when the selected record is no
// longer in the current result set.
type Controller[T any] struct {
	mu      sync.Mutex
	fetch   FetchFunc[T]
	observe Observer

	state query.State
	phase Phase

	items  []T
	total  int
	errMsg string

	seq      uint64
	lastDesc query.Descriptor

	selected string
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithObserver registers a descriptor observer.
func WithObserver[T any](o Observer) Option[T] {
	return func(c *Controller[T]) { c.observe = o }
}

// WithState starts the controller from a prepared query state instead
// of the schema defaults. Used by the one-shot list commands, which
// assemble the state from flags before the first fetch.
func WithState[T any](st query.State) Option[T] {
	return func(c *Controller[T]) { c.state = st }
}

// New creates a controller in the idle phase with the schema's default
// query state. Nothing is fetched until the first mutation or Refresh.
func New[T any](schema query.Schema, fetch FetchFunc[T], opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		fetch: fetch,
		state: query.New(schema),
		phase: PhaseIdle,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// issue derives the descriptor for the current state, bumps the
// sequence and enters the loading phase. Callers hold the lock.
func (c *Controller[T]) issue() Ticket {
	c.seq++
	c.lastDesc = query.Build(c.state)
	c.phase = PhaseLoading
	if c.observe != nil {
		c.observe(c.lastDesc)
	}
	return Ticket{Seq: c.seq, Descriptor: c.lastDesc}
}

// Refresh issues a fetch for the current query state. Used for the
// initial load on mount.
func (c *Controller[T]) Refresh() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.issue()
}

// Retry re-issues the most recent descriptor without touching query
// state. The descriptor is identical to the one that failed.
func (c *Controller[T]) Retry() Ticket {
	return c.Refresh()
}

// SetFilter applies a filter mutation (empty value removes the key),
// resets to page 1 and issues a fetch.
func (c *Controller[T]) SetFilter(key, value string) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SetFilter(key, value)
	return c.issue()
}

// ClearFilters drops every filter, resets to page 1 and issues a fetch.
func (c *Controller[T]) ClearFilters() Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.ClearFilters()
	return c.issue()
}

// SetSort activates a sort column (toggling direction on the active
// column), resets to page 1 and issues a fetch.
func (c *Controller[T]) SetSort(column string) Ticket {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state = c.state.SetSort(column)
	return c.issue()
}

// SetPage moves to a 1-based page and issues a fetch. Pages below 1 or
// beyond the last known page are ignored and no request is issued;
// ok reports whether the move happened.
func (c *Controller[T]) SetPage(page int) (Ticket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if page < 1 || page == c.state.Page {
		return Ticket{}, false
	}
	if c.total > 0 && page > totalPages(c.total, c.state.PageSize) {
		return Ticket{}, false
	}
	c.state = c.state.SetPage(page)
	return c.issue(), true
}

// NextPage advances one page when the boundary allows it.
func (c *Controller[T]) NextPage() (Ticket, bool) {
	c.mu.Lock()
	page := c.state.Page
	c.mu.Unlock()
	return c.SetPage(page + 1)
}

// PrevPage steps back one page when the boundary allows it.
func (c *Controller[T]) PrevPage() (Ticket, bool) {
	c.mu.Lock()
	page := c.state.Page
	c.mu.Unlock()
	return c.SetPage(page - 1)
}

// SetPageSize switches the page size, resets to page 1 and issues a
// fetch. Sizes outside the schema's allowed set are ignored.
func (c *Controller[T]) SetPageSize(size int) (Ticket, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.state.Schema.AllowsPageSize(size) {
		return Ticket{}, false
	}
	c.state = c.state.SetPageSize(size)
	return c.issue(), true
}

// Complete reconciles a finished fetch into display state. Stale
// completions (ticket older than the latest issued request) are
// discarded unconditionally and applied reports false. On failure the
// record list is cleared so stale rows never show behind an error.
func (c *Controller[T]) Complete(t Ticket, res Result[T], err error) (applied bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t.Seq != c.seq {
		return false
	}

	if err != nil {
		c.phase = PhaseFailed
		c.items = nil
		c.total = 0
		c.errMsg = err.Error()
		return true
	}

	c.phase = PhaseSucceeded
	c.items = res.Items
	c.total = res.Total
	c.errMsg = ""
	return true
}

// Run executes a ticket's fetch and completes it. This is the
// synchronous path used by the plain CLI commands; the dashboard runs
// the same two steps on its own goroutines.
func (c *Controller[T]) Run(ctx context.Context, t Ticket) error {
	res, err := c.fetch(ctx, t.Descriptor)
	c.Complete(t, res, err)
	return err
}

// Fetch exposes the controller's fetch function for callers that
// execute tickets themselves.
func (c *Controller[T]) Fetch(ctx context.Context, d query.Descriptor) (Result[T], error) {
	return c.fetch(ctx, d)
}

// Phase returns the current lifecycle phase.
func (c *Controller[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Items returns the current page of records.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.items
}

// Total returns the server-reported record count across all pages.
func (c *Controller[T]) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// Err returns the retained failure message, or "".
func (c *Controller[T]) Err() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

// State returns the current query state snapshot.
func (c *Controller[T]) State() query.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Descriptor returns the most recently issued descriptor.
func (c *Controller[T]) Descriptor() query.Descriptor {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastDesc
}

// TotalPages returns ceil(total / pageSize), never less than 1.
func (c *Controller[T]) TotalPages() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalPages(c.total, c.state.PageSize)
}

// CanPrev reports whether a previous page exists.
func (c *Controller[T]) CanPrev() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Page > 1
}

// CanNext reports whether a next page exists: page*pageSize < total.
func (c *Controller[T]) CanNext() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Page*c.state.PageSize < c.total
}

func totalPages(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	pages := (total + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}
