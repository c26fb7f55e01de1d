package controller

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/zhar97/solar-om-analytics/internal/cli/query"
)

type record struct {
	ID string
}

func recordID(r record) string { return r.ID }

// fixedFetch returns the given page for every descriptor.
func fixedFetch(items []record, total int) FetchFunc[record] {
	return func(ctx context.Context, d query.Descriptor) (Result[record], error) {
		return Result[record]{Items: items, Total: total}, nil
	}
}

func failingFetch(err error) FetchFunc[record] {
	return func(ctx context.Context, d query.Descriptor) (Result[record], error) {
		return Result[record]{}, err
	}
}

func TestLifecyclePhases(t *testing.T) {
	c := New(query.Patterns(), fixedFetch([]record{{ID: "a"}}, 1))
	if c.Phase() != PhaseIdle {
		t.Fatalf("new controller phase = %s, want idle", c.Phase())
	}

	ticket := c.Refresh()
	if c.Phase() != PhaseLoading {
		t.Errorf("after issue phase = %s, want loading", c.Phase())
	}

	if err := c.Run(context.Background(), ticket); err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if c.Phase() != PhaseSucceeded {
		t.Errorf("after completion phase = %s, want succeeded", c.Phase())
	}
	if len(c.Items()) != 1 || c.Total() != 1 {
		t.Errorf("items=%d total=%d, want 1/1", len(c.Items()), c.Total())
	}
}

func TestFailureClearsItems(t *testing.T) {
	c := New(query.Patterns(), fixedFetch([]record{{ID: "a"}, {ID: "b"}}, 2))
	c.Run(context.Background(), c.Refresh())
	if len(c.Items()) != 2 {
		t.Fatalf("expected 2 items before failure, got %d", len(c.Items()))
	}

	c.fetch = failingFetch(errors.New("connection refused"))
	c.Run(context.Background(), c.Retry())

	if c.Phase() != PhaseFailed {
		t.Errorf("phase = %s, want failed", c.Phase())
	}
	if len(c.Items()) != 0 {
		t.Error("stale rows must not survive a failed fetch")
	}
	if c.Err() == "" {
		t.Error("failure message should be retained for display")
	}
}

func TestStaleCompletionDiscarded(t *testing.T) {
	c := New(query.Patterns(), fixedFetch(nil, 0))

	older := c.Refresh()
	newer := c.SetFilter("pattern_type", "degradation")

	// The older response arrives after the newer request was issued.
	applied := c.Complete(older, Result[record]{Items: []record{{ID: "stale"}}, Total: 1}, nil)
	if applied {
		t.Error("completion for a superseded ticket must be discarded")
	}
	if c.Phase() != PhaseLoading {
		t.Errorf("phase = %s, want loading until the newest request lands", c.Phase())
	}

	applied = c.Complete(newer, Result[record]{Items: []record{{ID: "fresh"}}, Total: 1}, nil)
	if !applied {
		t.Fatal("completion for the newest ticket must apply")
	}
	if c.Items()[0].ID != "fresh" {
		t.Errorf("displayed item = %q, want fresh", c.Items()[0].ID)
	}
}

func TestStaleFailureDiscarded(t *testing.T) {
	c := New(query.Insights(), fixedFetch(nil, 0))

	older := c.Refresh()
	newer := c.SetSort("urgency")

	c.Complete(newer, Result[record]{Items: []record{{ID: "kept"}}, Total: 1}, nil)
	if applied := c.Complete(older, Result[record]{}, errors.New("timeout")); applied {
		t.Error("stale failure must be discarded")
	}

	if c.Phase() != PhaseSucceeded {
		t.Errorf("phase = %s, want succeeded", c.Phase())
	}
	if len(c.Items()) != 1 {
		t.Error("stale failure must not clear the displayed results")
	}
}

func TestRetryReissuesIdenticalDescriptor(t *testing.T) {
	var issued []string
	c := New(query.Patterns(), failingFetch(errors.New("boom")),
		WithObserver[record](func(d query.Descriptor) {
			issued = append(issued, d.Encode())
		}))

	c.SetFilter("min_confidence", "80")
	first := c.Run(context.Background(), c.Retry())
	if first == nil {
		t.Fatal("expected fetch error")
	}

	c.Run(context.Background(), c.Retry())

	if len(issued) < 3 {
		t.Fatalf("expected at least 3 issued descriptors, got %d", len(issued))
	}
	last, prev := issued[len(issued)-1], issued[len(issued)-2]
	if last != prev {
		t.Errorf("retry must reuse the failed descriptor:\n%s\n%s", prev, last)
	}
}

func TestSetPageBounds(t *testing.T) {
	c := New(query.Anomalies(), fixedFetch(make([]record, 10), 35))
	c.Run(context.Background(), c.Refresh())

	// 35 records at page size 10 is 4 pages.
	if got := c.TotalPages(); got != 4 {
		t.Fatalf("total pages = %d, want 4", got)
	}

	if _, ok := c.SetPage(5); ok {
		t.Error("page beyond the last must be rejected")
	}
	if _, ok := c.SetPage(0); ok {
		t.Error("page below 1 must be rejected")
	}
	if _, ok := c.SetPage(4); !ok {
		t.Error("last page must be reachable")
	}
}

func TestPagingBoundaries(t *testing.T) {
	c := New(query.Anomalies(), fixedFetch(make([]record, 10), 20))
	c.Run(context.Background(), c.Refresh())

	if c.CanPrev() {
		t.Error("no previous page from page 1")
	}
	if !c.CanNext() {
		t.Error("expected a next page with 20 records at size 10")
	}

	ticket, ok := c.NextPage()
	if !ok {
		t.Fatal("next page should issue")
	}
	c.Run(context.Background(), ticket)

	if c.CanNext() {
		t.Error("no next page from the last page")
	}
	if !c.CanPrev() {
		t.Error("expected a previous page from page 2")
	}

	if _, ok := c.NextPage(); ok {
		t.Error("advancing past the last page must be a no-op")
	}
}

func TestExactPageBoundary(t *testing.T) {
	// 20 records at page size 10: page 2 is the last page even though
	// it is exactly full.
	c := New(query.Anomalies(), fixedFetch(make([]record, 10), 20))
	c.Run(context.Background(), c.Refresh())

	ticket, _ := c.SetPage(2)
	c.Run(context.Background(), ticket)

	if c.CanNext() {
		t.Error("page*pageSize == total means no next page")
	}
}

func TestSetPageSizeResetsToFirstPage(t *testing.T) {
	c := New(query.Insights(), fixedFetch(make([]record, 10), 100))
	c.Run(context.Background(), c.Refresh())

	ticket, _ := c.SetPage(3)
	c.Run(context.Background(), ticket)

	ticket, ok := c.SetPageSize(25)
	if !ok {
		t.Fatal("allowed page size rejected")
	}
	c.Run(context.Background(), ticket)

	if c.State().Page != 1 {
		t.Errorf("page size change should land on page 1, got %d", c.State().Page)
	}
	if got := c.Descriptor().Values.Get("limit"); got != "25" {
		t.Errorf("limit = %q, want 25", got)
	}

	if _, ok := c.SetPageSize(13); ok {
		t.Error("disallowed page size must be rejected")
	}
}

func TestObserverSeesEveryIssue(t *testing.T) {
	var count int
	c := New(query.Patterns(), fixedFetch(nil, 0),
		WithObserver[record](func(query.Descriptor) { count++ }))

	c.Refresh()
	c.SetFilter("plant_id", "PLANT_001")
	c.SetSort("significance_score")
	c.ClearFilters()

	if count != 4 {
		t.Errorf("observer saw %d descriptors, want 4", count)
	}
}

func TestSelectionLifecycle(t *testing.T) {
	items := []record{{ID: "a"}, {ID: "b"}}
	c := New(query.Patterns(), fixedFetch(items, 2))
	c.Run(context.Background(), c.Refresh())

	if c.Select("a"); c.Selected() != "a" {
		t.Fatalf("selected = %q, want a", c.Selected())
	}

	// Selecting another record switches.
	if c.Select("b"); c.Selected() != "b" {
		t.Errorf("selected = %q, want b", c.Selected())
	}

	// Re-selecting toggles off.
	if c.Select("b"); c.Selected() != "" {
		t.Errorf("re-selecting should clear, got %q", c.Selected())
	}

	c.Select("a")
	c.ClearSelection()
	if c.Selected() != "" {
		t.Error("ClearSelection should empty the selection")
	}
}

func TestSelectionSurvivesQueryChanges(t *testing.T) {
	c := New(query.Patterns(), fixedFetch([]record{{ID: "a"}}, 1))
	c.Run(context.Background(), c.Refresh())
	c.Select("a")

	// The selected record disappears from the result set.
	c.fetch = fixedFetch([]record{{ID: "z"}}, 1)
	c.Run(context.Background(), c.SetFilter("plant_id", "PLANT_009"))

	if c.Selected() != "a" {
		t.Errorf("selection must survive query changes, got %q", c.Selected())
	}

	// The dangling selection resolves to no item without panicking.
	if _, ok := c.SelectedItem(recordID); ok {
		t.Error("dangling selection must not resolve to an item")
	}

	// When the record comes back it resolves again.
	c.fetch = fixedFetch([]record{{ID: "a"}, {ID: "z"}}, 2)
	c.Run(context.Background(), c.ClearFilters())
	item, ok := c.SelectedItem(recordID)
	if !ok || item.ID != "a" {
		t.Errorf("selection should resolve once the record returns, got %v ok=%v", item, ok)
	}
}

func TestConcurrentMutations(t *testing.T) {
	c := New(query.Anomalies(), fixedFetch(nil, 0))

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 50; j++ {
				switch n % 4 {
				case 0:
					c.SetFilter("severity", "high")
				case 1:
					c.SetSort("severity")
				case 2:
					t := c.Refresh()
					c.Complete(t, Result[record]{}, nil)
				case 3:
					_ = fmt.Sprintf("%s", c.Descriptor().Encode())
				}
			}
		}(i)
	}
	for i := 0; i < 4; i++ {
		<-done
	}
}
