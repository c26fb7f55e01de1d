package controller

// Selection state machine: unselected -> selected(id) on activation,
// selected(id) -> unselected on re-activating the same record or an
// explicit close, selected(a) -> selected(b) directly when a different
// record is activated. Query mutations never touch it, so a selection
// may dangle (reference a record outside the current result set);
// rendering tolerates that by simply not finding the record.

// Select activates a record by identifier. Activating the selected
// record again deselects it. Returns the now-selected id ("" when the
// activation toggled the selection off).
func (c *Controller[T]) Select(id string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == id {
		c.selected = ""
	} else {
		c.selected = id
	}
	return c.selected
}

// ClearSelection closes the detail view.
func (c *Controller[T]) ClearSelection() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.selected = ""
}

// Selected returns the selected record id, or "".
func (c *Controller[T]) Selected() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selected
}

// SelectedItem resolves the selection against the current result set
// using the id function. ok is false for an empty or dangling
// selection.
func (c *Controller[T]) SelectedItem(id func(T) string) (item T, ok bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.selected == "" {
		var zero T
		return zero, false
	}
	for _, it := range c.items {
		if id(it) == c.selected {
			return it, true
		}
	}
	var zero T
	return zero, false
}
