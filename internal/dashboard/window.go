package dashboard

// Window is a fixed-capacity tail-retaining sequence. Appending past
// capacity evicts from the front by position, so the most recent entries
// survive. Both the score series and the alert list are windows.
type Window[T any] struct {
	capacity int
	items    []T
}

// NewWindow wraps existing items in a window. The items are trimmed to the
// capacity immediately, keeping the tail.
func NewWindow[T any](capacity int, items []T) Window[T] {
	w := Window[T]{capacity: capacity}
	w.items = trimToTail(items, capacity)
	return w
}

// Append adds items and evicts the oldest entries beyond capacity.
func (w Window[T]) Append(items ...T) Window[T] {
	combined := make([]T, 0, len(w.items)+len(items))
	combined = append(combined, w.items...)
	combined = append(combined, items...)
	return Window[T]{capacity: w.capacity, items: trimToTail(combined, w.capacity)}
}

// Items returns the retained entries, oldest first. The returned slice is
// never nil.
func (w Window[T]) Items() []T {
	if w.items == nil {
		return []T{}
	}
	return w.items
}

func trimToTail[T any](items []T, capacity int) []T {
	if capacity > 0 && len(items) > capacity {
		items = items[len(items)-capacity:]
	}
	out := make([]T, len(items))
	copy(out, items)
	return out
}
