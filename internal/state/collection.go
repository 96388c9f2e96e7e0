// Package state holds the client-side mirror of the back-office API: one
// session plus one collection per resource, each mutated only through
// pending/fulfilled/rejected transitions around a client call.
package state

// Record is any fetched entity with a server-assigned identifier.
type Record interface {
	RecordID() uint
}

// Collection is the normalized in-memory list for one resource type.
// IsLoading is raised on request start and dropped on any terminal outcome;
// Err is cleared on request start and set only on failure.
type Collection[T Record] struct {
	Items     []T
	Selected  *T
	IsLoading bool
	Err       string
}

// The transition functions below are pure: they take a collection value and
// return the next one without touching the input's slices.

func pending[T Record](c Collection[T]) Collection[T] {
	c.IsLoading = true
	c.Err = ""
	return c
}

func rejected[T Record](c Collection[T], msg string) Collection[T] {
	c.IsLoading = false
	c.Err = msg
	return c
}

// fulfilledList replaces the items wholesale with the server result. No
// residual entries survive, whatever was there before.
func fulfilledList[T Record](c Collection[T], items []T) Collection[T] {
	c.IsLoading = false
	c.Err = ""
	c.Items = append([]T(nil), items...)
	return c
}

func fulfilledGet[T Record](c Collection[T], rec T) Collection[T] {
	c.IsLoading = false
	c.Err = ""
	c.Selected = &rec
	return c
}

func fulfilledCreate[T Record](c Collection[T], rec T) Collection[T] {
	c.IsLoading = false
	c.Err = ""
	items := make([]T, 0, len(c.Items)+1)
	items = append(items, c.Items...)
	c.Items = append(items, rec)
	return c
}

// fulfilledUpdate replaces the matching record with the server's returned
// representation, never a field-wise patch. A selected record with the same
// id is refreshed too.
func fulfilledUpdate[T Record](c Collection[T], rec T) Collection[T] {
	c.IsLoading = false
	c.Err = ""
	items := append([]T(nil), c.Items...)
	for i := range items {
		if items[i].RecordID() == rec.RecordID() {
			items[i] = rec
			break
		}
	}
	c.Items = items
	if c.Selected != nil && (*c.Selected).RecordID() == rec.RecordID() {
		c.Selected = &rec
	}
	return c
}

func fulfilledDelete[T Record](c Collection[T], id uint) Collection[T] {
	c.IsLoading = false
	c.Err = ""
	items := make([]T, 0, len(c.Items))
	for _, item := range c.Items {
		if item.RecordID() != id {
			items = append(items, item)
		}
	}
	c.Items = items
	if c.Selected != nil && (*c.Selected).RecordID() == id {
		c.Selected = nil
	}
	return c
}

func clearError[T Record](c Collection[T]) Collection[T] {
	c.Err = ""
	return c
}

func clearSelected[T Record](c Collection[T]) Collection[T] {
	c.Selected = nil
	return c
}
