package store

// Mirror slice helpers shared by the domain stores. Callers hold the
// store mutex.

func findByID[T any](items []*T, id string, idOf func(*T) string) *T {
	for _, item := range items {
		if idOf(item) == id {
			return item
		}
	}
	return nil
}

func replaceByID[T any](items []*T, replacement *T, idOf func(*T) string) {
	id := idOf(replacement)
	for i, item := range items {
		if idOf(item) == id {
			items[i] = replacement
			return
		}
	}
}

func removeByID[T any](items []*T, id string, idOf func(*T) string) []*T {
	for i, item := range items {
		if idOf(item) == id {
			return append(items[:i], items[i+1:]...)
		}
	}
	return items
}
