package util

// Calculate turns a 1-based page and page size into an offset/limit
// pair. Out-of-range sizes fall back to 10 per page, capped at 100.
func Calculate(page, size int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if size <= 0 {
		size = 10
	}
	if size > 100 {
		size = 100
	}
	return (page - 1) * size, size
}
