package app

import "slices"

// _visibleWindow returns the [start, end) slice of total rows that keeps
// cursor on screen.
func _visibleWindow(cursor, total, rows int) (int, int) {
	if total <= rows {
		return 0, total
	}
	start := 0
	if cursor >= rows {
		start = cursor - rows + 1
	}
	return start, min(start+rows, total)
}

func _truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	if length <= 3 {
		return s[:length]
	}
	return s[:length-3] + "..."
}

func _contains(slice []string, item string) bool {
	return slices.Contains(slice, item)
}

func opaque(hex string) string {
	if len(hex) == 9 {
		return hex[:7]
	}
	return hex
}
