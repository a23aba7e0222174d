package cli

// statusGlyph возвращает символ для статуса узла
func statusGlyph(status string) string {
	switch status {
	case "SUCCESS":
		return "✓"
	case "FAILED":
		return "✗"
	case "IN_PROGRESS":
		return "▶"
	case "NOT_APPLICABLE":
		return "-"
	default:
		return "·"
	}
}

// truncate обрезает строку до limit рун с многоточием
func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "…"
}
