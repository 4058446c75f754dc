package email

// MergeField is a placeholder an email platform substitutes per recipient.
type MergeField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

var mergeFields = []MergeField{
	{Label: "First name", Value: "{{first_name}}"},
	{Label: "Last name", Value: "{{last_name}}"},
	{Label: "Email", Value: "{{email}}"},
	{Label: "Dealer name", Value: "{{dealer_name}}"},
	{Label: "Dealer phone", Value: "{{dealer_phone}}"},
	{Label: "Unsubscribe link", Value: "{{unsubscribe_url}}"},
}

// MergeFields returns the catalog of supported merge fields.
func MergeFields() []MergeField {
	out := make([]MergeField, len(mergeFields))
	copy(out, mergeFields)
	return out
}

// InsertMergeField replaces the selection [start, end) of text with value and
// returns the new text and the caret position right after the inserted value.
// Offsets count runes and are clamped to the text; a reversed selection is
// treated as a caret at start.
func InsertMergeField(text string, start, end int, value string) (string, int) {
	runes := []rune(text)
	start = clamp(start, 0, len(runes))
	end = clamp(end, start, len(runes))

	out := make([]rune, 0, len(runes)+len(value))
	out = append(out, runes[:start]...)
	out = append(out, []rune(value)...)
	out = append(out, runes[end:]...)

	return string(out), start + len([]rune(value))
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
