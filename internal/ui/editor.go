package ui

// maxRuleLength bounds the editor buffer; the longest sensible rule,
// B012345678/S012345678, has 21 characters.
const maxRuleLength = 32

// RuleEditor is a one-line text buffer for typing a rule.
type RuleEditor struct {
	active bool
	text   []rune
}

// Open starts editing with the current rule text.
func (e *RuleEditor) Open(current string) {
	e.active = true
	e.text = append(e.text[:0], []rune(current)...)
}

// Active reports whether the editor is capturing input.
func (e *RuleEditor) Active() bool { return e.active }

// Insert appends printable ASCII characters; others are ignored.
func (e *RuleEditor) Insert(rs ...rune) {
	if !e.active {
		return
	}
	for _, r := range rs {
		if r < ' ' || r > '~' || len(e.text) >= maxRuleLength {
			continue
		}
		e.text = append(e.text, r)
	}
}

// Backspace removes the last character.
func (e *RuleEditor) Backspace() {
	if e.active && len(e.text) > 0 {
		e.text = e.text[:len(e.text)-1]
	}
}

// Text returns the buffer.
func (e *RuleEditor) Text() string { return string(e.text) }

// Commit closes the editor and returns the typed text.
func (e *RuleEditor) Commit() string {
	e.active = false
	return string(e.text)
}

// Cancel closes the editor and discards the text.
func (e *RuleEditor) Cancel() {
	e.active = false
	e.text = e.text[:0]
}
