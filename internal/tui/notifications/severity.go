package notifications

// Severity picks the icon and colors of a notification
type Severity int

const (
	Info Severity = iota
	Warning
	Error
	// Success confirms a completed change, such as a deleted plan
	Success
)

// Banner reports whether the severity is drawn as a boxed banner above the
// view rather than only in the status bar
func (s Severity) Banner() bool {
	return s == Error
}
