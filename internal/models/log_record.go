package models

// BytesAbsent is the value the bytes field carries when no body size was recorded.
const BytesAbsent = "-"

// LogRecord is one access log line that matched the Combined Log Format.
// Every field keeps the exact text captured from the line.
type LogRecord struct {
	ClientIP  string
	Timestamp string
	Method    string
	Resource  string
	Status    string // three digits
	Bytes     string // digits or BytesAbsent
	Referrer  string
	UserAgent string
}

// StatusClass returns the leading digit of the status code ("2" for 204).
func (r *LogRecord) StatusClass() string {
	if r.Status == "" {
		return ""
	}
	return r.Status[:1]
}

// HasBytes reports whether a body size was recorded.
func (r *LogRecord) HasBytes() bool {
	return r.Bytes != BytesAbsent
}
