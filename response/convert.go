package response

import (
	"encoding/json"
	"time"
)

// TimestampFormat is the layout used for Envelope.Timestamp
const TimestampFormat = "2006-01-02T15:04:05.000Z07:00"

// Success wraps a provider payload. A nil payload is stored as JSON null so
// that data is always present on success.
func Success(data json.RawMessage, at time.Time) *Envelope {
	if len(data) == 0 {
		data = json.RawMessage("null")
	}
	return &Envelope{
		Success:   true,
		Data:      data,
		Timestamp: FormatTimestamp(at),
	}
}

// Failure wraps an error message. An empty message is replaced by fallback.
func Failure(message, fallback string, at time.Time) *Envelope {
	if message == "" {
		message = fallback
	}
	return &Envelope{
		Success:   false,
		Error:     message,
		Timestamp: FormatTimestamp(at),
	}
}

// FormatTimestamp renders t in UTC with millisecond precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// Marshal renders v as indented JSON for tool and CLI output
func Marshal(v any) string {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(data)
}
