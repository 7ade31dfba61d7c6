package models

// Event types the site currently emits. Type is caller-supplied and not
// validated against a closed set; unknown types are stored as-is.
const (
	EventTypePageview     = "pageview"
	EventTypeExit         = "exit"
	EventTypeCopy         = "copy"
	EventTypeROIUnlock    = "roi_unlock"
	EventTypeQuizComplete = "quiz_complete"
)

// AnalyticsEvent represents one tracked visitor signal
type AnalyticsEvent struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type,omitempty"`
	Path       string                 `json:"path"`
	IP         string                 `json:"ip"`
	UserAgent  string                 `json:"userAgent"`
	Timestamp  string                 `json:"timestamp"`
	Referrer   string                 `json:"referrer"`
	DeviceType string                 `json:"deviceType"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}

// EventDraft is the caller-supplied shape for recording an event. IP and
// UserAgent are filled in server-side from request headers.
type EventDraft struct {
	Type       string                 `json:"type"`
	Path       string                 `json:"path"`
	IP         string                 `json:"-"`
	UserAgent  string                 `json:"-"`
	Referrer   string                 `json:"referrer"`
	DeviceType string                 `json:"deviceType"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
