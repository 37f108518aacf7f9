package preferences

import (
	"encoding/json"
	"fmt"
	"time"
)

// RecentConfig is the configuration remembered with a recent directory.
type RecentConfig struct {
	IgnoreFile string `json:"ignore_file,omitempty"`
}

// RecentEntry is one remembered directory.
type RecentEntry struct {
	DirectoryPath string       `json:"directory_path"`
	Config        RecentConfig `json:"config"`
	CreatedAt     Timestamp    `json:"created_at"`
}

// Document is the on-disk shape of configuration.json.
type Document struct {
	Language    string        `json:"language"`
	RecentFiles []RecentEntry `json:"recent_files"`
	CreatedAt   Timestamp     `json:"created_at"`
	UpdatedAt   Timestamp     `json:"updated_at"`
}

// Timestamp accepts RFC 3339 as well as zone-less ISO 8601 times, which
// older preference files contain. It is always written as RFC 3339.
type Timestamp struct {
	time.Time
}

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.Format(time.RFC3339Nano))
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timestampLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("preferences: invalid timestamp %q", raw)
}
