package ids

import "github.com/segmentio/ksuid"

// New returns a sortable, URL-safe identifier for server-assigned entities.
func New() string {
	return ksuid.New().String()
}
