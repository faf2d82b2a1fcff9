// Package lookup provides the identifier lookup adapters for the ORCID
// researcher registry and the ROR organization registry, plus the shared
// policy for resolving a candidate list against operator input.
//
// Both adapters fail closed: any transport, status, or parse problem is
// logged and yields an empty candidate list, never an error. The caller
// treats an empty list as "no match" and falls back to manual entry.
// Lookups are synchronous blocking requests with a bounded client timeout;
// there is no retry logic.
package lookup

import (
	"net/http"
	"time"
)

// DefaultTimeout bounds every lookup request.
const DefaultTimeout = 10 * time.Second

func newHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}
