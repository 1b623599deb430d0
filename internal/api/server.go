package api

import (
	"sync"

	"github.com/vytor/dialoguedeck/internal/services"
)

// Server adapts HTTP requests into session intents. Requests are handled
// one at a time; the session itself is not safe for concurrent use.
type Server struct {
	Session services.SessionService

	mu sync.Mutex
}
