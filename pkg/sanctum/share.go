package sanctum

import "fmt"

const shareTemplate = "🌑 System Status: ONLINE\n⚡ Energy: %.1f PW\n📍 Sector: %s\n\nI am reactivating the Lunar Machine Sanctum."

// ShareText renders the broadcast message for the current session state.
func (s *Session) ShareText() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fmt.Sprintf(shareTemplate, s.status.Energy, s.stage)
}
