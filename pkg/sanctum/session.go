package sanctum

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/lore"
)

const (
	InitialIntegrity = 85
	InitialEnergy    = 12
	InitialResonance = 3

	energyPerStage    = 20
	resonancePerStage = 15
	statusCeiling     = 100
)

type SystemStatus struct {
	Integrity float64 `json:"integrity"`
	Energy    float64 `json:"energy"`
	Resonance float64 `json:"resonance"`
}

type LoreEntry struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	UnlockedAt Stage  `json:"unlockedAt"`
}

type SessionConfig struct {
	Generator lore.Generator
	Logger    *zap.Logger
	// Clock defaults to time.Now.
	Clock func() time.Time
	// Jitter returns values in [0, 1); defaults to math/rand/v2.
	Jitter func() float64
}

// Session tracks one playthrough. It is safe for concurrent use.
type Session struct {
	mu          sync.Mutex
	stage       Stage
	status      SystemStatus
	log         []LoreEntry
	reactivated bool

	generator lore.Generator
	logger    *zap.Logger
	clock     func() time.Time
	jitter    func() float64
}

func NewSession(config SessionConfig) *Session {
	generator := config.Generator
	if generator == nil {
		generator = lore.Offline{}
	}
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	clock := config.Clock
	if clock == nil {
		clock = time.Now
	}
	jitter := config.Jitter
	if jitter == nil {
		jitter = rand.Float64
	}

	return &Session{
		stage: StageEntryVault,
		status: SystemStatus{
			Integrity: InitialIntegrity,
			Energy:    InitialEnergy,
			Resonance: InitialResonance,
		},
		generator: generator,
		logger:    logger.Named("sanctum"),
		clock:     clock,
		jitter:    jitter,
	}
}

func (s *Session) Stage() Stage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stage
}

func (s *Session) Status() SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status
}

// Log returns a copy of the unlocked lore entries, oldest first.
func (s *Session) Log() []LoreEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]LoreEntry(nil), s.log...)
}

// Reactivated reports whether the apex chamber has been completed.
func (s *Session) Reactivated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reactivated
}

// Puzzle returns a fresh mechanism for the current stage.
func (s *Session) Puzzle() *Puzzle {
	puzzle, _ := NewPuzzle(s.Stage())
	return puzzle
}

// CompleteStage records the solved puzzle of the current stage. Lore is
// generated outside the lock; a generation failure is not an error and the
// entry carries the in-world fallback text instead.
func (s *Session) CompleteStage(ctx context.Context, puzzle *Puzzle) (LoreEntry, error) {
	if puzzle == nil || !puzzle.Unlocked() {
		return LoreEntry{}, ErrPuzzleLocked
	}

	s.mu.Lock()
	stage := s.stage
	reactivated := s.reactivated
	s.mu.Unlock()

	if reactivated {
		return LoreEntry{}, ErrAlreadyReactivated
	}
	if puzzle.Stage() != stage {
		return LoreEntry{}, fmt.Errorf("%w: puzzle %d, session %d", ErrStageMismatch, puzzle.Stage(), stage)
	}

	content, err := s.generator.Generate(ctx, int(stage))
	if err != nil {
		s.logger.Info("using fallback lore", zap.Int("stage", int(stage)), zap.Error(err))
		content = lore.FallbackText(err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != stage || s.reactivated {
		return LoreEntry{}, fmt.Errorf("%w: stage %d already completed", ErrStageMismatch, stage)
	}

	entry := LoreEntry{
		ID:         fmt.Sprintf("LOG_%d_%d", stage, s.clock().UnixMilli()),
		Title:      fmt.Sprintf("SECTOR %d DECRYPTED", stage),
		Content:    content,
		UnlockedAt: stage,
	}
	s.log = append(s.log, entry)

	if stage < FinalStage {
		s.stage++
		s.status.Energy += energyPerStage
		s.status.Resonance += resonancePerStage
	} else {
		s.reactivated = true
	}

	s.logger.Info("stage completed",
		zap.Int("stage", int(stage)),
		zap.String("entry", entry.ID),
		zap.Bool("reactivated", s.reactivated))
	return entry, nil
}

// Drift applies one tick of ambient fluctuation to integrity and energy,
// clamped to [0, 100].
func (s *Session) Drift() SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status.Integrity = clamp(s.status.Integrity + s.jitter() - 0.5)
	s.status.Energy = clamp(s.status.Energy + s.jitter() - 0.5)
	return s.status
}

func clamp(value float64) float64 {
	return min(statusCeiling, max(0, value))
}
