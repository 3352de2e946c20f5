package sanctum

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/lore"
)

type scriptedGenerator struct {
	mu     sync.Mutex
	stages []int
	err    error
}

func (g *scriptedGenerator) Generate(_ context.Context, stage int) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.stages = append(g.stages, stage)
	if g.err != nil {
		return "", g.err
	}
	return fmt.Sprintf("architect fragment %d", stage), nil
}

var fixedNow = time.UnixMilli(1700000000123)

func newTestSession(t *testing.T, generator lore.Generator) *Session {
	return NewSession(SessionConfig{
		Generator: generator,
		Logger:    zaptest.NewLogger(t),
		Clock:     func() time.Time { return fixedNow },
		Jitter:    func() float64 { return 1 },
	})
}

func completeCurrent(t *testing.T, session *Session) LoreEntry {
	t.Helper()
	puzzle := session.Puzzle()
	solve(t, puzzle)
	entry, err := session.CompleteStage(context.Background(), puzzle)
	require.NoError(t, err)
	return entry
}

func TestNewSessionInitialState(t *testing.T) {
	session := newTestSession(t, nil)
	assert.Equal(t, StageEntryVault, session.Stage())
	assert.Equal(t, SystemStatus{Integrity: 85, Energy: 12, Resonance: 3}, session.Status())
	assert.Empty(t, session.Log())
	assert.False(t, session.Reactivated())
}

func TestCompleteStageRecordsLore(t *testing.T) {
	generator := &scriptedGenerator{}
	session := newTestSession(t, generator)

	entry := completeCurrent(t, session)
	assert.Equal(t, "LOG_1_1700000000123", entry.ID)
	assert.Equal(t, "SECTOR 1 DECRYPTED", entry.Title)
	assert.Equal(t, "architect fragment 1", entry.Content)
	assert.Equal(t, StageEntryVault, entry.UnlockedAt)

	status := session.Status()
	assert.Equal(t, StageGravityWells, session.Stage())
	assert.Equal(t, 32.0, status.Energy)
	assert.Equal(t, 18.0, status.Resonance)
}

func TestCompleteAllStages(t *testing.T) {
	generator := &scriptedGenerator{}
	session := newTestSession(t, generator)

	for i := 0; i < int(FinalStage); i++ {
		completeCurrent(t, session)
	}

	assert.True(t, session.Reactivated())
	assert.Equal(t, FinalStage, session.Stage())
	status := session.Status()
	assert.Equal(t, 92.0, status.Energy)
	assert.Equal(t, 63.0, status.Resonance)
	assert.Len(t, session.Log(), 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, generator.stages)

	puzzle := session.Puzzle()
	solve(t, puzzle)
	_, err := session.CompleteStage(context.Background(), puzzle)
	assert.ErrorIs(t, err, ErrAlreadyReactivated)
}

func TestCompleteStageFallbackText(t *testing.T) {
	cases := map[string]struct {
		generator lore.Generator
		expected  string
	}{
		"offline":     {generator: lore.Offline{}, expected: lore.OfflineText},
		"interrupted": {generator: &scriptedGenerator{err: lore.ErrServiceUnavailable}, expected: lore.InterruptedText},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			entry := completeCurrent(t, newTestSession(t, tc.generator))
			assert.Equal(t, tc.expected, entry.Content)
		})
	}
}

func TestCompleteStageRequiresUnlockedPuzzle(t *testing.T) {
	session := newTestSession(t, nil)
	_, err := session.CompleteStage(context.Background(), session.Puzzle())
	assert.ErrorIs(t, err, ErrPuzzleLocked)
	_, err = session.CompleteStage(context.Background(), nil)
	assert.ErrorIs(t, err, ErrPuzzleLocked)
}

func TestCompleteStageRejectsOtherStage(t *testing.T) {
	session := newTestSession(t, nil)
	puzzle, err := NewPuzzle(StageMachineCore)
	require.NoError(t, err)
	_, err = session.CompleteStage(context.Background(), puzzle)
	assert.ErrorIs(t, err, ErrStageMismatch)
}

func TestDriftClamps(t *testing.T) {
	session := newTestSession(t, nil)
	var status SystemStatus
	for i := 0; i < 40; i++ {
		status = session.Drift()
	}
	assert.Equal(t, 100.0, status.Integrity)
	assert.Equal(t, 32.0, status.Energy)

	falling := NewSession(SessionConfig{Jitter: func() float64 { return 0 }})
	for i := 0; i < 200; i++ {
		status = falling.Drift()
	}
	assert.Equal(t, SystemStatus{Integrity: 0, Energy: 0, Resonance: 3}, status)
}

func TestShareText(t *testing.T) {
	session := newTestSession(t, nil)
	text := session.ShareText()
	for _, want := range []string{"Energy: 12.0 PW", "Sector: ENTRY VAULT", "Lunar Machine Sanctum"} {
		assert.Contains(t, text, want)
	}
}

func TestSessionConcurrentAccess(t *testing.T) {
	session := newTestSession(t, &scriptedGenerator{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				session.Drift()
				_ = session.Status()
				_ = session.ShareText()
			}
		}()
	}

	results := make(chan error, 4)
	puzzle := session.Puzzle()
	solve(t, puzzle)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := session.CompleteStage(context.Background(), puzzle)
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	succeeded := 0
	for err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.True(t, errors.Is(err, ErrStageMismatch), "unexpected error: %v", err)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, session.Log(), 1)
}
