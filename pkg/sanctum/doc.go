// Package sanctum models the Lunar Machine Sanctum mini-game: five mechanism
// stages, each unlocked by rotating three resonance rings into alignment, and
// a session that tracks system status and the lore log revealed as stages
// are reactivated.
package sanctum
