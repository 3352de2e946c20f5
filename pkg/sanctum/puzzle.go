package sanctum

import "fmt"

type Ring int

const (
	RingA Ring = iota
	RingB
	RingC
)

const (
	// AlignmentTolerance is the largest angular distance, exclusive, at which
	// a ring counts as aligned.
	AlignmentTolerance = 20
	FullPower          = 100
)

var (
	ringSteps = [3]int{45, -45, 45}
	ringPower = [3]int{33, 33, 34}
)

func (r Ring) valid() bool {
	return r >= RingA && r <= RingC
}

func (r Ring) String() string {
	switch r {
	case RingA:
		return "A"
	case RingB:
		return "B"
	case RingC:
		return "C"
	default:
		return fmt.Sprintf("Ring(%d)", int(r))
	}
}

// Targets returns the alignment angle of each ring for a stage.
func Targets(stage Stage) [3]int {
	s := int(stage)
	return [3]int{s * 90, s * 180, s*45 + 180}
}

// Puzzle is one stage's ring mechanism. It is not safe for concurrent use.
type Puzzle struct {
	stage     Stage
	targets   [3]int
	rotations [3]int
	unlocked  bool
}

func NewPuzzle(stage Stage) (*Puzzle, error) {
	if !stage.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStage, stage)
	}
	puzzle := &Puzzle{stage: stage, targets: Targets(stage)}
	puzzle.unlocked = puzzle.Power() >= FullPower
	return puzzle, nil
}

func (p *Puzzle) Stage() Stage {
	return p.stage
}

// Rotate turns a ring by its fixed step and returns the resulting power.
// Once the mechanism has unlocked the rings no longer move.
func (p *Puzzle) Rotate(ring Ring) (int, error) {
	if !ring.valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidRing, ring)
	}
	if !p.unlocked {
		p.rotations[ring] += ringSteps[ring]
	}

	power := p.Power()
	if power >= FullPower {
		p.unlocked = true
	}
	return power, nil
}

func (p *Puzzle) Rotation(ring Ring) int {
	if !ring.valid() {
		return 0
	}
	return p.rotations[ring]
}

func (p *Puzzle) Aligned(ring Ring) bool {
	if !ring.valid() {
		return false
	}
	return angularDistance(p.rotations[ring], p.targets[ring]) < AlignmentTolerance
}

// Power sums the contribution of every aligned ring.
func (p *Puzzle) Power() int {
	power := 0
	for ring := RingA; ring <= RingC; ring++ {
		if p.Aligned(ring) {
			power += ringPower[ring]
		}
	}
	return power
}

func (p *Puzzle) Unlocked() bool {
	return p.unlocked
}

// Solution returns how many rotations each ring needs from rest.
func Solution(stage Stage) ([3]int, error) {
	var turns [3]int
	if !stage.Valid() {
		return turns, fmt.Errorf("%w: %d", ErrInvalidStage, stage)
	}

	targets := Targets(stage)
	for ring := RingA; ring <= RingC; ring++ {
		found := false
		for count := 0; count < 360; count++ {
			if angularDistance(count*ringSteps[ring], targets[ring]) < AlignmentTolerance {
				turns[ring] = count
				found = true
				break
			}
		}
		if !found {
			return turns, fmt.Errorf("ring %s cannot align at stage %d", ring, stage)
		}
	}
	return turns, nil
}

func normalizeDegrees(degrees int) int {
	normalized := degrees % 360
	if normalized < 0 {
		normalized += 360
	}
	return normalized
}

func angularDistance(a, b int) int {
	distance := normalizeDegrees(a - b)
	if distance > 180 {
		distance = 360 - distance
	}
	return distance
}
