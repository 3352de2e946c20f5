package sanctum

type Stage int

const (
	StageEntryVault Stage = iota + 1
	StageGravityWells
	StageCrystalHalls
	StageMachineCore
	StageApexChamber
)

const FinalStage = StageApexChamber

var stageNames = map[Stage]string{
	StageEntryVault:   "ENTRY VAULT",
	StageGravityWells: "GRAVITY WELLS",
	StageCrystalHalls: "CRYSTAL HALLS",
	StageMachineCore:  "MACHINE CORE",
	StageApexChamber:  "APEX CHAMBER",
}

func (s Stage) Valid() bool {
	return s >= StageEntryVault && s <= FinalStage
}

func (s Stage) String() string {
	if name, ok := stageNames[s]; ok {
		return name
	}
	return "UNKNOWN SECTOR"
}

// Progress is the fraction of the sanctum reached at this stage, in (0, 1].
func (s Stage) Progress() float64 {
	return float64(s) / float64(FinalStage)
}
