package smartledger

// Settings are the user preferences persisted next to the ledger.
type Settings struct {
	MonthlyBudget  int64 `json:"monthlyBudget"` // minor units
	SoundEnabled   bool  `json:"soundEnabled"`
	HapticsEnabled bool  `json:"hapticsEnabled"`
}

// DefaultSettings returns the settings of a fresh install: a ¥5000 monthly
// budget with sound and haptics on.
func DefaultSettings() Settings {
	return Settings{
		MonthlyBudget:  500000,
		SoundEnabled:   true,
		HapticsEnabled: true,
	}
}
