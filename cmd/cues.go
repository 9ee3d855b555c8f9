package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/smartledger"
)

// terminalCues maps keypad cues onto what a terminal can do: a bell on the
// completion cue when sound is enabled. Haptics have no terminal analogue.
type terminalCues struct {
	settings smartledger.Settings
}

func (c terminalCues) Cue(level smartledger.CueLevel) {
	if c.settings.SoundEnabled && level == smartledger.CueHeavy {
		fmt.Fprint(os.Stderr, "\a")
	}
}
