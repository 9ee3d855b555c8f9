package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/smartledger"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

type budgetCmd struct {
	set     string
	sound   bool
	haptics bool
}

func (*budgetCmd) Name() string     { return "budget" }
func (*budgetCmd) Synopsis() string { return "show or change the monthly budget and preferences" }
func (*budgetCmd) Usage() string {
	return `sl budget [-set <amount>] [-sound=<bool>] [-haptics=<bool>]

  Without flags, prints the current settings. Flags change the monthly
  budget (in major units, e.g. 5000 or 4999.99) and the feedback toggles.
`
}

func (p *budgetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.set, "set", "", "New monthly budget in major units.")
	f.BoolVar(&p.sound, "sound", true, "Enable sound feedback.")
	f.BoolVar(&p.haptics, "haptics", true, "Enable haptic feedback.")
}

func (p *budgetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store := openStore()
	settings, err := store.LoadSettings()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	changed := false
	var badAmount error
	f.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "set":
			d, err := decimal.NewFromString(p.set)
			if err != nil || d.IsNegative() {
				badAmount = fmt.Errorf("invalid budget amount %q", p.set)
				return
			}
			settings.MonthlyBudget = d.Shift(2).Round(0).IntPart()
			changed = true
		case "sound":
			settings.SoundEnabled = p.sound
			changed = true
		case "haptics":
			settings.HapticsEnabled = p.haptics
			changed = true
		}
	})
	if badAmount != nil {
		fmt.Fprintln(os.Stderr, badAmount)
		return subcommands.ExitUsageError
	}

	if changed {
		if err := store.SaveSettings(settings); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
	}

	fmt.Printf("Monthly budget: %s\n", smartledger.FormatAmount(settings.MonthlyBudget))
	fmt.Printf("Sound: %v\n", settings.SoundEnabled)
	fmt.Printf("Haptics: %v\n", settings.HapticsEnabled)
	return subcommands.ExitSuccess
}
