// Package demo holds the reactive graphs behind the module's two runnable
// examples. The reactor-demo CLI runs them as its rpg and form subcommands;
// the module ships no separate example binaries.
package demo

import (
	"fmt"
	"io"

	"github.com/nodeflow/reactor"
)

// Stance selects which damage formula a character's attack uses.
type Stance int

const (
	StanceOffensive Stance = iota
	StanceDefensive
)

func (s Stance) String() string {
	if s == StanceDefensive {
		return "defensive"
	}
	return "offensive"
}

// RunRPG drives a small character sheet through a scripted sequence of stat
// changes, printing the sheet to w every time it re-renders. It exercises
// diamond dependencies (attackPower and armorClass both derive from the
// same stat sources) and conditional re-subscription (damageRoll only
// depends on whichever branch the current stance selects).
func RunRPG(w io.Writer) {
	g := reactor.NewGraph()

	strength := reactor.NewSource(g, 10)
	dexterity := reactor.NewSource(g, 8)
	weaponDamage := reactor.NewSource(g, 5)
	stance := reactor.NewSource(g, StanceOffensive)

	attackPower := reactor.NewComputed(g, func() int {
		return strength.Read() + weaponDamage.Read()
	})
	armorClass := reactor.NewComputed(g, func() int {
		return 10 + dexterity.Read()/2
	})
	damageRoll := reactor.NewComputed(g, func() int {
		if stance.Read() == StanceDefensive {
			return armorClass.Read() / 2
		}
		return attackPower.Read()
	})

	sheet := reactor.NewEffect(g, func() {
		currentStance := stance.Read()
		fmt.Fprintf(w, "sheet: stance=%s attack=%d armor=%d damage=%d\n",
			currentStance, attackPower.Read(), armorClass.Read(), damageRoll.Read())
		reactor.OnCleanup(g, func() {
			fmt.Fprintf(w, "  (retiring sheet rendered for stance=%s)\n", currentStance)
		})
	})
	defer sheet.Dispose()

	weaponDamage.Write(7)

	g.Batch(func() {
		strength.Write(14)
		dexterity.Write(12)
	})

	stance.Write(StanceDefensive)
	dexterity.Write(16)
}
