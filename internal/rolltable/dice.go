package rolltable

import (
	"fmt"
	"strconv"

	"github.com/MichalGniadek/mdbook-rolltables/internal/config"
)

// combinedDice maps row counts with no single-die fit to a pair of dice read
// together, larger die first.
var combinedDice = map[int][2]int{
	16: {4, 4},
	24: {6, 4},
	32: {8, 4},
	36: {6, 6},
	48: {8, 6},
	64: {8, 8},
}

// standardDice is the set of die sizes found in a physical dice set.
var standardDice = map[int]bool{
	4:   true,
	6:   true,
	8:   true,
	10:  true,
	12:  true,
	20:  true,
	100: true,
}

// Dice is the dice choice for a table: a single die, or two dice whose
// results are read together as a two-digit value.
type Dice struct {
	// High is the die size, or the size of the high-digit die of a pair.
	High int
	// Low is the size of the low-digit die, 0 for a single die.
	Low int
}

// ChooseDice picks dice for a table with rows entries. Counts with a known
// two-dice decomposition use the pair; everything else rolls a single die
// with one face per row, whether or not such a die exists.
func ChooseDice(rows int) Dice {
	if d, ok := combinedDice[rows]; ok {
		return Dice{High: d[0], Low: d[1]}
	}
	return Dice{High: rows}
}

// Combined reports whether the result reads two dice together.
func (d Dice) Combined() bool { return d.Low > 0 }

// Unusual reports a die size no physical dice set contains.
func (d Dice) Unusual() bool {
	return !d.Combined() && !standardDice[d.High]
}

// Header returns the die notation for the table header, like d6 or d4.4.
func (d Dice) Header(cfg *config.Config) string {
	if d.Combined() {
		return fmt.Sprintf("d%d%s%d", d.High, cfg.LabelSeparator, d.Low)
	}
	return "d" + strconv.Itoa(d.High)
}

// Labels returns one roll value per row in roll order. The first die of a
// pair is the high digit, so d4.4 runs 1.1, 1.2, ... 1.4, 2.1, ... 4.4.
func (d Dice) Labels(cfg *config.Config) []string {
	if !d.Combined() {
		labels := make([]string, d.High)
		for i := range labels {
			labels[i] = strconv.Itoa(i + 1)
		}
		return labels
	}
	labels := make([]string, 0, d.High*d.Low)
	for hi := 1; hi <= d.High; hi++ {
		for lo := 1; lo <= d.Low; lo++ {
			labels = append(labels, fmt.Sprintf("%d%s%d", hi, cfg.ValueSeparator, lo))
		}
	}
	return labels
}
