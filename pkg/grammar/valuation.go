/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: valuation.go
Description: Valuation solver. Rules may be mutually or self recursive, so valuations are
found by relaxing every rule until a full scan changes nothing rather than by evaluating
the grammar top-down.
*/

package grammar

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// solve relaxes all rules in name order until a fixed point.
// Valuations only decrease and settle within one scan per rule, so the
// cap is never reached for a valid grammar.
func (g *Grammar) solve() error {
	limit := len(g.names) + 2
	for pass := 1; pass <= limit; pass++ {
		changed := 0
		for _, name := range g.names {
			if g.rules[name].relax() {
				changed++
			}
		}
		g.logger.WithFields(logrus.Fields{
			"pass":    pass,
			"changed": changed,
		}).Debug("Valuation pass")

		if changed == 0 {
			g.passes = pass
			return nil
		}
	}
	return fmt.Errorf("grammar: valuations did not converge after %d passes", limit)
}
