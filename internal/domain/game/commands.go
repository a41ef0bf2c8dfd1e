package game

import (
	"strings"
)

// Commands lists every in-game command name, aliases included
var Commands = []string{"roll", "rolldice", "buy", "unlock", "pass", "bid", "escape", "bail"}

// IsCommand reports whether name is an in-game command
func IsCommand(name string) bool {
	name = strings.ToLower(name)
	for _, c := range Commands {
		if c == name {
			return true
		}
	}
	return false
}

func (e *Engine) handleCommand(playerID, name string, args []string) bool {
	if e.over() {
		return false
	}
	p, ok := e.byID[playerID]
	if !ok || p.Eliminated {
		return false
	}

	var handled bool
	switch strings.ToLower(name) {
	case "roll", "rolldice":
		handled = e.cmdRoll(p)
	case "buy", "unlock":
		handled = e.cmdBuy(p)
	case "pass":
		handled = e.cmdPass(p)
	case "bid":
		handled = e.cmdBid(p, args)
	case "escape", "bail":
		handled = e.cmdEscape(p)
	}

	if !handled {
		e.log.Debugf("Ignored %s from %s while %s", name, p.Name, e.state)
	}
	return handled
}
