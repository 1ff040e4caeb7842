// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/system"
)

// InfoPanel — подсказка о башне под курсором.
type InfoPanel struct {
	Title string
	Lines []string
}

// NewTowerInfo собирает строки подсказки для башни.
func NewTowerInfo(t *component.Tower) InfoPanel {
	p := InfoPanel{
		Title: fmt.Sprintf("%s (Level %d)", t.Name, t.Level),
		Lines: []string{
			fmt.Sprintf("Damage: %.0f", t.Damage),
			fmt.Sprintf("Range: %.0f", t.Range),
			"Attack: " + attackLabel(t.Attack),
		},
	}
	if t.Level < config.MaxTowerLevel {
		p.Lines = append(p.Lines, fmt.Sprintf("Upgrade: %d credits (E or Shift+Click)", system.UpgradeCost(t.BaseCost, t.Level)))
	} else {
		p.Lines = append(p.Lines, "Max level")
	}
	p.Lines = append(p.Lines, fmt.Sprintf("Sell: %d credits (F)", system.SellRefund(t.BaseCost, t.Level)))
	return p
}

func attackLabel(b defs.Behavior) string {
	switch b.Kind {
	case defs.BehaviorContinuous:
		return "continuous beam"
	case defs.BehaviorExplosive:
		return fmt.Sprintf("explosive, radius %.0f", b.AOE)
	case defs.BehaviorSlow:
		return "slows targets"
	case defs.BehaviorChain:
		return fmt.Sprintf("chains to %d targets", b.ChainCount)
	case defs.BehaviorPierce:
		return fmt.Sprintf("pierces %d targets", b.PierceCount)
	}
	return "single target"
}

// ChoiceOption — карточка выбора особой башни после девятой волны.
type ChoiceOption struct {
	Button
	Description string
}

// ChoiceOptions раскладывает особые башни по центру поля.
func ChoiceOptions(specials []defs.TowerDefinition) []ChoiceOption {
	const w, h, gap = 220, 120, 40
	total := len(specials)*w + max(len(specials)-1, 0)*gap
	x := (config.FieldWidth - total) / 2
	y := config.FieldHeight/2 - h/2

	out := make([]ChoiceOption, 0, len(specials))
	for i, def := range specials {
		out = append(out, ChoiceOption{
			Button:      NewButton(x+i*(w+gap), y, w, h, fmt.Sprintf("%d. %s", i+1, def.Name), def.ID),
			Description: fmt.Sprintf("%s - %d credits", attackLabel(def.Attack), def.Cost),
		})
	}
	return out
}
