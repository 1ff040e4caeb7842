// internal/system/city.go
package system

import (
	"go-space-arcade/internal/component"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/defs"
	"go-space-arcade/internal/entity"
	"go-space-arcade/internal/utils"
)

// windowPattern — раскладка окон для стиля здания.
type windowPattern struct {
	size, spacing float64
	layout        string  // grid | sparse | horizontal
	keep, lit     float64 // вероятности появления окна и света в нём
}

func patternFor(style string) windowPattern {
	switch style {
	case "tower":
		return windowPattern{size: 6, spacing: 8, layout: "grid", keep: 0.7, lit: 0.5}
	case "industrial":
		return windowPattern{size: 12, spacing: 18, layout: "sparse", keep: 0.4, lit: 0.3}
	case "wide":
		return windowPattern{size: 10, spacing: 15, layout: "horizontal", keep: 0.8, lit: 0.6}
	}
	return windowPattern{size: 8, spacing: 12, layout: "grid", keep: 0.7, lit: 0.5}
}

// GenerateCity заполняет мир зданиями. Декор создаётся один раз и больше не меняется.
func GenerateCity(world *entity.ShooterWorld, buildingTypes []defs.BuildingType, prng *utils.PRNGService) {
	world.Buildings.Clear()
	for i := 0; i < config.BuildingCount; i++ {
		bt := buildingTypes[prng.Intn(len(buildingTypes))]
		x := 200 + float64(i)*70 + prng.Float64()*30
		w := prng.Range(bt.WidthMin, bt.WidthSpread)
		h := prng.Range(bt.HeightMin, bt.HeightSpread)
		rect := component.Rect{X: x, Y: config.GroundY - h, W: w, H: h}

		world.Buildings.Add(world.NewEntity(), &component.Building{
			Rect:      rect,
			Kind:      bt.ID,
			Style:     bt.Style,
			Health:    float64(bt.Health),
			MaxHealth: float64(bt.Health),
			Points:    bt.Points,
			Color:     bt.Color.RGBA(),
			Windows:   generateWindows(rect, bt.Style, prng),
			Details:   generateDetails(rect, bt.Style),
		})
	}
}

func generateWindows(r component.Rect, style string, prng *utils.PRNGService) []component.Window {
	p := patternFor(style)
	var windows []component.Window
	add := func(x, y float64) {
		if prng.Chance(p.keep) {
			windows = append(windows, component.Window{
				X: x, Y: y, Size: p.size,
				Lit:        prng.Chance(p.lit),
				Industrial: p.layout == "sparse",
			})
		}
	}

	switch p.layout {
	case "horizontal":
		for y := r.Y + 15; y < r.Y+r.H-p.size; y += p.spacing * 2 {
			for x := r.X + 8; x < r.X+r.W-p.size; x += p.spacing {
				add(x, y)
			}
		}
	case "sparse":
		for x := r.X + 15; x < r.X+r.W-p.size; x += p.spacing * 2 {
			for y := r.Y + 15; y < r.Y+r.H-p.size; y += p.spacing * 2 {
				add(x, y)
			}
		}
	default:
		for x := r.X + 8; x < r.X+r.W-p.size; x += p.spacing {
			for y := r.Y + 8; y < r.Y+r.H-p.size; y += p.spacing {
				add(x, y)
			}
		}
	}
	return windows
}

func generateDetails(r component.Rect, style string) []component.Detail {
	switch style {
	case "tower":
		return []component.Detail{{Kind: "antenna", Rect: component.Rect{X: r.X + r.W/2 - 1, Y: r.Y - 20, W: 2, H: 20}}}
	case "industrial":
		return []component.Detail{{Kind: "smokestack", Rect: component.Rect{X: r.X + r.W - 15, Y: r.Y - 30, W: 8, H: 30}}}
	case "wide":
		return []component.Detail{{Kind: "sign", Rect: component.Rect{X: r.X + 10, Y: r.Y - 15, W: r.W - 20, H: 10}}}
	case "complex":
		details := make([]component.Detail, 3)
		for i := range details {
			details[i] = component.Detail{Kind: "ac_unit", Rect: component.Rect{X: r.X + 10 + float64(i)*15, Y: r.Y - 8, W: 8, H: 6}}
		}
		return details
	}
	return nil
}
