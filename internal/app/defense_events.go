// internal/app/defense_events.go
package app

import (
	"fmt"
	"go-space-arcade/internal/audio"
	"go-space-arcade/internal/config"
	"go-space-arcade/internal/event"
	"go-space-arcade/internal/ui"
	"log"
)

// defenseListener переводит события систем в звуки и сообщения.
type defenseListener struct {
	game *Defense
}

// OnEvent реализует интерфейс event.Listener.
func (l *defenseListener) OnEvent(e event.Event) {
	d := l.game
	switch e.Type {
	case event.WaveAnnounced:
		info := e.Data.(event.WaveInfo)
		d.Announcement = Announcement{
			Title:     fmt.Sprintf("WAVE %d", info.Wave),
			Subtitle:  info.Message,
			Boss:      info.Boss,
			remaining: config.AnnounceDelay,
		}
	case event.WaveStarted:
		info := e.Data.(event.WaveInfo)
		if info.Boss {
			d.notify(fmt.Sprintf("BOSS WAVE %d - MOTHERSHIP DETECTED! %d ships total!", info.Wave, info.AlienCount), ui.SeverityError)
		} else {
			d.notify(fmt.Sprintf("Wave %d - %d alien ships incoming!", info.Wave, info.AlienCount), ui.SeverityInfo)
		}
	case event.WaveCompleted:
		info := e.Data.(event.WaveInfo)
		next := info.Wave + 1
		if info.Boss {
			d.notify(fmt.Sprintf("Wave %d Complete! +%d credits | BOSS WAVE %d STARTING NOW!", info.Wave, info.Bonus, next), ui.SeverityError)
		} else {
			d.notify(fmt.Sprintf("Wave %d Complete! +%d credits | Wave %d starting now!", info.Wave, info.Bonus, next), ui.SeveritySuccess)
		}
	case event.ChoiceOffered:
		info := e.Data.(event.WaveInfo)
		d.notify(fmt.Sprintf("Wave %d Complete! +%d credits | SPECIAL UNLOCK AVAILABLE!", info.Wave, info.Bonus), ui.SeveritySuccess)
	case event.BossDefeated:
		d.notify(fmt.Sprintf("BOSS DEFEATED! All aliens now have %.1fx more health!", config.BossHealthBuff), ui.SeverityError)
	case event.AlienKilled:
		d.player.Play(audio.CueAlienDeath)
	case event.MothershipBurst:
		d.notify("Mothership destroyed! Fighters deployed!", ui.SeverityError)
	case event.TowerFired:
		d.player.Play(audio.CueForBehavior(e.Data.(event.TowerInfo).Attack))
	case event.ProjectileBurst:
		d.player.Play(audio.CueBlast)
	case event.TowerPlaced:
		info := e.Data.(event.TowerInfo)
		d.notify(fmt.Sprintf("%s deployed!", info.Name), ui.SeveritySuccess)
	case event.TowerUpgraded:
		info := e.Data.(event.TowerInfo)
		d.notify(fmt.Sprintf("%s upgraded to Level %d!", info.Name, info.Level), ui.SeveritySuccess)
	case event.TowerSold:
		info := e.Data.(event.TowerInfo)
		d.player.Play(audio.CueSell)
		d.notify(fmt.Sprintf("%s sold for %d credits!", info.Name, info.Amount), ui.SeverityInfo)
	case event.GameOver:
		p := d.Progress
		log.Printf("[Defense %s] Game over on wave %d, %d kills", d.shortID(), p.Wave, p.Kills)
		d.notify(fmt.Sprintf("Station Destroyed! Survived %d waves. %d aliens destroyed!", p.Wave-1, p.Kills), ui.SeverityError)
	}
}
