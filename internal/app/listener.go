// internal/app/listener.go
package app

import (
	"go-endless-runner/internal/config"
	"go-endless-runner/internal/event"
	"go-endless-runner/internal/utils"
)

// GameEventListener applies collision outcomes to the session. Every
// resolved monster counts toward progress, including escapes and the ones
// that hurt the hero — only the heart cost differs.
type GameEventListener struct {
	game *Game
}

func (l *GameEventListener) OnEvent(e event.Event) {
	sess := l.game.ECS.Session
	switch e.Type {
	case event.MonsterDefeated, event.MonsterEscaped:
		sess.MonstersDefeated++
	case event.HeroDamaged:
		sess.MonstersDefeated++
		sess.Hearts = utils.ClampInt(sess.Hearts-1, 0, config.MaxHearts)
		sess.FlashTimer = config.DamageFlashDuration
	}
}
