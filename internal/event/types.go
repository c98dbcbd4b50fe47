// internal/event/types.go
package event

const (
	MonsterSpawned  EventType = "MonsterSpawned"
	MonsterDefeated EventType = "MonsterDefeated" // weapon matched
	MonsterEscaped  EventType = "MonsterEscaped"  // left the screen unharmed
	HeroDamaged     EventType = "HeroDamaged"     // weapon mismatch on collision
	LevelCompleted  EventType = "LevelCompleted"
	GameOver        EventType = "GameOver"
	ChoiceOpened    EventType = "ChoiceOpened"
)
