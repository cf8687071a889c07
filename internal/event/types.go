package event

import "go-lane-defense/internal/types"

const (
	SessionStarted       EventType = "SessionStarted"       // отсчёт закончился, игра идёт
	SessionRedirected    EventType = "SessionRedirected"    // нет имени игрока
	CountdownStage       EventType = "CountdownStage"       // показан очередной этап отсчёта
	GamePaused           EventType = "GamePaused"
	GameResumed          EventType = "GameResumed"
	HazardSpawned        EventType = "HazardSpawned"
	HazardNeutralized    EventType = "HazardNeutralized"
	HazardBreached       EventType = "HazardBreached" // зомби ушёл за левый край
	CollectibleSpawned   EventType = "CollectibleSpawned"
	CollectibleCollected EventType = "CollectibleCollected"
	CollectibleExpired   EventType = "CollectibleExpired"
	DefenseTriggered     EventType = "DefenseTriggered"
	SpawnSkipped         EventType = "SpawnSkipped" // достигнут лимит живых сущностей
)

// EntityPayload accompanies spawn, removal and trigger events.
type EntityPayload struct {
	ID   types.EntityID
	Lane int
	At   types.Point
}

// CountdownPayload accompanies CountdownStage.
type CountdownPayload struct {
	Stage int    // 3, 2, 1
	Label string // READY, SET, PLANT
}

// ResourcePayload accompanies CollectibleCollected.
type ResourcePayload struct {
	ID        types.EntityID
	Gained    int
	Resources int
}
