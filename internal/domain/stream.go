package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamCatalogChanged = "stream:catalog:changed"
)

// Типы изменений каталога
const (
	CatalogChangeCreated = "created"
	CatalogChangeUpdated = "updated"
	CatalogChangeDeleted = "deleted"
)

// CatalogChangedEvent - событие изменения каталога, запускает обновление датасета ML
type CatalogChangedEvent struct {
	EventID    uuid.UUID `json:"event_id"`
	PlaceID    string    `json:"place_id"`
	ChangeType string    `json:"change_type"`
	OccurredAt time.Time `json:"occurred_at"`
}

// NewCatalogChangedEvent создает событие с новым идентификатором
func NewCatalogChangedEvent(placeID, changeType string) *CatalogChangedEvent {
	return &CatalogChangedEvent{
		EventID:    uuid.New(),
		PlaceID:    placeID,
		ChangeType: changeType,
		OccurredAt: time.Now().UTC(),
	}
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
