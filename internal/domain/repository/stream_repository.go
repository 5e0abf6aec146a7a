package repository

import (
	"context"

	"github.com/itinerary-service/internal/domain"
)

// StreamRepository - интерфейс для работы с Redis Streams
type StreamRepository interface {
	// ConsumeStream читает сообщения из стрима в рамках consumer group
	ConsumeStream(ctx context.Context, stream, group, consumer string) (<-chan domain.StreamMessage, error)

	// AckMessage подтверждает обработку сообщения
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// CreateConsumerGroup создаёт consumer group (существующая группа не ошибка)
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// PublishToStream сериализует data в JSON и добавляет в стрим
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
