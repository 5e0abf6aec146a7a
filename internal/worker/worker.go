package worker

import (
	"context"
	"errors"
)

// ErrNoWorkers - менеджер запущен без зарегистрированных воркеров
var ErrNoWorkers = errors.New("no workers registered")

// Worker - фоновый обработчик, живущий до отмены ctx или вызова Stop
type Worker interface {
	Start(ctx context.Context) error
	Stop() error
	Name() string
}
