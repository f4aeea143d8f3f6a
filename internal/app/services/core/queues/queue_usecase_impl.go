package queues

import (
	"context"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/app/models"
	"hospicare-service/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

type queueUsecase struct {
	QueueRepository contracts.QueueRepository
	Log             *zap.Logger
}

var (
	queueUsecaseInstance contracts.QueueUsecase
	onceQueueUsecase     sync.Once
)

func NewQueueUsecase(queueRepository contracts.QueueRepository, logger *zap.Logger) contracts.QueueUsecase {
	onceQueueUsecase.Do(func() {
		instance := &queueUsecase{
			QueueRepository: queueRepository,
			Log:             logger,
		}
		queueUsecaseInstance = instance
	})
	return queueUsecaseInstance
}

// FindByRoomAndDate returns the day's waiting list in serving order. The
// doctor-facing screen filters by status client-side; entries are never
// popped or renumbered.
func (uc *queueUsecase) FindByRoomAndDate(ctx context.Context, room, date string) ([]models.QueueEntry, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("queueUsecase.FindByRoomAndDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueRoomKey, room),
		zap.String(constvars.LoggingQueueDateKey, date),
	)

	entries, err := uc.QueueRepository.FindByRoomAndDate(ctx, room, date)
	if err != nil {
		uc.Log.Error("queueUsecase.FindByRoomAndDate error fetching entries",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("queueUsecase.FindByRoomAndDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseCountKey, len(entries)),
	)
	return entries, nil
}
