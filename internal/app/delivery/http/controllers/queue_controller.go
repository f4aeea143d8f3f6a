package controllers

import (
	"context"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type QueueController struct {
	Log          *zap.Logger
	QueueUsecase contracts.QueueUsecase
}

func NewQueueController(logger *zap.Logger, queueUsecase contracts.QueueUsecase) *QueueController {
	return &QueueController{
		Log:          logger,
		QueueUsecase: queueUsecase,
	}
}

func (ctrl *QueueController) FindByRoomAndDate(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("QueueController.FindByRoomAndDate requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	room := r.URL.Query().Get("room")
	date := r.URL.Query().Get("date")
	ctrl.Log.Info("QueueController.FindByRoomAndDate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueRoomKey, room),
		zap.String(constvars.LoggingQueueDateKey, date))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.QueueUsecase.FindByRoomAndDate(ctx, room, date)
	if err != nil {
		ctrl.Log.Error("QueueController.FindByRoomAndDate QueueUsecase.FindByRoomAndDate error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("QueueController.FindByRoomAndDate succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetQueueSuccessMessage, response)
}
