package controllers

import (
	"context"
	"encoding/json"
	"hospicare-service/internal/app/contracts"
	"hospicare-service/internal/pkg/constvars"
	"hospicare-service/internal/pkg/dto/requests"
	"hospicare-service/internal/pkg/exceptions"
	"hospicare-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type MedicineCheckController struct {
	Log                  *zap.Logger
	MedicineCheckUsecase contracts.MedicineCheckUsecase
}

func NewMedicineCheckController(logger *zap.Logger, medicineCheckUsecase contracts.MedicineCheckUsecase) *MedicineCheckController {
	return &MedicineCheckController{
		Log:                  logger,
		MedicineCheckUsecase: medicineCheckUsecase,
	}
}

func (ctrl *MedicineCheckController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineCheckController.Create requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	sessionData, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineCheckController.Create sessionData not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("MedicineCheckController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateMedicineCheckRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MedicineCheckController.Create failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineCheckUsecase.Create(ctx, sessionData, request)
	if err != nil {
		ctrl.Log.Error("MedicineCheckController.Create MedicineCheckUsecase.Create error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicineCheckController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCheckCodeKey, response.CheckCode))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicineCheckSuccessMessage, response)
}

func (ctrl *MedicineCheckController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineCheckController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	queryParamsRequest := utils.BuildQueryParamsRequest(r)
	response, err := ctrl.MedicineCheckUsecase.FindAll(ctx, queryParamsRequest)
	if err != nil {
		ctrl.Log.Error("MedicineCheckController.FindAll MedicineCheckUsecase.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicineCheckSuccessMessage, response)
}

func (ctrl *MedicineCheckController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineCheckController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	checkID := chi.URLParam(r, "checkID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineCheckUsecase.FindByID(ctx, checkID)
	if err != nil {
		ctrl.Log.Error("MedicineCheckController.FindByID MedicineCheckUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicineCheckSuccessMessage, response)
}

func (ctrl *MedicineCheckController) AddDetail(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineCheckController.AddDetail requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	checkID := chi.URLParam(r, "checkID")
	ctrl.Log.Info("MedicineCheckController.AddDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID))

	request := new(requests.MedicineCheckDetailRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MedicineCheckController.AddDetail failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineCheckUsecase.AddDetail(ctx, checkID, request)
	if err != nil {
		ctrl.Log.Error("MedicineCheckController.AddDetail MedicineCheckUsecase.AddDetail error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AddCheckDetailSuccessMessage, response)
}

func (ctrl *MedicineCheckController) UpdateDetail(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineCheckController.UpdateDetail requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	checkID := chi.URLParam(r, "checkID")
	batchNumber := chi.URLParam(r, "batchNumber")
	ctrl.Log.Info("MedicineCheckController.UpdateDetail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID))

	request := new(requests.MedicineCheckDetailRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MedicineCheckController.UpdateDetail failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineCheckUsecase.UpdateDetail(ctx, checkID, batchNumber, request)
	if err != nil {
		ctrl.Log.Error("MedicineCheckController.UpdateDetail MedicineCheckUsecase.UpdateDetail error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateCheckDetailSuccessMessage, response)
}

func (ctrl *MedicineCheckController) Complete(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineCheckController.Complete requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	checkID := chi.URLParam(r, "checkID")
	ctrl.Log.Info("MedicineCheckController.Complete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineCheckUsecase.Complete(ctx, checkID)
	if err != nil {
		ctrl.Log.Error("MedicineCheckController.Complete MedicineCheckUsecase.Complete error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicineCheckController.Complete succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID),
		zap.String("check_status", string(response.Status)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CompleteMedicineCheckSuccessMessage, response)
}

func (ctrl *MedicineCheckController) Promote(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineCheckController.Promote requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	checkID := chi.URLParam(r, "checkID")
	ctrl.Log.Info("MedicineCheckController.Promote called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineCheckIDKey, checkID))

	request := new(requests.PromoteCheckDetailsRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MedicineCheckController.Promote failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineCheckUsecase.Promote(ctx, checkID, request)
	if err != nil {
		ctrl.Log.Error("MedicineCheckController.Promote MedicineCheckUsecase.Promote error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicineCheckController.Promote succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PromoteMedicineCheckSuccessMessage, response)
}
