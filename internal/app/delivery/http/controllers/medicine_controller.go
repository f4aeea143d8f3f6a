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

type MedicineController struct {
	Log             *zap.Logger
	MedicineUsecase contracts.MedicineUsecase
}

func NewMedicineController(logger *zap.Logger, medicineUsecase contracts.MedicineUsecase) *MedicineController {
	return &MedicineController{
		Log:             logger,
		MedicineUsecase: medicineUsecase,
	}
}

func (ctrl *MedicineController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineController.Create requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MedicineController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CreateMedicineRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MedicineController.Create failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineUsecase.Create(ctx, request)
	if err != nil {
		ctrl.Log.Error("MedicineController.Create MedicineUsecase.Create error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicineController.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, response.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateMedicineSuccessMessage, response)
}

func (ctrl *MedicineController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	queryParamsRequest := utils.BuildQueryParamsRequest(r)
	response, err := ctrl.MedicineUsecase.FindAll(ctx, queryParamsRequest)
	if err != nil {
		ctrl.Log.Error("MedicineController.FindAll MedicineUsecase.FindAll error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicineSuccessMessage, response)
}

func (ctrl *MedicineController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineController.FindByID requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	medicineID := chi.URLParam(r, "medicineID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineUsecase.FindByID(ctx, medicineID)
	if err != nil {
		ctrl.Log.Error("MedicineController.FindByID MedicineUsecase.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetMedicineSuccessMessage, response)
}

func (ctrl *MedicineController) Update(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineController.Update requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	medicineID := chi.URLParam(r, "medicineID")
	ctrl.Log.Info("MedicineController.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicineID))

	request := new(requests.UpdateMedicineRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MedicineController.Update failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineUsecase.Update(ctx, medicineID, request)
	if err != nil {
		ctrl.Log.Error("MedicineController.Update MedicineUsecase.Update error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateMedicineSuccessMessage, response)
}

func (ctrl *MedicineController) Disable(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineController.Disable requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	medicineID := chi.URLParam(r, "medicineID")
	ctrl.Log.Info("MedicineController.Disable called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicineID))

	request := new(requests.DisableMedicineRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MedicineController.Disable failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.MedicineUsecase.Disable(ctx, medicineID, request); err != nil {
		ctrl.Log.Error("MedicineController.Disable MedicineUsecase.Disable error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicineController.Disable succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, medicineID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DisableMedicineSuccessMessage, nil)
}

func (ctrl *MedicineController) Dispense(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("MedicineController.Dispense requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("MedicineController.Dispense called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.DispenseMedicineRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("MedicineController.Dispense failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.MedicineUsecase.Dispense(ctx, request)
	if err != nil {
		ctrl.Log.Error("MedicineController.Dispense MedicineUsecase.Dispense error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("MedicineController.Dispense succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingMedicineIDKey, response.ID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DispenseMedicineSuccessMessage, response)
}
