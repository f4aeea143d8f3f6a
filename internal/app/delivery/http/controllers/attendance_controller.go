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

type AttendanceController struct {
	Log               *zap.Logger
	AttendanceUsecase contracts.AttendanceUsecase
}

func NewAttendanceController(logger *zap.Logger, attendanceUsecase contracts.AttendanceUsecase) *AttendanceController {
	return &AttendanceController{
		Log:               logger,
		AttendanceUsecase: attendanceUsecase,
	}
}

func (ctrl *AttendanceController) CheckIn(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AttendanceController.CheckIn requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AttendanceController.CheckIn called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CheckInRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AttendanceController.CheckIn failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	clientIP := utils.ClientIP(r)
	response, err := ctrl.AttendanceUsecase.CheckIn(ctx, clientIP, request)
	if err != nil {
		ctrl.Log.Error("AttendanceController.CheckIn AttendanceUsecase.CheckIn error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AttendanceController.CheckIn succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmployeeIDKey, response.EmployeeID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CheckInSuccessMessage, response)
}

func (ctrl *AttendanceController) CheckOut(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AttendanceController.CheckOut requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	ctrl.Log.Info("AttendanceController.CheckOut called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.CheckOutRequest)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AttendanceController.CheckOut failed to decode JSON request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AttendanceUsecase.CheckOut(ctx, request)
	if err != nil {
		ctrl.Log.Error("AttendanceController.CheckOut AttendanceUsecase.CheckOut error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AttendanceController.CheckOut succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("attendance_status", string(response.Status)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CheckOutSuccessMessage, response)
}

func (ctrl *AttendanceController) FindByEmployee(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AttendanceController.FindByEmployee requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}
	employeeID := chi.URLParam(r, "employeeID")

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	queryParamsRequest := utils.BuildQueryParamsRequest(r)
	response, err := ctrl.AttendanceUsecase.FindByEmployee(ctx, employeeID, queryParamsRequest)
	if err != nil {
		ctrl.Log.Error("AttendanceController.FindByEmployee AttendanceUsecase.FindByEmployee error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAttendanceSuccessMessage, response)
}
