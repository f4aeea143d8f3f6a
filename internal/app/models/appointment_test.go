package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	allowed := []struct {
		from AppointmentStatus
		to   AppointmentStatus
	}{
		{AppointmentPendingConfirmation, AppointmentConfirmed},
		{AppointmentPendingConfirmation, AppointmentRejected},
		{AppointmentConfirmed, AppointmentWaitingForDoctor},
		{AppointmentConfirmed, AppointmentPendingCancel},
		{AppointmentPendingCancel, AppointmentCanceled},
		{AppointmentPendingCancel, AppointmentConfirmed},
		{AppointmentWaitingForDoctor, AppointmentInProgress},
		{AppointmentInProgress, AppointmentCompleted},
	}
	for _, tc := range allowed {
		assert.True(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be allowed", tc.from, tc.to)
	}

	forbidden := []struct {
		from AppointmentStatus
		to   AppointmentStatus
	}{
		{AppointmentPendingConfirmation, AppointmentWaitingForDoctor},
		{AppointmentPendingConfirmation, AppointmentCompleted},
		{AppointmentConfirmed, AppointmentInProgress},
		{AppointmentConfirmed, AppointmentCanceled},
		{AppointmentWaitingForDoctor, AppointmentCompleted},
		{AppointmentInProgress, AppointmentCanceled},
		{AppointmentCompleted, AppointmentInProgress},
		{AppointmentRejected, AppointmentConfirmed},
		{AppointmentCanceled, AppointmentConfirmed},
	}
	for _, tc := range forbidden {
		assert.False(t, tc.from.CanTransitionTo(tc.to), "%s -> %s should be rejected", tc.from, tc.to)
	}
}

func TestAppointmentStatus_NoSelfTransitions(t *testing.T) {
	statuses := []AppointmentStatus{
		AppointmentPendingConfirmation,
		AppointmentConfirmed,
		AppointmentRejected,
		AppointmentPendingCancel,
		AppointmentCanceled,
		AppointmentWaitingForDoctor,
		AppointmentInProgress,
		AppointmentCompleted,
	}
	for _, s := range statuses {
		assert.False(t, s.CanTransitionTo(s), "%s should not transition to itself", s)
	}
}

func TestAppointmentStatus_IsTerminal(t *testing.T) {
	assert.True(t, AppointmentRejected.IsTerminal())
	assert.True(t, AppointmentCanceled.IsTerminal())
	assert.True(t, AppointmentCompleted.IsTerminal())

	assert.False(t, AppointmentPendingConfirmation.IsTerminal())
	assert.False(t, AppointmentConfirmed.IsTerminal())
	assert.False(t, AppointmentPendingCancel.IsTerminal())
	assert.False(t, AppointmentWaitingForDoctor.IsTerminal())
	assert.False(t, AppointmentInProgress.IsTerminal())
}

func TestAppointmentStatus_IsValid(t *testing.T) {
	assert.True(t, AppointmentConfirmed.IsValid())
	assert.False(t, AppointmentStatus("archived").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}
