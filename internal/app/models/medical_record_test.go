package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveRecordPermissions(t *testing.T) {
	t.Run("done record is fully locked", func(t *testing.T) {
		p := ResolveRecordPermissions(RecordDone)
		assert.True(t, p.IsDisabled)
		assert.False(t, p.ShowLabTest)
		assert.Empty(t, p.EditableFields)
		assert.False(t, p.IsPrescription)
	})

	t.Run("pending re-examination exposes lab test and limited fields", func(t *testing.T) {
		p := ResolveRecordPermissions(RecordPendingReExamination)
		assert.True(t, p.IsDisabled)
		assert.True(t, p.ShowLabTest)
		assert.ElementsMatch(t, []string{RecordFieldAdmissionReason, RecordFieldAdmissionDiagnosis}, p.EditableFields)
		assert.True(t, p.IsPrescription)
	})

	t.Run("pending clinical freezes fields but keeps prescriptions", func(t *testing.T) {
		p := ResolveRecordPermissions(RecordPendingClinical)
		assert.True(t, p.IsDisabled)
		assert.False(t, p.ShowLabTest)
		assert.Empty(t, p.EditableFields)
		assert.True(t, p.IsPrescription)
	})

	t.Run("new record is fully editable", func(t *testing.T) {
		p := ResolveRecordPermissions(RecordNew)
		assert.False(t, p.IsDisabled)
		assert.Len(t, p.EditableFields, 6)
		assert.True(t, p.IsPrescription)
	})

	t.Run("unknown status falls back to fully editable", func(t *testing.T) {
		p := ResolveRecordPermissions(RecordStatus("bogus"))
		assert.False(t, p.IsDisabled)
		assert.Len(t, p.EditableFields, 6)
	})
}

func TestRecordPermissions_CanEdit(t *testing.T) {
	p := ResolveRecordPermissions(RecordPendingReExamination)

	assert.True(t, p.CanEdit(RecordFieldAdmissionReason))
	assert.True(t, p.CanEdit(RecordFieldAdmissionDiagnosis))
	assert.False(t, p.CanEdit(RecordFieldTreatmentSummary))
	assert.False(t, p.CanEdit(RecordFieldLabTestResult))
	assert.False(t, p.CanEdit(RecordFieldServices))

	done := ResolveRecordPermissions(RecordDone)
	for _, field := range allRecordFields {
		assert.False(t, done.CanEdit(field), "done record should not allow editing %s", field)
	}
}
