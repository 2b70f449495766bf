package wizard

import (
	"testing"

	"sewakit/models"

	"github.com/stretchr/testify/assert"
)

func sessionAt(step int) *models.WizardSession {
	return &models.WizardSession{
		SessionID: "sess-1",
		UserID:    "user-1",
		Step:      step,
		Items:     []models.SelectedItem{},
	}
}

func completeSession(step int) *models.WizardSession {
	s := sessionAt(step)
	s.DateRange = models.DateRange{From: date(2024, 1, 15), To: date(2024, 1, 17)}
	s.Items = []models.SelectedItem{
		{ItemID: "a1", Kind: models.KindAsset, UnitPrice: 500000, Quantity: 1, MaxQuantity: 2},
	}
	return s
}

func TestAdvance_GatedOnIncompleteDateRange(t *testing.T) {
	s := sessionAt(StepDateRange)
	assert.False(t, CanAdvance(s))
	assert.False(t, Advance(s))
	assert.Equal(t, StepDateRange, s.Step)
}

func TestAdvance_GatedOnEmptySelection(t *testing.T) {
	s := completeSession(StepItems)
	s.Items = nil
	assert.False(t, CanAdvance(s))
	assert.False(t, Advance(s))
	assert.Equal(t, StepItems, s.Step)
}

func TestAdvance_WalksAllSteps(t *testing.T) {
	s := completeSession(StepDateRange)
	assert.True(t, Advance(s))
	assert.Equal(t, StepItems, s.Step)
	assert.True(t, Advance(s))
	assert.Equal(t, StepConfirm, s.Step)

	// There is nothing past the confirmation step.
	assert.False(t, Advance(s))
	assert.Equal(t, StepConfirm, s.Step)
}

func TestRetreat(t *testing.T) {
	s := completeSession(StepConfirm)
	assert.True(t, Retreat(s))
	assert.Equal(t, StepItems, s.Step)
	assert.True(t, Retreat(s))
	assert.Equal(t, StepDateRange, s.Step)
	assert.False(t, Retreat(s))
	assert.Equal(t, StepDateRange, s.Step)
}

func TestJumpTo_BackwardAlwaysAllowed(t *testing.T) {
	s := completeSession(StepConfirm)
	assert.True(t, JumpTo(s, StepDateRange))
	assert.Equal(t, StepDateRange, s.Step)
}

func TestJumpTo_ForwardOnlyWhenValid(t *testing.T) {
	s := sessionAt(StepDateRange)
	assert.False(t, JumpTo(s, StepItems))
	assert.Equal(t, StepDateRange, s.Step)

	s = completeSession(StepDateRange)
	assert.True(t, JumpTo(s, StepItems))
	assert.Equal(t, StepItems, s.Step)
}

func TestJumpTo_ForwardSkipsRefused(t *testing.T) {
	s := completeSession(StepDateRange)
	assert.False(t, JumpTo(s, StepConfirm))
	assert.Equal(t, StepDateRange, s.Step)
}

func TestJumpTo_OutOfBounds(t *testing.T) {
	s := completeSession(StepItems)
	assert.False(t, JumpTo(s, -1))
	assert.False(t, JumpTo(s, 3))
	assert.Equal(t, StepItems, s.Step)
}

func TestNavigation_LockedWhileSubmitting(t *testing.T) {
	s := completeSession(StepConfirm)
	s.Submitting = true
	assert.False(t, Advance(s))
	assert.False(t, Retreat(s))
	assert.False(t, JumpTo(s, StepDateRange))
	assert.Equal(t, StepConfirm, s.Step)
}

func TestFirstInvalidStep(t *testing.T) {
	assert.Equal(t, StepDateRange, firstInvalidStep(sessionAt(StepConfirm)))

	s := completeSession(StepConfirm)
	s.Items = nil
	assert.Equal(t, StepItems, firstInvalidStep(s))

	assert.Equal(t, StepConfirm, firstInvalidStep(completeSession(StepConfirm)))
}
