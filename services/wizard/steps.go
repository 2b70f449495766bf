package wizard

import "sewakit/models"

// Wizard steps in order.
const (
	StepDateRange = 0
	StepItems     = 1
	StepConfirm   = 2
)

// CanAdvance reports whether the session's current step is valid, i.e.
// whether the forward control should be enabled. Validity violations are
// never errors here; gated navigation is simply a no-op.
func CanAdvance(s *models.WizardSession) bool {
	switch s.Step {
	case StepDateRange:
		return s.DateRange.Complete()
	case StepItems:
		return len(s.Items) > 0
	case StepConfirm:
		return true
	}
	return false
}

// Advance moves the session one step forward when the current step is valid.
// Returns whether the session moved.
func Advance(s *models.WizardSession) bool {
	if s.Submitting || s.Step >= StepConfirm || !CanAdvance(s) {
		return false
	}
	s.Step++
	return true
}

// Retreat moves the session one step back. Always permitted except at the
// first step.
func Retreat(s *models.WizardSession) bool {
	if s.Submitting || s.Step <= StepDateRange {
		return false
	}
	s.Step--
	return true
}

// JumpTo navigates directly to a step. Backward jumps are always allowed;
// the only forward jump allowed is to the immediate next step when the
// current one validates, so earlier steps cannot be skipped.
func JumpTo(s *models.WizardSession, step int) bool {
	if s.Submitting || step < StepDateRange || step > StepConfirm {
		return false
	}
	if step <= s.Step {
		s.Step = step
		return true
	}
	if step == s.Step+1 && CanAdvance(s) {
		s.Step = step
		return true
	}
	return false
}

// firstInvalidStep returns the earliest step whose validity predicate fails,
// or StepConfirm when the whole session validates.
func firstInvalidStep(s *models.WizardSession) int {
	if !s.DateRange.Complete() {
		return StepDateRange
	}
	if len(s.Items) == 0 {
		return StepItems
	}
	return StepConfirm
}
