package service

import "cafe-pos/pos-svc/internal/domain"

// StepTracker cycles Items -> Payment -> Confirmation -> Items.
type StepTracker struct {
	current domain.OrderStep
}

func NewStepTracker() *StepTracker {
	return &StepTracker{current: domain.StepItems}
}

func (t *StepTracker) Current() domain.OrderStep {
	return t.current
}

func (t *StepTracker) Advance() domain.OrderStep {
	t.current = domain.OrderStep((int(t.current) + 1) % len(domain.OrderSteps))
	return t.current
}

// Progress is the percentage shown by the progress bar, 33 on the first step.
func (t *StepTracker) Progress() int {
	return (int(t.current) + 1) * 100 / len(domain.OrderSteps)
}
