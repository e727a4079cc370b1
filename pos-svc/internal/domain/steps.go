package domain

type OrderStep int

const (
	StepItems OrderStep = iota
	StepPayment
	StepConfirmation
)

var OrderSteps = []string{"Items", "Payment", "Confirmation"}

func (s OrderStep) String() string {
	if s < 0 || int(s) >= len(OrderSteps) {
		return "Unknown"
	}
	return OrderSteps[s]
}

func (s OrderStep) IsLast() bool {
	return int(s) == len(OrderSteps)-1
}
