package paillier

type (
	// ProgressFollower is notified while a key pair is generated. Each search (p, q, g)
	// is a step; Tick is called for every rejected candidate within it.
	ProgressFollower interface {
		StepStart(desc string, intermediates int)
		Tick()
		StepDone()
	}

	EmptyFollower struct{}
)

func (*EmptyFollower) StepStart(_ string, _ int) {}
func (*EmptyFollower) Tick()                     {}
func (*EmptyFollower) StepDone()                 {}
