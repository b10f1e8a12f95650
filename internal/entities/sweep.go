package entities

// SweepReport - итог одного прохода правила свипера.
type SweepReport struct {
	Selected     int
	Transitioned int
	Conflicts    int
	Failures     []SweepFailure
}

type SweepFailure struct {
	OrderID int64
	Err     error
}

func (r SweepReport) Failed() int {
	return len(r.Failures)
}
