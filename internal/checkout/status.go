package checkout

type Status string

const (
	StatusIdle       Status = "IDLE"
	StatusValidating Status = "VALIDATING"
	StatusSubmitting Status = "SUBMITTING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusFailed     Status = "FAILED"
)

func (s Status) IsTerminal() bool {
	return s == StatusConfirmed || s == StatusFailed
}

// String representation (for logging)
func (s Status) String() string {
	return string(s)
}
