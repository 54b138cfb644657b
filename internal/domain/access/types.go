package access

type Status string

const (
	StatusPro     Status = "pro"
	StatusTrial   Status = "trial"
	StatusExpired Status = "expired"
)

// TrialWarningDays is the threshold (inclusive) under which a trial banner is shown.
const TrialWarningDays = 3
