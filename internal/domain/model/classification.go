package model

// Classification is the health verdict derived from a job's rejection reason.
// It is computed, never stored: summary counts and row highlighting must both
// come from the same classification pass over the same row set.
type Classification string

const (
	// ClassificationCritical marks a job whose rejection reason matches one of
	// the known legacy failure phrases.
	ClassificationCritical Classification = "critical"
	// ClassificationOk marks every other job, including jobs with no
	// rejection reason at all.
	ClassificationOk Classification = "ok"
)

// Valid returns true if the Classification is one of the two known verdicts.
func (c Classification) Valid() bool {
	return c == ClassificationCritical || c == ClassificationOk
}

// ClassifiedJob pairs a job row with its derived classification.
type ClassifiedJob struct {
	Job
	Classification Classification `json:"classification"`
}
