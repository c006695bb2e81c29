package lookup

// ImputeMode selects the fallback policy for query rows without a table match.
type ImputeMode string

// Impute mode constants.
const (
	// ImputeError fails the batch on the first unmatched row.
	ImputeError ImputeMode = "error"
	// ImputeWorst substitutes the least favorable historical observation.
	ImputeWorst ImputeMode = "worst"
	// ImputeBest substitutes the most favorable historical observation.
	ImputeBest ImputeMode = "best"
	// ImputeMean substitutes the column mean.
	ImputeMean ImputeMode = "mean"
	// ImputeRandom substitutes the values of one randomly chosen table row.
	ImputeRandom ImputeMode = "random"
	// ImputeIgnore asserts that unmatched rows cannot occur: the caller has
	// already restricted the queries to matchable combinations.
	ImputeIgnore ImputeMode = "ignore"
)

// IsValid checks if the mode is one of the supported values.
func (m ImputeMode) IsValid() bool {
	switch m {
	case ImputeError, ImputeWorst, ImputeBest, ImputeMean, ImputeRandom, ImputeIgnore:
		return true
	}
	return false
}
