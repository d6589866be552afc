package model

// FetchStatus represents where a fetch chain currently is
type FetchStatus string

const (
	// FetchStatusIdle means nothing has been requested yet
	FetchStatusIdle FetchStatus = "Idle"

	// FetchStatusFetching means a resource or image request is in flight
	FetchStatusFetching FetchStatus = "Fetching"

	// FetchStatusSucceeded means the resource and its artwork were displayed
	FetchStatusSucceeded FetchStatus = "Succeeded"

	// FetchStatusFailed means the chain ended with an error notification
	FetchStatusFailed FetchStatus = "Failed"
)

// String returns the string representation of FetchStatus
func (fs FetchStatus) String() string {
	return string(fs)
}

// IsActive returns true while a request is in flight
func (fs FetchStatus) IsActive() bool {
	return fs == FetchStatusFetching
}
