package constants

type TaskStatus string

const (
	StatusOpen       TaskStatus = "aperto"
	StatusInProgress TaskStatus = "in corso"
	StatusTesting    TaskStatus = "testing"
	StatusTestFailed TaskStatus = "test fallito"
	StatusClosed     TaskStatus = "chiuso"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusInProgress, StatusTesting, StatusTestFailed, StatusClosed:
		return true
	}
	return false
}

type Priority string

const (
	PriorityLow    Priority = "bassa"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}
