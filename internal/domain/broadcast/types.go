package broadcast

type Status string

const (
	StatusOpen     Status = "open"
	StatusAccepted Status = "accepted"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusOpen, StatusAccepted:
		return true
	default:
		return false
	}
}
