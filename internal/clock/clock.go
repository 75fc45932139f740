package clock

import "time"

// Clock abstracts time.Now so expiry logic is testable.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func System() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now().UTC() }
