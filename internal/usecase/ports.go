package usecase

import "time"

// UUID dan sejenisnya.
type IDGenerator interface {
	NewID() string
}

type Clock interface {
	Now() time.Time
}
