package clock

import "time"

// Clock supplies the current instant to services that default timestamps.
type Clock interface {
	Now() time.Time
}

type system struct{}

func System() Clock { return system{} }

func (system) Now() time.Time { return time.Now() }

// Fixed always returns the same instant.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f) }
