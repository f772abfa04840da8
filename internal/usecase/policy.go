package usecase

import "time"

const defaultMaxCASRetries = 3

// Policy carries the business settings shared by the settlement use cases.
type Policy struct {
	// Location is the reference timezone deadlines are expressed in.
	Location      *time.Location
	NetTermDays   int
	MaxCASRetries int
}

func (p Policy) withDefaults() Policy {
	if p.Location == nil {
		p.Location = time.UTC
	}
	if p.NetTermDays <= 0 {
		p.NetTermDays = DefaultNetTermDays
	}
	if p.MaxCASRetries <= 0 {
		p.MaxCASRetries = defaultMaxCASRetries
	}
	return p
}
