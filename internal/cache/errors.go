package cache

import (
	"fmt"
	"time"
)

// StaleError accompanies a list served from an expired entry because the
// refresh failed. The list returned alongside it is still usable.
type StaleError struct {
	Category Category
	Age      time.Duration
	Err      error
}

func (e *StaleError) Error() string {
	return fmt.Sprintf("serving %s list from %s ago: refresh failed: %v",
		e.Category, FormatDuration(e.Age), e.Err)
}

func (e *StaleError) Unwrap() error {
	return e.Err
}
