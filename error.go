package s3fifo

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [New].
const ErrInvalidCapacity = constError("invalid capacity")

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: small queue would hold %d entries; capacity must be >=%d but %d was requested",
		ErrInvalidCapacity, max(capacity/10, 0), MinimumCapacity, capacity)
}
