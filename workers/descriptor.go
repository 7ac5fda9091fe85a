package workers

import (
	"strconv"
	"time"
)

// Descriptor is handed to each worker by value; nothing else holds it.
type Descriptor struct {
	Index int
}

func (d Descriptor) Name() string {
	return "Thread " + strconv.Itoa(d.Index)
}

func (d Descriptor) TimeoutMillis() int {
	return d.Index*1000 + 500
}

func (d Descriptor) Timeout() time.Duration {
	return time.Duration(d.TimeoutMillis()) * time.Millisecond
}
