package threadname

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// The kernel keeps 16 bytes for the comm field, including the NUL.
const MaxNameLen = 15

// The main thread's comm is the process name shown by ps, so it is never
// renamed.
var ErrMainThread = errors.New("refusing to rename the main thread")

type PrctlNamer struct{}

func New() Namer {
	return PrctlNamer{}
}

func (PrctlNamer) SetName(name string) error {
	if IsMainThread() {
		return ErrMainThread
	}

	if len(name) > MaxNameLen {
		name = name[:MaxNameLen]
	}

	buf, err := unix.BytePtrFromString(name)
	if err != nil {
		return fmt.Errorf("thread name %q: %s", name, err)
	}

	if err := unix.Prctl(unix.PR_SET_NAME, uintptr(unsafe.Pointer(buf)), 0, 0, 0); err != nil {
		return fmt.Errorf("prctl PR_SET_NAME: %s", err)
	}

	return nil
}

// IsMainThread reports whether the caller is running on the thread whose id
// is the process id.
func IsMainThread() bool {
	return unix.Gettid() == unix.Getpid()
}

// ProcessName returns the comm of the process as a whole, i.e. of its main
// thread.
func ProcessName() (string, error) {
	comm, err := os.ReadFile("/proc/self/comm")
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(comm), "\n"), nil
}

// Current returns the name of the OS thread the caller is running on.
func Current() (string, error) {
	comm, err := os.ReadFile(fmt.Sprintf("/proc/self/task/%d/comm", unix.Gettid()))
	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(string(comm), "\n"), nil
}
