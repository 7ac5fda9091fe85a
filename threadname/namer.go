package threadname

//go:generate counterfeiter . Namer

// Namer labels the OS thread the calling goroutine is running on.
// Callers must hold the thread with runtime.LockOSThread for the label to
// stick to the work they are doing, and must not be on the main thread: a
// program that names worker threads should lock its main goroutine to the
// main thread in an init func.
type Namer interface {
	SetName(name string) error
}

type NoopNamer struct{}

func (NoopNamer) SetName(string) error {
	return nil
}
