//go:build !linux

package threadname

func New() Namer {
	return NoopNamer{}
}
