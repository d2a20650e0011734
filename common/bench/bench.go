package bench

import "time"

func MeasureExec(exec func()) time.Duration {
	s := time.Now()
	exec()
	return time.Since(s)
}

// Timed runs exec and returns its result together with the elapsed time.
func Timed[T any](exec func() T) (T, time.Duration) {
	s := time.Now()
	v := exec()
	return v, time.Since(s)
}
