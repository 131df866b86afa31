package jrror

// SetExit swaps the process exit hook and returns a restore func.
func SetExit(fn func(int)) func() {
	prev := exit
	exit = fn
	return func() { exit = prev }
}
