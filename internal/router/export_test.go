package router

import "io"

// SetLogOutput redirects the request logs of engines created afterwards.
func SetLogOutput(w io.Writer) (reset func()) {
	previous := logOutput
	logOutput = w

	return func() {
		logOutput = previous
	}
}
