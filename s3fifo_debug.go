//go:build s3fifo_debug

package s3fifo

const debugging = true

func assert(cond bool, message string) {
	if !cond {
		panic(message)
	}
}
