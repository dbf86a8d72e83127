package dr

import "runtime"

// wipe overwrites buf with zeroes. runtime.KeepAlive pins buf past the
// final write so the compiler cannot prove the store is dead and elide
// it.
func wipe(buf []byte) {
	for i := range buf {
		buf[i] = 0
	}
	runtime.KeepAlive(buf)
}
