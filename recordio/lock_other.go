//go:build !unix

package recordio

import "os"

// Advisory locking is not available on this platform; callers must ensure
// exclusive access themselves.
func lockFile(*os.File) error { return nil }

func unlockFile(*os.File) error { return nil }
