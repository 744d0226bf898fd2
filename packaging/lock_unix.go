//go:build unix

package packaging

import (
	"errors"

	"golang.org/x/sys/unix"
)

func isPlatformLockError(err error) bool {
	return errors.Is(err, unix.EBUSY) || errors.Is(err, unix.ETXTBSY)
}
