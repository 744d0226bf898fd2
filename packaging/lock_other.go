//go:build !unix && !windows

package packaging

func isPlatformLockError(error) bool { return false }
