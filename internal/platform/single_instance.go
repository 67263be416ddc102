package platform

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"net"
)

// ErrAlreadyRunning indicates another clock window already holds the lock.
var ErrAlreadyRunning = errors.New("instance already running")

const (
	minPort = 20000
	maxPort = 39999
)

// InstanceGuard holds the single-instance lock for one clock.
type InstanceGuard struct {
	listener net.Listener
}

// AcquireSingleInstance binds a localhost port derived from appID. A second
// caller with the same appID gets an error wrapping ErrAlreadyRunning.
func AcquireSingleInstance(ctx context.Context, appID string) (*InstanceGuard, error) {
	address := fmt.Sprintf("127.0.0.1:%d", PortFor(appID))
	var config net.ListenConfig
	listener, err := config.Listen(ctx, "tcp", address)
	if err != nil {
		return nil, fmt.Errorf("%w on %s: %v", ErrAlreadyRunning, address, err)
	}
	return &InstanceGuard{listener: listener}, nil
}

// Release frees the lock. It is safe on a nil guard.
func (guard *InstanceGuard) Release() error {
	if guard == nil || guard.listener == nil {
		return nil
	}
	err := guard.listener.Close()
	guard.listener = nil
	return err
}

// Address returns the bound address, or "" once released.
func (guard *InstanceGuard) Address() string {
	if guard == nil || guard.listener == nil {
		return ""
	}
	return guard.listener.Addr().String()
}

// PortFor maps appID onto the lock port range.
func PortFor(appID string) int {
	hash := fnv.New32a()
	_, _ = hash.Write([]byte(appID))
	return minPort + int(hash.Sum32()%uint32(maxPort-minPort+1))
}
