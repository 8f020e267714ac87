// Package process resolves process ids to executable names.
package process

import (
	"errors"
	"fmt"
	"math"

	"github.com/shirou/gopsutil/v3/process"

	"github.com/Norgate-AV/wincenter/internal/interfaces"
)

var errNoProcess = errors.New("no process")

// Lookup implements interfaces.ProcessNamer using gopsutil
type Lookup struct{}

// NewLookup creates a process name lookup
func NewLookup() *Lookup {
	return &Lookup{}
}

// ProcessName returns the executable name of pid, e.g. "notepad.exe"
func (l *Lookup) ProcessName(pid uint32) (string, error) {
	if pid == 0 || pid > math.MaxInt32 {
		return "", fmt.Errorf("pid %d: %w", pid, errNoProcess)
	}

	p, err := process.NewProcess(int32(pid))
	if err != nil {
		return "", fmt.Errorf("pid %d: %w", pid, err)
	}

	name, err := p.Name()
	if err != nil {
		return "", fmt.Errorf("failed to read name of pid %d: %w", pid, err)
	}

	return name, nil
}

var _ interfaces.ProcessNamer = (*Lookup)(nil)
