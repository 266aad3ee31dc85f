package process

import (
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v3/process"
)

// Alive reports whether a process with the given pid is still running.
// Used for the single-instance guard: a recorded pid that no longer
// exists means the previous run crashed or was killed.
func Alive(pid int) (bool, error) {
	if pid <= 0 {
		return false, nil
	}

	p, err := process.NewProcess(int32(pid))
	if err != nil {
		if errors.Is(err, process.ErrorProcessNotRunning) {
			return false, nil
		}
		return false, fmt.Errorf("failed to find process: %v", err)
	}

	running, err := p.IsRunning()
	if err != nil {
		return false, fmt.Errorf("failed to check if process is running: %v", err)
	}
	return running, nil
}
