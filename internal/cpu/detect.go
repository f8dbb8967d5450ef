// Package cpu reports CPU capabilities relevant to kernel selection.
package cpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Features describes CPU capabilities relevant to stage-kernel
// selection.
type Features struct {
	HasAVX2      bool
	HasSSE2      bool
	HasNEON      bool
	ForceGeneric bool
	Architecture string
}

// DetectFeatures reports the available CPU features for the current
// process.
func DetectFeatures() Features {
	return Features{
		HasAVX2:      cpu.X86.HasAVX2,
		HasSSE2:      cpu.X86.HasSSE2,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
	}
}
