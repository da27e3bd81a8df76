// Package staleness decides whether a profile directory was configured for a different toolchain.
package staleness

import (
	"fmt"
	"path/filepath"

	"go.trai.ch/cptools/internal/core/domain"
	"go.trai.ch/cptools/internal/core/ports"
)

// Detector compares the cache of a profile directory with a freshly selected toolchain.
type Detector struct {
	inspector         ports.CacheInspector
	systemRecordCheck bool
}

// NewDetector creates a Detector. systemRecordCheck enables the comparison
// against the toolchain included by the generator's system record.
func NewDetector(inspector ports.CacheInspector, systemRecordCheck bool) *Detector {
	return &Detector{
		inspector:         inspector,
		systemRecordCheck: systemRecordCheck,
	}
}

// Detect inspects dir and reports why it is stale, if it is.
// A directory without a cache is never stale.
func (d *Detector) Detect(dir string, desc domain.ToolchainDescriptor) (domain.Staleness, error) {
	meta, err := d.inspector.Inspect(dir)
	if err != nil {
		return domain.Staleness{}, err
	}
	return domain.Staleness{
		Reason:     Reason(meta, desc, d.systemRecordCheck),
		Configured: meta.Configured,
	}, nil
}

// Reason applies the staleness rules in order and returns the first mismatch, or "".
func Reason(meta domain.CacheMetadata, desc domain.ToolchainDescriptor, systemRecordCheck bool) string {
	if !meta.Configured {
		return ""
	}

	if family, ok := meta.Family(); ok && family != desc.Family {
		return fmt.Sprintf("cached compiler is %s", family)
	}

	want := desc.FileBase()
	if meta.ToolchainFile != "" {
		if cached := filepath.Base(meta.ToolchainFile); cached != want {
			return fmt.Sprintf("cached toolchain is '%s'", cached)
		}
	}

	if systemRecordCheck && meta.SystemToolchainFile != "" {
		if recorded := filepath.Base(meta.SystemToolchainFile); recorded != want {
			return fmt.Sprintf("stale toolchain in system record '%s'", recorded)
		}
	}

	return ""
}
