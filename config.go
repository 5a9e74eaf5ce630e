package jsbind

// Config controls engine resource limits for a Context. Zero values keep the
// engine defaults.
type Config struct {
	MemoryLimitMB int // engine heap limit in MiB
	MaxStackKB    int // native stack limit in KiB; honored by the QuickJS backend only
}
