package configloader

import "github.com/yaklabco/gomedit/pkg/config"

// Merge overlays src onto dst. Only fields set in src (non-zero)
// override dst; slices replace wholesale rather than appending.
func Merge(dst, src *config.Config) {
	if dst == nil || src == nil {
		return
	}

	if src.Format != "" {
		dst.Format = src.Format
	}
	if src.Color != "" {
		dst.Color = src.Color
	}
	if src.Jobs != 0 {
		dst.Jobs = src.Jobs
	}
	if src.Strict {
		dst.Strict = true
	}
	if len(src.Extensions) > 0 {
		dst.Extensions = src.Extensions
	}
	if len(src.Exclude) > 0 {
		dst.Exclude = src.Exclude
	}
}
