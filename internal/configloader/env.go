package configloader

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/yaklabco/gomedit/pkg/config"
)

// envVarPrefix is the prefix for all gomedit environment variables.
const envVarPrefix = "GOMEDIT_"

// LoadFromEnv applies environment variable overrides to the
// configuration. Variables are prefixed with GOMEDIT_ (e.g.
// GOMEDIT_FORMAT, GOMEDIT_JOBS, GOMEDIT_STRICT, GOMEDIT_COLOR).
func LoadFromEnv(cfg *config.Config) error {
	if cfg == nil {
		return nil
	}

	if v, ok := lookup("FORMAT"); ok {
		cfg.Format = config.OutputFormat(v)
	}
	if v, ok := lookup("COLOR"); ok {
		cfg.Color = v
	}
	if v, ok := lookup("JOBS"); ok {
		jobs, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%sJOBS: invalid integer %q", envVarPrefix, v)
		}
		cfg.Jobs = jobs
	}
	if v, ok := lookup("STRICT"); ok {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSTRICT: invalid boolean %q", envVarPrefix, v)
		}
		cfg.Strict = strict
	}
	if v, ok := lookup("EXTENSIONS"); ok {
		cfg.Extensions = splitList(v)
	}
	if v, ok := lookup("EXCLUDE"); ok {
		cfg.Exclude = splitList(v)
	}

	return nil
}

func lookup(name string) (string, bool) {
	v, ok := os.LookupEnv(envVarPrefix + name)
	if !ok || strings.TrimSpace(v) == "" {
		return "", false
	}
	return strings.TrimSpace(v), true
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
