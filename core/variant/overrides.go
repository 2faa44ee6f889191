// core/variant/overrides.go
package variant

import (
	"fmt"
	"os"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Overrides are free-form engine-specific tuning values loaded from the
// request's tool-param file. They form a final layer merged after
// canonical-field translation: a key an engine understands takes precedence
// over the value derived from the canonical request.
type Overrides map[string]any

// loadOverrides reads the YAML override file, or returns an empty map for an
// empty path. A malformed file is a translation failure: the request cannot
// be expressed as the user intended.
func loadOverrides(backend, path string) (Overrides, error) {
	if path == "" {
		return Overrides{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Kind: KindAdapterTranslation, Stage: StagePlanning, Backend: backend, Msg: "reading tool param file", Err: err}
	}
	var ov Overrides
	if err := yaml.Unmarshal(data, &ov); err != nil {
		return nil, &Error{Kind: KindAdapterTranslation, Stage: StagePlanning, Backend: backend, Msg: "parsing tool param file", Err: err}
	}
	if ov == nil {
		ov = Overrides{}
	}
	return ov, nil
}

// str renders a scalar override as its command-line form.
func (o Overrides) str(key string) (string, bool) {
	v, ok := o[key]
	if !ok || v == nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, t != ""
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case bool:
		return strconv.FormatBool(t), true
	default:
		return fmt.Sprint(t), true
	}
}

// float parses a numeric override.
func (o Overrides) float(key string) (float64, bool) {
	v, ok := o[key]
	if !ok {
		return 0, false
	}
	switch t := v.(type) {
	case float64:
		return t, true
	case int:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(t, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// flag reports whether a boolean override is set and true.
func (o Overrides) flag(key string) bool {
	v, ok := o[key]
	if !ok {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		b, err := strconv.ParseBool(t)
		return err == nil && b
	case int:
		return t != 0
	default:
		return false
	}
}

// unknown returns the override keys outside the given known set, sorted, so
// the plan can surface them instead of dropping them silently.
func (o Overrides) unknown(known ...string) []string {
	set := map[string]bool{}
	for _, k := range known {
		set[k] = true
	}
	var out []string
	for k := range o {
		if !set[k] {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
