// core/variant/adapter.go
package variant

// Provenance labels for effective parameter values.
const (
	sourceRequest       = "from request"
	sourceOverride      = "from tool param file"
	sourceEngineDefault = "engine default"
)

// resolveAF merges the allele-frequency layers: the override key wins over
// the canonical field; absence of both defers to the engine.
func resolveAF(req Request, ov Overrides, key string) (float64, string) {
	if v, ok := ov.float(key); ok {
		return v, sourceOverride
	}
	if req.AlleleFrequency != nil {
		return *req.AlleleFrequency, sourceRequest
	}
	return 0, sourceEngineDefault
}

// noteUnknown records override keys the engine has no use for.
func noteUnknown(p *Plan, ov Overrides, known ...string) {
	for _, k := range ov.unknown(known...) {
		p.note("override %q is not recognized by %s; ignored", k, p.Backend)
	}
}
