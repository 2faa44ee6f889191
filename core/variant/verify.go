// core/variant/verify.go
package variant

import (
	"os"
	"strings"

	"bamboozler-core/bamcheck"
)

// VerifyOutputs confirms each artifact the plan declared: present, non-empty,
// and for alignment outputs a parseable BAM header. A zero exit status alone
// is never taken as proof the engine produced usable output.
func VerifyOutputs(plan Plan) error {
	for _, path := range plan.ExpectedOutputs {
		fi, err := os.Stat(path)
		if err != nil {
			return &Error{
				Kind:    KindMissingOutput,
				Stage:   StageVerifying,
				Backend: plan.Backend,
				Msg:     "expected output " + path,
				Err:     err,
			}
		}
		if fi.Size() == 0 {
			return &Error{
				Kind:    KindEmptyOutput,
				Stage:   StageVerifying,
				Backend: plan.Backend,
				Msg:     path + " is empty",
			}
		}
		if strings.HasSuffix(strings.ToLower(path), ".bam") {
			if _, err := bamcheck.Verify(path); err != nil {
				return &Error{
					Kind:    KindMalformedOutput,
					Stage:   StageVerifying,
					Backend: plan.Backend,
					Msg:     path,
					Err:     err,
				}
			}
		}
	}
	return nil
}
