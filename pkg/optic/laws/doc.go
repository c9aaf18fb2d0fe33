// Package laws provides property-based suites for the algebraic contracts
// the library states but cannot enforce: lens get/put laws, iso and prism
// round trips, container coercion laws and monoid laws.
//
// The library never verifies a user-supplied conversion pair itself; run
// the matching suite in your own tests instead:
//
//	func TestMyIso(t *testing.T) {
//	    laws.ForIso(myIso, genS, genA, eqS, eqA).TestingRun(t)
//	}
//
// Equality is supplied by the caller since not every focus type is
// comparable.
package laws
