// Package topology reads problem descriptions from YAML files and turns them
// into problem.Input values, running the requested index enumerations.
//
// A file names the momenta, invariants, scalar-product rules, denominators
// and top sector of one integral family, plus a list of enumerations:
//
//	enumerate:
//	  - {rmax: 4, smax: 2, dmax: 1, mode: free}   # any sign on the top-sector actives
//	  - {sector: "1110", rmax: 3, smax: 1}         # ≥0 on actives, ≤0 elsewhere
//
// Explicit integrals and preferred masters are appended as given. Every
// tuple in the file uses the file's denominator order; problem.New moves
// them into the actives-first layout.
package topology
