// Package ioformat keeps all input/output concerns out of the search core:
// textual instance parsing, optional YAML parameter overrides, and result
// printing. None of it participates in the tabu search itself; it only
// builds a problem.Context for tabu.Run to consume and renders a
// tabu.Report afterward.
package ioformat
