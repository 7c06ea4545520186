// Package pipeline orchestrates the correction of one or many files: for
// each input it inspects tracks, extracts and rescales chapters, computes
// the sync plan, remuxes into a workspace intermediate, and resamples audio
// into the final output.
//
// Every conversion owns a scoped temporary workspace that is removed on
// every exit path, including failures and interrupts. In batch mode entries
// are isolated: one failure never aborts the siblings.
package pipeline
