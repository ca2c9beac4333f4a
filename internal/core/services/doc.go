// Package services implements the interaction/state controller.
//
// Each state container (CorpusStore, SearchController, ModalController)
// owns its state behind a mutex and exposes a fixed set of named
// mutations. Network calls happen outside the locks; their results are
// applied atomically when they return, so several operations may be in
// flight at once without corrupting each other's state.
//
// Duplicate content fetches for one document are collapsed with
// golang.org/x/sync/singleflight.
package services
