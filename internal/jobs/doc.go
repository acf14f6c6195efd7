// Package jobs contains background workers that run alongside the HTTP
// server.
//
// FollowReconciler guards the follow graph's symmetry invariant against
// external writers, combining a periodic sweep with live change events
// from the store. Jobs follow a common lifecycle: Start launches the
// worker goroutines, Stop closes the stop channel and waits for them.
package jobs
