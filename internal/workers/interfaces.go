// Package workers runs the client's background workers.
// It defines the Worker interface and a Workers aggregate that starts
// all registered workers as one unit; the auth sync worker that pushes
// identity changes into the sync engine lives here too.
package workers

// Worker is implemented by every background worker. Run starts the
// worker's execution; implementations either block for the duration of
// their work or spawn goroutines internally.
type Worker interface {
	Run()
}
