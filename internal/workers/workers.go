package workers

type Workers struct {
	workers []Worker
}

// NewWorkers aggregates background workers so callers can start them as one
// unit. Workers run in the order given.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
