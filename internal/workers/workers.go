package workers

// Workers is an aggregate that starts every registered worker.
type Workers struct {
	workers []Worker
}

// NewWorkers groups the given workers for a single Run call.
func NewWorkers(workers ...Worker) *Workers {
	return &Workers{workers: workers}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
