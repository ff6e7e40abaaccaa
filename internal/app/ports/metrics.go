package ports

type PlanMetrics interface {
	RecordSuccess(pathLength int)
	RecordUnreachable()
	RecordConflict()
	RecordFailure()
}
