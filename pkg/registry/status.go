package registry

// PipelineStatus is the lifecycle status of a pipeline.
type PipelineStatus string

// Pipeline statuses.
const (
	PipelineDraft    PipelineStatus = "DRAFT"
	PipelineRunning  PipelineStatus = "RUNNING"
	PipelineComplete PipelineStatus = "COMPLETE"
	PipelineFailed   PipelineStatus = "FAILED"
)

// String implements fmt.Stringer.
func (s PipelineStatus) String() string { return string(s) }

// Values implements ent's field.EnumValues.
func (PipelineStatus) Values() []string {
	return []string{
		string(PipelineDraft),
		string(PipelineRunning),
		string(PipelineComplete),
		string(PipelineFailed),
	}
}

// Terminal reports whether the pipeline status admits no further transitions.
func (s PipelineStatus) Terminal() bool {
	return s == PipelineComplete || s == PipelineFailed
}

// StageStatus is the lifecycle status of a single stage slot.
type StageStatus string

// Stage statuses. SKIPPED is reserved for admin tooling; normal flow
// never produces it, but the ordering rule accepts it as satisfied.
const (
	StagePending  StageStatus = "PENDING"
	StageClaimed  StageStatus = "CLAIMED"
	StageRunning  StageStatus = "RUNNING"
	StageComplete StageStatus = "COMPLETE"
	StageFailed   StageStatus = "FAILED"
	StageSkipped  StageStatus = "SKIPPED"
)

// String implements fmt.Stringer.
func (s StageStatus) String() string { return string(s) }

// Values implements ent's field.EnumValues.
func (StageStatus) Values() []string {
	return []string{
		string(StagePending),
		string(StageClaimed),
		string(StageRunning),
		string(StageComplete),
		string(StageFailed),
		string(StageSkipped),
	}
}

// Terminal reports whether the stage status admits no further transitions.
func (s StageStatus) Terminal() bool {
	return s == StageComplete || s == StageFailed || s == StageSkipped
}

// Satisfied reports whether a predecessor in this status unblocks its
// successor for claiming.
func (s StageStatus) Satisfied() bool {
	return s == StageComplete || s == StageSkipped
}

// Active reports whether the stage currently has an owner.
func (s StageStatus) Active() bool {
	return s == StageClaimed || s == StageRunning
}
