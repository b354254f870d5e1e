package constant

// StageID identifies a project stage row. The migrate command seeds these ids,
// and the time log rules compare against StageClosed: no time can be logged
// against a project once its stage id reaches it.
type StageID uint

const (
	StageAwaiting StageID = 1
	StageStarted  StageID = 2
	StageClosed   StageID = 3
)
