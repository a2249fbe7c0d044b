package renderplan

type Request struct {
	RunID string
}

// Job is one capture the external renderer owes: the chunk to render and the
// artifact key the image must land under.
type Job struct {
	X           int    `json:"x"`
	Y           int    `json:"y"`
	ArtifactKey string `json:"artifact_key"`
}

type Response struct {
	RunID   string `json:"run_id"`
	Surface string `json:"surface"`
	Jobs    []Job  `json:"jobs"`
}
