package models

// FailureStage tells which step dropped a post.
type FailureStage string

const (
	StageRetrieve  FailureStage = "retrieve"
	StageQuota     FailureStage = "quota"
	StageSummarize FailureStage = "summarize"
	StageClassify  FailureStage = "classify"
)

// PostResult is the per-post outcome of one request: either Summarized is set
// or Stage and Err describe why the post has no summary.
type PostResult struct {
	Post       RankedPost
	Summarized *SummarizedPost
	Stage      FailureStage
	Err        error
}

func (r PostResult) OK() bool {
	return r.Err == nil && r.Summarized != nil
}
