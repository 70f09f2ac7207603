package event

// ApplicantEvent 投递成功后由 application 模块发出
type ApplicantEvent struct {
	Uid           int64 `json:"uid"`
	JobID         int64 `json:"jobId"`
	ApplicationID int64 `json:"applicationId"`
}

const applicantEvents = "applicant_events"
