package event

const applicantEvents = "applicant_events"

// ApplicantEvent 投递成功后发出，job 模块消费后维护投递人数
type ApplicantEvent struct {
	Uid           int64 `json:"uid"`
	JobID         int64 `json:"jobId"`
	ApplicationID int64 `json:"applicationId"`
}
