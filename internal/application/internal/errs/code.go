package errs

var (
	SystemError              = ErrorCode{Code: 512001, Msg: "系统错误"}
	InvalidQuestionReference = ErrorCode{Code: 512002, Msg: "答案引用了不属于该职位的问题"}
	MissingRequiredAnswer    = ErrorCode{Code: 512003, Msg: "还有必答问题未作答"}
	JobNotOpen               = ErrorCode{Code: 512004, Msg: "该职位暂不接受投递"}
	ApplicationNotFound      = ErrorCode{Code: 512005, Msg: "投递记录不存在"}
	DuplicateApplication     = ErrorCode{Code: 512006, Msg: "你已经投递过该职位，可以直接修改投递内容"}
	ApplicationFinalized     = ErrorCode{Code: 512007, Msg: "该投递已有最终结果，不能再变更"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
