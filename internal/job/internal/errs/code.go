package errs

var (
	SystemError = ErrorCode{Code: 511001, Msg: "系统错误"}
	JobNotFound = ErrorCode{Code: 511002, Msg: "职位不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
