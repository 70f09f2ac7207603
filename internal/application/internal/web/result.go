package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/jobhub/internal/application/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	jobNotOpenResult = ginx.Result{
		Code: errs.JobNotOpen.Code,
		Msg:  errs.JobNotOpen.Msg,
	}
	// duplicateApplicationResult 预期内的冲突，前端据此切到修改流程
	duplicateApplicationResult = ginx.Result{
		Code: errs.DuplicateApplication.Code,
		Msg:  errs.DuplicateApplication.Msg,
	}
	applicationNotFoundResult = ginx.Result{
		Code: errs.ApplicationNotFound.Code,
		Msg:  errs.ApplicationNotFound.Msg,
	}
	applicationFinalizedResult = ginx.Result{
		Code: errs.ApplicationFinalized.Code,
		Msg:  errs.ApplicationFinalized.Msg,
	}
)

// validationErrorResult 带上具体违规信息，候选人能看出是哪道题的问题
func validationErrorResult(code errs.ErrorCode, err error) ginx.Result {
	return ginx.Result{
		Code: code.Code,
		Msg:  err.Error(),
	}
}
