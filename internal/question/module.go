package question

import (
	"github.com/ecodeclub/jobhub/internal/question/internal/domain"
	"github.com/ecodeclub/jobhub/internal/question/internal/service"
	"github.com/ecodeclub/jobhub/internal/question/internal/web"
)

type (
	AdminHandler = web.AdminHandler
	Service      = service.Service
	Question     = domain.Question
	QuestionType = domain.QuestionType
)

const (
	TypeYesNo          = domain.TypeYesNo
	TypeMultipleChoice = domain.TypeMultipleChoice
	TypeText           = domain.TypeText
)

type Module struct {
	AdminHdl *AdminHandler
	Svc      Service
}
