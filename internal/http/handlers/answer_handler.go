package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kpapad/go-qa-backend/internal/domain"
)

// answerForm is the request body for POST /answer. The question reference is
// accepted under either "question_id" (form/JSON) or the legacy
// "corresponding_question" key used by older clients.
type answerForm struct {
	Content               string `form:"content" json:"content"`
	QuestionID            int    `form:"question_id" json:"question_id"`
	CorrespondingQuestion int    `form:"corresponding_question" json:"corresponding_question"`
}

// AddAnswer godoc
// @ID          addAnswer
// @Summary     Add an answer to a question
// @Description Inserts an answer referencing an existing question. The
// @Description referenced question must exist; a dangling reference is
// @Description rejected before any write happens.
// @Tags        Answers
// @Accept      json
// @Accept      x-www-form-urlencoded
// @Produce     json
// @Param       body  body  handlers.answerForm  true  "Answer payload"
// @Success     200  {object}  domain.Answer
// @Failure     400  {object}  handlers.ErrorResponse  "Question Not Found / invalid input / store failure"
// @Router      /answer [post]
func (h *Handlers) AddAnswer(c *gin.Context) {
	var f answerForm
	if err := c.ShouldBind(&f); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid request body")
		return
	}
	qid := f.QuestionID
	if qid == 0 {
		qid = f.CorrespondingQuestion
	}

	a, err := h.aSvc.Add(c.Request.Context(), domain.NewAnswer{
		Content:    f.Content,
		QuestionID: qid,
	})
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, http.StatusOK, a)
}
