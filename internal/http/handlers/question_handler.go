// Question HTTP handlers.
//
// This file exposes REST endpoints for question resources:
//   - GET    /questions        (list, optionally paged; JSON or HTML)
//   - GET    /question/{id}    (fetch one)
//   - POST   /questions        (create)
//   - PUT    /questions/{id}   (full replace)
//   - DELETE /questions/{id}   (delete, cascades to answers)
//   - GET    /questions/search (rank against a free-text query)
//
// Handlers are transport-thin: they validate input, call application
// services, and translate results into HTTP responses. The listing flow is
// the one interesting request: parameters are checked before any store round
// trip, and the first failure terminates the request.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kpapad/go-qa-backend/internal/domain"
	"github.com/kpapad/go-qa-backend/internal/pagination"
	"github.com/kpapad/go-qa-backend/internal/render"
	"github.com/kpapad/go-qa-backend/internal/search"
	"github.com/kpapad/go-qa-backend/internal/services"
)

//
// Service contracts (context-aware)
//

// QuestionService defines question lifecycle operations consumed by HTTP
// handlers. Implementations must be safe for concurrent use and honor the
// provided context.
type QuestionService interface {
	// List returns the questions inside the window, in store order.
	List(ctx context.Context, p pagination.Pagination) ([]domain.Question, error)
	// ListJoined returns (question, optional first answer) pairs for HTML views.
	ListJoined(ctx context.Context, p pagination.Pagination) ([]domain.QuestionWithAnswer, error)
	// Get fetches a question by id.
	Get(ctx context.Context, id int) (*domain.Question, error)
	// Create inserts a new question; the store assigns the id.
	Create(ctx context.Context, n domain.NewQuestion) (*domain.Question, error)
	// Update replaces title/content/tags of an existing question.
	Update(ctx context.Context, id int, q domain.Question) (*domain.Question, error)
	// Delete removes a question and its answers.
	Delete(ctx context.Context, id int) error
}

// AnswerService defines answer operations consumed by HTTP handlers.
type AnswerService interface {
	// Add inserts an answer after verifying the question exists.
	Add(ctx context.Context, n domain.NewAnswer) (*domain.Answer, error)
}

// AccountService defines registration/login operations consumed by HTTP handlers.
type AccountService interface {
	Register(ctx context.Context, email, password string) (*domain.Account, error)
	Login(ctx context.Context, email, password string) (*domain.Account, error)
}

// StatsFn reports (count, max updated_at) for the questions table; used for
// best-effort ETag generation on listings. May be nil when the backing store
// has no cheap aggregate (in-memory).
type StatsFn func(ctx context.Context) (int64, *time.Time, error)

//
// Handler wiring
//

// Handlers groups the HTTP endpoints for questions, answers, and accounts.
type Handlers struct {
	qSvc    QuestionService
	aSvc    AnswerService
	accSvc  AccountService
	listing *render.Listing
	stats   StatsFn
}

// New constructs a Handlers instance bound to the given services. stats is
// optional.
func New(qSvc QuestionService, aSvc AnswerService, accSvc AccountService, stats StatsFn) *Handlers {
	return &Handlers{
		qSvc:    qSvc,
		aSvc:    aSvc,
		accSvc:  accSvc,
		listing: render.NewListing(),
		stats:   stats,
	}
}

// wantsHTML reports whether the client asked for the HTML listing view.
func wantsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

// pathID parses the :id path parameter as a base-10 integer.
func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeParse, MsgParse)
		return 0, false
	}
	return id, true
}

//
// Handlers
//

// ListQuestions godoc
// @ID          listQuestions
// @Summary     List questions
// @Description Returns questions, optionally bounded by a limit/offset window.
// @Description Both parameters must be supplied together or not at all.
// @Description With "Accept: text/html" the listing is rendered as an HTML
// @Description page joining each question with its first answer.
// @Tags        Questions
// @Produce     json
// @Produce     html
//
// @Param       limit   query  int  false  "Maximum number of questions"
// @Param       offset  query  int  false  "Number of questions to skip"
//
// @Success     200  {array}   domain.Question
// @Header      200  {string}  ETag  "Weak ETag for the current table state (JSON only)"
// @Failure     400  {object}  handlers.ErrorResponse  "Parse / missing-parameter / store failure"
// @Router      /questions [get]
func (h *Handlers) ListQuestions(c *gin.Context) {
	ctx := c.Request.Context()

	p, err := pagination.FromQuery(c.Request.URL.Query())
	if err != nil {
		failFromError(c, err)
		return
	}

	if wantsHTML(c) {
		pairs, err := h.qSvc.ListJoined(ctx, p)
		if err != nil {
			failFromError(c, err)
			return
		}
		page, err := h.listing.Render(pairs)
		if err != nil {
			fail(c, http.StatusInternalServerError, ErrCodeInternal, "render failed")
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", page)
		return
	}

	// ETag pre-check (best effort; never blocks the listing on failure).
	if h.stats != nil {
		if count, maxTS, err := h.stats(ctx); err == nil {
			var ts int64
			if maxTS != nil {
				ts = maxTS.Unix()
			}
			etag := fmt.Sprintf(`W/"questions:%d:%d"`, count, ts)
			c.Header("ETag", etag)
			if inm := c.GetHeader("If-None-Match"); inm != "" && inm == etag {
				c.Status(http.StatusNotModified)
				return
			}
		}
	}

	items, err := h.qSvc.List(ctx, p)
	if err != nil {
		failFromError(c, err)
		return
	}
	if items == nil {
		items = []domain.Question{}
	}
	ok(c, http.StatusOK, items)
}

// GetQuestion godoc
// @ID          getQuestion
// @Summary     Fetch a question by id
// @Tags        Questions
// @Produce     json
// @Param       id  path  int  true  "Question ID"
// @Success     200  {object}  domain.Question
// @Failure     404  {object}  handlers.ErrorResponse  "Question not found"
// @Router      /question/{id} [get]
func (h *Handlers) GetQuestion(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	q, err := h.qSvc.Get(c.Request.Context(), id)
	if err != nil {
		// The only endpoint where a miss is 404 rather than 400.
		if errors.Is(err, services.ErrQuestionNotFound) {
			fail(c, http.StatusNotFound, ErrCodeNotFound, "Question not found")
			return
		}
		failFromError(c, err)
		return
	}
	ok(c, http.StatusOK, q)
}

// CreateQuestion godoc
// @ID          createQuestion
// @Summary     Create a question
// @Description Inserts a question; the store assigns the id. Title and
// @Description content must be non-empty when strict validation is enabled.
// @Tags        Questions
// @Accept      json
// @Produce     json
// @Param       body  body  domain.NewQuestion  true  "New question payload"
// @Success     200  {object}  domain.Question
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /questions [post]
func (h *Handlers) CreateQuestion(c *gin.Context) {
	var n domain.NewQuestion
	if err := c.ShouldBindJSON(&n); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	q, err := h.qSvc.Create(c.Request.Context(), n)
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, http.StatusOK, q)
}

// UpdateQuestion godoc
// @ID          updateQuestion
// @Summary     Replace a question
// @Description Full replace of title/content/tags. The id in the path wins;
// @Description ids are immutable.
// @Tags        Questions
// @Accept      json
// @Produce     json
// @Param       id    path  int              true  "Question ID"
// @Param       body  body  domain.Question  true  "Replacement question"
// @Success     200  {object}  domain.Question
// @Failure     400  {object}  handlers.ErrorResponse  "Question Not Found / store failure"
// @Router      /questions/{id} [put]
func (h *Handlers) UpdateQuestion(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	var q domain.Question
	if err := c.ShouldBindJSON(&q); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid JSON body")
		return
	}
	updated, err := h.qSvc.Update(c.Request.Context(), id, q)
	if err != nil {
		failFromError(c, err)
		return
	}
	ok(c, http.StatusOK, updated)
}

// DeleteQuestion godoc
// @ID          deleteQuestion
// @Summary     Delete a question
// @Description Removes the question and any answers referencing it. Answers
// @Description are deleted first; the two deletes are not atomic.
// @Tags        Questions
// @Produce     plain
// @Param       id  path  int  true  "Question ID"
// @Success     200  {string}  string  "confirmation"
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /questions/{id} [delete]
func (h *Handlers) DeleteQuestion(c *gin.Context) {
	id, okID := pathID(c)
	if !okID {
		return
	}
	if err := h.qSvc.Delete(c.Request.Context(), id); err != nil {
		failFromError(c, err)
		return
	}
	text(c, http.StatusOK, fmt.Sprintf("Question %d deleted", id))
}

// SearchQuestions godoc
// @ID          searchQuestions
// @Summary     Search questions
// @Description Ranks stored questions against q by token overlap. Stateless:
// @Description candidates are fetched from the store per request.
// @Tags        Questions
// @Produce     json
// @Param       q      query  string  true   "Free-text query"
// @Param       limit  query  int     false  "Maximum results (default 10)"
// @Success     200  {array}   search.Result
// @Failure     400  {object}  handlers.ErrorResponse
// @Router      /questions/search [get]
func (h *Handlers) SearchQuestions(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "query parameter q is required")
		return
	}
	limit := 10
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			fail(c, http.StatusBadRequest, ErrCodeParse, MsgParse)
			return
		}
		limit = n
	}

	candidates, err := h.qSvc.List(c.Request.Context(), pagination.Default())
	if err != nil {
		failFromError(c, err)
		return
	}
	results := search.Rank(query, candidates, limit)
	if results == nil {
		results = []search.Result{}
	}
	ok(c, http.StatusOK, results)
}
