package handlers

import (
	"net/http"
	"strconv"
	"time"

	"Motiv/internal/calendar"
	"Motiv/internal/dto"
	"Motiv/internal/goalsort"
	"Motiv/internal/money"
	"Motiv/internal/service"
	"Motiv/internal/status"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

type GoalHandler struct {
	goals *service.GoalService
	lang  language.Tag
	errs  *Responder
}

// NewGoalHandler returns a GoalHandler that formats amounts for lang.
func NewGoalHandler(goals *service.GoalService, lang language.Tag, errs *Responder) *GoalHandler {
	return &GoalHandler{goals: goals, lang: lang, errs: errs}
}

// ListGoals godoc
// @Summary      My goals
// @Tags         goals
// @Produce      json
// @Security     CookieAuth
// @Param        page  query     int     false  "Page, from 0"
// @Param        sort  query     string  false  "title, amount, deadline or status"
// @Param        dir   query     string  false  "asc or desc"
// @Success      200   {object}  dto.ListGoalsResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /goals [get]
func (h *GoalHandler) ListGoals(c *gin.Context) {
	h.list(c, goalsort.ListGoals)
}

// ListSupervisions godoc
// @Summary      Goals I supervise
// @Tags         goals
// @Produce      json
// @Security     CookieAuth
// @Param        page  query     int     false  "Page, from 0"
// @Param        sort  query     string  false  "title, amount, deadline or status"
// @Param        dir   query     string  false  "asc or desc"
// @Success      200   {object}  dto.ListGoalsResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /supervisions [get]
func (h *GoalHandler) ListSupervisions(c *gin.Context) {
	h.list(c, goalsort.ListSupervisions)
}

func (h *GoalHandler) list(c *gin.Context, list goalsort.List) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	page := 0
	if raw := c.Query("page"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil || p < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid page"})
			return
		}
		page = p
	}
	requested, err := sortFromQuery(c)
	if err != nil {
		h.errs.badRequest(c, err)
		return
	}

	res, err := h.goals.List(c.Request.Context(), sess, list, page, requested)
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	items := make([]dto.GoalResponse, len(res.Items))
	for i, v := range res.Items {
		items[i] = goalToResponse(v, h.lang)
	}
	c.JSON(http.StatusOK, dto.ListGoalsResponse{
		List:  string(res.List),
		Page:  res.Page,
		Sort:  sortToResponse(res.List, res.Sort),
		Items: items,
	})
}

// sortFromQuery reads an explicit ordering. Without sort the stored
// preference applies; dir defaults to asc.
func sortFromQuery(c *gin.Context) (*goalsort.Config, error) {
	rawKey := c.Query("sort")
	if rawKey == "" {
		return nil, nil
	}
	key, err := goalsort.ParseKey(rawKey)
	if err != nil {
		return nil, err
	}
	dir := goalsort.Asc
	if rawDir := c.Query("dir"); rawDir != "" {
		if dir, err = goalsort.ParseDirection(rawDir); err != nil {
			return nil, err
		}
	}
	return &goalsort.Config{Key: key, Direction: dir}, nil
}

// ToggleSort godoc
// @Summary      Pick a sort column
// @Description  Picking the active ascending column flips it to descending; any other pick sorts ascending.
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        list  path      string           true  "goals or supervisions"
// @Param        body  body      dto.SortRequest  true  "Column"
// @Success      200   {object}  dto.SortResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /lists/{list}/sort [post]
func (h *GoalHandler) ToggleSort(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	list, err := goalsort.ParseList(c.Param("list"))
	if err != nil {
		h.errs.badRequest(c, err)
		return
	}
	var req dto.SortRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.badRequest(c, err)
		return
	}
	key, err := goalsort.ParseKey(req.Key)
	if err != nil {
		h.errs.badRequest(c, err)
		return
	}
	cfg, err := h.goals.ToggleSort(c.Request.Context(), sess, list, key)
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, sortToResponse(list, cfg))
}

// Get godoc
// @Summary      Get a goal by ID
// @Tags         goals
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Goal ID"
// @Success      200  {object}  dto.GoalResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      502  {object}  map[string]string
// @Router       /goals/{id} [get]
func (h *GoalHandler) Get(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	v, err := h.goals.Get(c.Request.Context(), sess, id)
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goalToResponse(v, h.lang))
}

// Create godoc
// @Summary      Create a goal
// @Description  Validates the goal and returns the URL to pay its stake.
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.CreateGoalRequest  true  "Goal"
// @Success      201   {object}  dto.CreateGoalResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      503   {object}  map[string]string
// @Router       /goals [post]
func (h *GoalHandler) Create(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.badRequest(c, err)
		return
	}
	url, err := h.goals.Create(c.Request.Context(), sess, service.CreateGoalInput{
		Title:           req.Title,
		Description:     req.Description,
		Deadline:        req.Deadline,
		Amount:          req.Amount,
		SupervisorPhone: req.SupervisorPhone,
	})
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.CreateGoalResponse{PaymentURL: url})
}

// DeadlineBounds godoc
// @Summary      Selectable deadline days
// @Tags         goals
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.DeadlineBoundsResponse
// @Failure      503  {object}  map[string]string
// @Router       /goals/deadline-bounds [get]
func (h *GoalHandler) DeadlineBounds(c *gin.Context) {
	b, err := h.goals.Bounds(c.Request.Context())
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DeadlineBoundsResponse{
		First:    b.First.String(),
		Last:     b.Last.String(),
		MinHours: b.MinHours,
		MaxHours: b.MaxHours,
	})
}

// Supervise godoc
// @Summary      Judge a goal
// @Description  Only the supervisor, once, while the supervision window is open.
// @Tags         goals
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        id    path      int                   true  "Goal ID"
// @Param        body  body      dto.SuperviseRequest  true  "Decision"
// @Success      200   {object}  dto.GoalResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /goals/{id}/supervise [post]
func (h *GoalHandler) Supervise(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SuperviseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.errs.badRequest(c, err)
		return
	}
	v, err := h.goals.Supervise(c.Request.Context(), sess, id, *req.Done, req.Note)
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, goalToResponse(v, h.lang))
}

// Payment godoc
// @Summary      Stake payment status
// @Tags         payments
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Payment ID"
// @Success      200  {object}  dto.PaymentResponse
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [get]
func (h *GoalHandler) Payment(c *gin.Context) {
	sess, ok := mustSession(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	p, err := h.goals.Payment(c.Request.Context(), sess, id)
	if err != nil {
		h.errs.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PaymentResponse{
		GoalID:          p.Payment.GoalID,
		Amount:          p.AmountMajor,
		AmountFormatted: money.Format(p.AmountMajor, h.lang),
		Gateway:         p.Payment.Gateway,
		TracingCode:     p.Payment.TracingCode,
	})
}

func sortToResponse(list goalsort.List, cfg goalsort.Config) dto.SortResponse {
	return dto.SortResponse{List: string(list), Key: string(cfg.Key), Direction: string(cfg.Direction)}
}

func goalToResponse(v service.GoalView, lang language.Tag) dto.GoalResponse {
	g := v.Goal
	out := dto.GoalResponse{
		ID:              g.ID,
		Title:           g.Title,
		Description:     g.Description,
		Amount:          v.AmountMajor,
		AmountFormatted: money.Format(v.AmountMajor, lang),
		Deadline:        g.Deadline,
		CreatorName:     g.CreatorName,
		CreatorPhone:    g.CreatorPhone,
		SupervisorPhone: g.SupervisorPhone,
		SupervisorNote:  g.SupervisorNote,
		SupervisedAt:    g.SupervisedAt,
		Done:            g.Done,
		DonatedTo:       g.DonatedTo,
		CreatedAt:       g.CreatedAt,
		Status:          statusToResponse(v.Status),
		Window:          windowToResponse(v.Window),
		Role:            string(v.Role),
	}
	if g.Deadline != nil {
		out.DeadlineLocal = calendar.FormatDate(*g.Deadline)
	}
	return out
}

func statusToResponse(st status.Status) dto.StatusResponse {
	return dto.StatusResponse{
		State:              st.Deadline.String(),
		Label:              st.Deadline.Label(),
		Supervision:        st.Supervision.String(),
		SupervisionLabel:   st.Supervision.Label(),
		Tooltip:            st.Tooltip,
		SupervisionTooltip: st.SupervisionTooltip,
		RowClass:           st.RowClass,
		Priority:           st.Priority,
		RemainingDays:      st.RemainingDays,
	}
}

func windowToResponse(w status.SupervisionWindow) dto.WindowResponse {
	out := dto.WindowResponse{State: w.State.String()}
	if !w.OpensAt.IsZero() {
		out.OpensAt = timePtr(w.OpensAt)
		out.ClosesAt = timePtr(w.ClosesAt)
	}
	return out
}

func timePtr(t time.Time) *time.Time { return &t }
