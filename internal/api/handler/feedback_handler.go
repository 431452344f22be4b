package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/verdantis/nursery-system/internal/core/domain"
	"github.com/verdantis/nursery-system/internal/core/ports"
)

// FeedbackHandler handles customer feedback submission and the manager views.
type FeedbackHandler struct {
	service ports.FeedbackService
}

func NewFeedbackHandler(service ports.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: service}
}

type submitFeedbackRequest struct {
	Rating      int    `json:"rating"       validate:"required,min=1,max=5"`
	Comment     string `json:"comment"`
	OrderNumber string `json:"order_number"`
}

type feedbackResponse struct {
	ID            string    `json:"id,omitempty"`
	CustomerEmail string    `json:"customer_email"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment,omitempty"`
	OrderNumber   string    `json:"order_number,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type listFeedbackResponse struct {
	Data       []feedbackResponse `json:"data"`
	Pagination paginationResponse `json:"pagination"`
}

func toFeedbackResponse(f *domain.Feedback) feedbackResponse {
	return feedbackResponse{
		ID:            f.ID,
		CustomerEmail: f.CustomerEmail,
		Rating:        f.Rating,
		Comment:       f.Comment,
		OrderNumber:   f.OrderNumber,
		CreatedAt:     f.CreatedAt,
	}
}

// Submit handles POST /v1/feedback.
//
// @Summary      Submit customer feedback
// @Tags         feedback
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitFeedbackRequest  true  "Feedback"
// @Success      201   {object}  feedbackResponse
// @Failure      400   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/feedback [post]
func (h *FeedbackHandler) Submit(c echo.Context) error {
	var req submitFeedbackRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	f, err := h.service.Submit(c.Request().Context(), ports.SubmitFeedbackInput{
		CustomerEmail: identity.Email,
		Rating:        req.Rating,
		Comment:       req.Comment,
		OrderNumber:   req.OrderNumber,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toFeedbackResponse(f))
}

// List handles GET /v1/feedback.
//
// @Summary      List recent feedback
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Rows per page (max 100)"
// @Success      200    {object}  listFeedbackResponse
// @Router       /v1/feedback [get]
func (h *FeedbackHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListFeedback(c.Request().Context(), page, limit)
	if err != nil {
		return err
	}

	data := make([]feedbackResponse, 0, len(result.Items))
	for _, f := range result.Items {
		data = append(data, toFeedbackResponse(f))
	}

	return c.JSON(http.StatusOK, listFeedbackResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}

// Stats handles GET /v1/feedback/stats.
//
// @Summary      Aggregated feedback statistics
// @Tags         feedback
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.FeedbackStats
// @Router       /v1/feedback/stats [get]
func (h *FeedbackHandler) Stats(c echo.Context) error {
	stats, err := h.service.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
