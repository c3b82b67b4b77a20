package main

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Beka01247/sizzlesync-pos/internal/domain"
	"github.com/Beka01247/sizzlesync-pos/internal/repo"
	"github.com/go-chi/chi"
)

const dateLayout = "2006-01-02"

type dateQuery struct {
	Date string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type OrdersResponse struct {
	Date   string                 `json:"date"`
	Count  int                    `json:"count"`
	Orders []domain.ArchivedOrder `json:"orders"`
}

type SummaryResponse struct {
	Date    string              `json:"date"`
	Summary domain.SalesSummary `json:"summary"`
}

// listOrdersHandler godoc
//
//	@Summary		List archived orders
//	@Description	Lists orders completed on the given day, oldest first
//	@Tags			orders
//	@Produce		json
//	@Param			date	query		string	false	"Day as YYYY-MM-DD, defaults to today"
//	@Success		200		{object}	OrdersResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	day, err := app.dayFromQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	orders, err := app.archiveService.ListByDay(r.Context(), day)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}
	if orders == nil {
		orders = []domain.ArchivedOrder{}
	}

	response := OrdersResponse{
		Date:   day.Format(dateLayout),
		Count:  len(orders),
		Orders: orders,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get archived order
//	@Description	Fetches one archived order by session and order number
//	@Tags			orders
//	@Produce		json
//	@Param			session_id		path		string	true	"POS session ID"
//	@Param			order_number	path		int		true	"Order number"
//	@Success		200				{object}	domain.ArchivedOrder
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Failure		500				{object}	map[string]string
//	@Router			/orders/{session_id}/{order_number} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "session_id")
	if sessionID == "" {
		app.badRequestResponse(w, r, errors.New("session_id is required"))
		return
	}

	orderNumber, err := strconv.Atoi(chi.URLParam(r, "order_number"))
	if err != nil || orderNumber <= 0 {
		app.badRequestResponse(w, r, errors.New("order_number must be a positive integer"))
		return
	}

	order, err := app.archiveService.Get(r.Context(), sessionID, orderNumber)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// salesSummaryHandler godoc
//
//	@Summary		Daily sales summary
//	@Description	Order count, total sales, average order value and items sold for a day
//	@Tags			sales
//	@Produce		json
//	@Param			date	query		string	false	"Day as YYYY-MM-DD, defaults to today"
//	@Success		200		{object}	SummaryResponse
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/sales/summary [get]
func (app *application) salesSummaryHandler(w http.ResponseWriter, r *http.Request) {
	day, err := app.dayFromQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	summary, err := app.archiveService.DailySummary(r.Context(), day)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := SummaryResponse{
		Date:    day.Format(dateLayout),
		Summary: summary,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

func (app *application) dayFromQuery(r *http.Request) (time.Time, error) {
	q := dateQuery{Date: r.URL.Query().Get("date")}
	if err := domain.ValidateStruct(q); err != nil {
		return time.Time{}, err
	}

	if q.Date == "" {
		return app.now().In(app.location), nil
	}

	return time.ParseInLocation(dateLayout, q.Date, app.location)
}
