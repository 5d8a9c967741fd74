package http

import (
	"net/http"

	"marketplace/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// GetRevenue handles GET /api/orders/revenue.
func (s *Server) GetRevenue(c echo.Context) error {
	period, err := bindDateRange(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.GetRevenue.Handle(c.Request().Context(), queries.NewGetRevenueQuery(period))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, RevenueJSON{TotalRevenue: formatAmount(result.TotalRevenue)})
}

// GetMostOrdered handles GET /api/orders/most-ordered.
func (s *Server) GetMostOrdered(c echo.Context) error {
	period, err := bindDateRange(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.GetMostOrdered.Handle(c.Request().Context(), queries.NewGetMostOrderedQuery(period))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, mostOrderedItems(result))
}

// GetOrdersReport handles GET /api/reports/orders.
func (s *Server) GetOrdersReport(c echo.Context) error {
	period, err := bindDateRange(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.GetOrdersReport.Handle(c.Request().Context(), queries.NewGetOrdersReportQuery(period))
	if err != nil {
		return err
	}

	response := make([]OrderJSON, len(result))
	for i, o := range result {
		response[i] = orderFromReadModel(o)
	}
	return c.JSON(http.StatusOK, response)
}

// GetMostOrderedByRestaurant handles GET /api/reports/most-ordered.
func (s *Server) GetMostOrderedByRestaurant(c echo.Context) error {
	period, err := bindDateRange(c)
	if err != nil {
		return err
	}

	result, err := s.handlers.GetMostOrderedByRestaurant.Handle(
		c.Request().Context(),
		queries.NewGetMostOrderedByRestaurantQuery(period),
	)
	if err != nil {
		return err
	}

	response := make([]RestaurantMostOrderedJSON, len(result))
	for i, restaurant := range result {
		response[i] = RestaurantMostOrderedJSON{
			RestaurantID:     restaurant.RestaurantID.String(),
			RestaurantName:   restaurant.RestaurantName,
			MostOrderedItems: mostOrderedItems(restaurant.MostOrderedItems),
		}
	}
	return c.JSON(http.StatusOK, response)
}

// GetMonthlyRevenue handles GET /api/reports/monthly-revenue for the calling
// restaurant owner.
func (s *Server) GetMonthlyRevenue(c echo.Context) error {
	principal, _ := PrincipalFrom(c)

	period, err := bindDateRange(c)
	if err != nil {
		return err
	}

	query, err := queries.NewGetMonthlyRevenueQuery(principal.UserID, period)
	if err != nil {
		return err
	}

	result, err := s.handlers.GetMonthlyRevenue.Handle(c.Request().Context(), query)
	if err != nil {
		return err
	}

	response := make([]MonthlyRevenueJSON, len(result))
	for i, line := range result {
		response[i] = MonthlyRevenueJSON{Month: line.Month, TotalRevenue: formatAmount(line.TotalRevenue)}
	}
	return c.JSON(http.StatusOK, response)
}

func mostOrderedItems(items []queries.GetMostOrderedQueryResponse) []MostOrderedItemJSON {
	response := make([]MostOrderedItemJSON, len(items))
	for i, item := range items {
		response[i] = MostOrderedItemJSON{Name: item.Name, TotalOrdered: item.TotalOrdered}
	}
	return response
}
