package handler

import (
	"net/http"

	"github.com/alissonkauanzx/planeta-projeto06/internal/model"

	"github.com/labstack/echo/v4"
)

// ListODSHandler 永續目標目錄
// @Summary     List ODS
// @Tags        catalog
// @Produce     json
// @Success     200 {array} model.ODS
// @Router      /ods [get]
func ListODSHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, model.ODSCatalog)
	}
}

// ListCategoriesHandler 分類清單，第一個為 all
// @Summary     List categories
// @Tags        catalog
// @Produce     json
// @Success     200 {array} string
// @Router      /categories [get]
func ListCategoriesHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		out := append([]string{model.CategoryAll}, model.Categories...)
		return c.JSON(http.StatusOK, out)
	}
}
