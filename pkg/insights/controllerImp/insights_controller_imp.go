package controllerImp

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"farmlens/pkg/insights/report"
	"farmlens/pkg/insights/service"
	"farmlens/pkg/pricefeed"
	"farmlens/pkg/snapshot"
)

type InsightsCtrl struct {
	svc       service.Service
	snapshots snapshot.Repository
}

func New(svc service.Service, snapshots snapshot.Repository) *InsightsCtrl {
	return &InsightsCtrl{svc: svc, snapshots: snapshots}
}

func (h *InsightsCtrl) Financial(c echo.Context) error {
	uid := c.Get("uid").(string)
	in, err := h.svc.Financial(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, in)
}

// Report streams the insights workbook as an attachment.
func (h *InsightsCtrl) Report(c echo.Context) error {
	uid := c.Get("uid").(string)
	in, err := h.svc.Financial(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	f, err := report.Build(in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	defer f.Close()

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="financial-insights.xlsx"`)
	c.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Response().WriteHeader(http.StatusOK)
	if err := f.Write(c.Response()); err != nil {
		return err
	}
	return nil
}

func (h *InsightsCtrl) Snapshots(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.snapshots.ListByUser(uid, 30)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

// ImportPrices accepts an HTML price table in the request body and lays the
// parsed prices over the default table for subsequent insight runs.
func (h *InsightsCtrl) ImportPrices(c echo.Context) error {
	points, err := pricefeed.Parse(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	h.svc.UpdatePrices(points)
	return c.JSON(http.StatusOK, map[string]int{"imported": len(points)})
}
