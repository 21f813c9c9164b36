package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"farmlens/entities"
	"farmlens/pkg/activity/repository"
)

type ActivityCtrl struct{ repo repository.ActivityRepository }

func New(repo repository.ActivityRepository) *ActivityCtrl { return &ActivityCtrl{repo} }

type createReq struct {
	Kind        string   `json:"kind"`
	Cost        *float64 `json:"cost"`
	OccurredAt  string   `json:"occurred_at"` // YYYY-MM-DD
	CropID      string   `json:"crop_id"`
	CropName    string   `json:"crop_name"`
	YieldAmount *float64 `json:"yield_amount"`
	Notes       string   `json:"notes"`
}

func validKind(k string) bool {
	for _, kind := range entities.Kinds() {
		if string(kind) == k {
			return true
		}
	}
	return false
}

func (h *ActivityCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if !validKind(req.Kind) {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "unknown activity kind"})
	}
	if req.Cost != nil && *req.Cost < 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "cost must be non-negative"})
	}
	occurred := time.Now()
	if req.OccurredAt != "" {
		if d, err := time.Parse("2006-01-02", req.OccurredAt); err == nil {
			occurred = d
		}
	}
	a := &entities.Activity{
		ID:          uuid.NewString(),
		UserID:      uid,
		Kind:        entities.ActivityKind(req.Kind),
		Cost:        req.Cost,
		OccurredAt:  occurred,
		CropID:      req.CropID,
		CropName:    req.CropName,
		YieldAmount: req.YieldAmount,
		Notes:       req.Notes,
	}
	if err := h.repo.Create(a); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, a)
}

func (h *ActivityCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ActivityCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	a, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, a)
}

func (h *ActivityCtrl) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)
	if err := h.repo.Delete(c.Param("id"), uid); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.NoContent(http.StatusNoContent)
}
