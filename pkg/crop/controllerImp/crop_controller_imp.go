package controllerImp

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"farmlens/entities"
	"farmlens/pkg/crop/repository"
)

type CropCtrl struct{ repo repository.CropRepository }

func New(repo repository.CropRepository) *CropCtrl { return &CropCtrl{repo} }

type createReq struct {
	Name        string  `json:"name"`
	AreaPlanted float64 `json:"area_planted"`
}

func (h *CropCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.Name == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "name required"})
	}
	cr := &entities.Crop{ID: uuid.NewString(), UserID: uid, Name: req.Name, AreaPlanted: req.AreaPlanted}
	if err := h.repo.Create(cr); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, cr)
}

func (h *CropCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CropCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	cr, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, cr)
}
