package controllerImp

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"farmlens/entities"
	"farmlens/pkg/soil"
	"farmlens/pkg/soiltest/repository"
)

type SoilTestCtrl struct{ repo repository.SoilTestRepository }

func New(repo repository.SoilTestRepository) *SoilTestCtrl { return &SoilTestCtrl{repo} }

type createReq struct {
	CropID                 string   `json:"crop_id"`
	FieldName              string   `json:"field_name"`
	SampleDate             string   `json:"sample_date"` // YYYY-MM-DD
	LabName                string   `json:"lab_name"`
	PH                     float64  `json:"ph"`
	OrganicMatter          float64  `json:"organic_matter"`
	Nitrogen               float64  `json:"nitrogen"`
	Phosphorus             float64  `json:"phosphorus"`
	Potassium              float64  `json:"potassium"`
	Calcium                float64  `json:"calcium"`
	Magnesium              float64  `json:"magnesium"`
	Sulfur                 float64  `json:"sulfur"`
	CationExchangeCapacity float64  `json:"cation_exchange_capacity"`
	SoilTexture            string   `json:"soil_texture"`
	Cost                   *float64 `json:"cost"`
	Notes                  string   `json:"notes"`
}

func (h *SoilTestCtrl) Create(c echo.Context) error {
	uid := c.Get("uid").(string)
	var req createReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "bad json"})
	}
	if req.PH < 0 || req.PH > 14 {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "ph out of range"})
	}
	sampled := time.Now()
	if req.SampleDate != "" {
		if d, err := time.Parse("2006-01-02", req.SampleDate); err == nil {
			sampled = d
		}
	}
	t := &entities.SoilTest{
		ID:                     uuid.NewString(),
		UserID:                 uid,
		CropID:                 req.CropID,
		FieldName:              req.FieldName,
		SampleDate:             sampled,
		LabName:                req.LabName,
		PH:                     req.PH,
		OrganicMatter:          req.OrganicMatter,
		Nitrogen:               req.Nitrogen,
		Phosphorus:             req.Phosphorus,
		Potassium:              req.Potassium,
		Calcium:                req.Calcium,
		Magnesium:              req.Magnesium,
		Sulfur:                 req.Sulfur,
		CationExchangeCapacity: req.CationExchangeCapacity,
		SoilTexture:            req.SoilTexture,
		Cost:                   req.Cost,
		Notes:                  req.Notes,
	}
	if err := h.repo.Create(t); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, t)
}

func (h *SoilTestCtrl) List(c echo.Context) error {
	uid := c.Get("uid").(string)
	out, err := h.repo.ListByUser(uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *SoilTestCtrl) Get(c echo.Context) error {
	uid := c.Get("uid").(string)
	t, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, t)
}

// timeframeStart maps a named lookback window onto a start date.
func timeframeStart(now time.Time, timeframe string) time.Time {
	years := 1
	switch timeframe {
	case "two-years":
		years = 2
	case "five-years":
		years = 5
	}
	return now.AddDate(-years, 0, 0)
}

// Trends returns the tenant's tests in the requested window, each reduced to
// its date, parameters and health score. Optional ?field= narrows to one
// field; ?timeframe= is year (default), two-years or five-years.
func (h *SoilTestCtrl) Trends(c echo.Context) error {
	uid := c.Get("uid").(string)
	now := time.Now()
	tests, err := h.repo.ListByUserBetween(uid, timeframeStart(now, c.QueryParam("timeframe")), now)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	if field := c.QueryParam("field"); field != "" {
		kept := tests[:0]
		for _, t := range tests {
			if t.FieldName == field {
				kept = append(kept, t)
			}
		}
		tests = kept
	}
	return c.JSON(http.StatusOK, soil.Trend(tests))
}

// Analysis rates one soil test; the computation is pure, nothing is stored.
func (h *SoilTestCtrl) Analysis(c echo.Context) error {
	uid := c.Get("uid").(string)
	t, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusOK, soil.Analyze(*t))
}

func (h *SoilTestCtrl) Recommendations(c echo.Context) error {
	uid := c.Get("uid").(string)
	t, err := h.repo.FindByID(c.Param("id"), uid)
	if err != nil {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	analysis := soil.Analyze(*t)
	return c.JSON(http.StatusOK, soil.Recommend(*t, analysis))
}
