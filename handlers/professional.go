package handlers

import (
	"net/http"
	"strconv"
	"time"

	professionalRepo "alcahub/database/repository/professional"
	"alcahub/models"
	"alcahub/services/availability"
	"alcahub/services/order"
	"alcahub/utils"

	"github.com/gin-gonic/gin"
)

// ProfessionalHandler serves the marketplace's professional catalogue and
// availability views.
type ProfessionalHandler struct {
	Repo        professionalRepo.ProfessionalRepository
	Orders      order.OrderService
	SlotMinutes int
}

// NewProfessionalHandler creates a ProfessionalHandler.
func NewProfessionalHandler(repo professionalRepo.ProfessionalRepository, orders order.OrderService, slotMinutes int) *ProfessionalHandler {
	return &ProfessionalHandler{Repo: repo, Orders: orders, SlotMinutes: slotMinutes}
}

// ListProfessionalsHandler returns all professionals, optionally filtered by
// query parameters (name, specialty, minRating, verified).
func (h *ProfessionalHandler) ListProfessionalsHandler(c *gin.Context) {
	criteria := professionalRepo.SearchCriteria{
		Name:      c.Query("name"),
		Specialty: c.Query("specialty"),
	}
	if v := c.Query("minRating"); v != "" {
		if rating, err := strconv.ParseFloat(v, 64); err == nil {
			criteria.MinRating = rating
		}
	}
	if v := c.Query("verified"); v != "" {
		verified := v == "true"
		criteria.Verified = &verified
	}

	profs, err := h.Repo.Search(criteria)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch professionals", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"professionals": profs})
}

// GetProfessionalByIDHandler returns a single professional.
func (h *ProfessionalHandler) GetProfessionalByIDHandler(c *gin.Context) {
	prof, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch professional", err.Error())
		return
	}
	if prof == nil {
		utils.JSONError(c, http.StatusNotFound, "professional not found", "")
		return
	}
	c.JSON(http.StatusOK, prof)
}

// GetCalendarHandler returns the month grid for a professional.
// Query: year, month (1..12); defaults to the current month.
func (h *ProfessionalHandler) GetCalendarHandler(c *gin.Context) {
	prof, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch professional", err.Error())
		return
	}
	if prof == nil {
		utils.JSONError(c, http.StatusNotFound, "professional not found", "")
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())
	if v := c.Query("year"); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			year = y
		}
	}
	if v := c.Query("month"); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			month = m
		}
	}

	reservedByDate, err := h.reservedForMonth(prof, year, month)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reservations", err.Error())
		return
	}

	grid, err := availability.MonthGrid(prof, year, month, reservedByDate, now, h.SlotMinutes)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid calendar request", err.Error())
		return
	}
	c.JSON(http.StatusOK, grid)
}

// GetAvailabilityHandler returns one day's slot list. Query: date (required).
func (h *ProfessionalHandler) GetAvailabilityHandler(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		utils.JSONError(c, http.StatusBadRequest, "date query parameter is required", "")
		return
	}

	prof, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch professional", err.Error())
		return
	}
	if prof == nil {
		utils.JSONError(c, http.StatusNotFound, "professional not found", "")
		return
	}

	class, err := availability.ClassifyDay(prof, date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	if class != models.DayAvailable {
		c.JSON(http.StatusOK, gin.H{
			"date":      date,
			"available": false,
			"reason":    class,
		})
		return
	}

	reservedTimes, err := h.Orders.ReservedTimes(prof.ID, date)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load reservations", err.Error())
		return
	}
	day, err := availability.GenerateDaySlots(prof, date, availability.NewReservedSet(reservedTimes), time.Now(), h.SlotMinutes)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid availability request", err.Error())
		return
	}
	c.JSON(http.StatusOK, day)
}

// reservedForMonth collects each day's reservation set for the month.
func (h *ProfessionalHandler) reservedForMonth(prof *models.Professional, year, month int) (map[string]availability.ReservedSet, error) {
	reserved := make(map[string]availability.ReservedSet)
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.Local)
	for d := first; d.Month() == time.Month(month); d = d.AddDate(0, 0, 1) {
		date := d.Format("2006-01-02")
		times, err := h.Orders.ReservedTimes(prof.ID, date)
		if err != nil {
			return nil, err
		}
		if len(times) > 0 {
			reserved[date] = availability.NewReservedSet(times)
		}
	}
	return reserved, nil
}
