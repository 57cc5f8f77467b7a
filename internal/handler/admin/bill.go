package admin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/medrec/hospital-api/internal/handler"
	"github.com/medrec/hospital-api/internal/model"
	apperrors "github.com/medrec/hospital-api/pkg/errors"
)

func (h *Handler) ListBills(c *gin.Context) {
	ctx := c.Request.Context()

	bills, err := h.bills.ListBills(ctx)
	if err != nil {
		h.flashError(c, err)
	}
	patients, err := h.patients.ListPatients(ctx)
	if err != nil {
		h.flashError(c, err)
	}

	h.render(c, "admin_bills.html", gin.H{
		"bills":    bills,
		"patients": patients,
	})
}

func (h *Handler) CreateBill(c *gin.Context) {
	patientID, err := strconv.ParseInt(c.PostForm("patient_id"), 10, 64)
	if err != nil {
		h.flash(c, "patient is required")
		c.Redirect(http.StatusFound, "/admin/bills")
		return
	}

	amount, ok := model.CoerceFloat(c.PostForm("amount"))
	if !ok {
		h.flash(c, "amount must be a number")
		c.Redirect(http.StatusFound, "/admin/bills")
		return
	}

	paid, _ := model.CoerceBool(c.PostForm("paid"))

	req := &model.CreateBillRequest{
		PatientID: patientID,
		Amount:    &amount,
		Paid:      paid,
	}

	if _, err := h.bills.CreateBill(c.Request.Context(), req); err != nil {
		h.flashError(c, err)
	} else {
		h.flash(c, "Bill created")
	}
	c.Redirect(http.StatusFound, "/admin/bills")
}

func (h *Handler) DeleteBill(c *gin.Context) {
	if id, err := handler.ParseID(c); err == nil {
		if err := h.bills.DeleteBill(c.Request.Context(), id); err != nil && !apperrors.IsNotFound(err) {
			h.flashError(c, err)
			c.Redirect(http.StatusFound, "/admin/bills")
			return
		}
	}
	h.flash(c, "Bill deleted")
	c.Redirect(http.StatusFound, "/admin/bills")
}
