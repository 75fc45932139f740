package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	orderdomain "github.com/novayra/storefront/internal/order/domain"
	"github.com/novayra/storefront/internal/providers/pdf"
	"go.uber.org/zap"
)

func (s *Server) AdminListOrders(c *gin.Context) {
	var req orderdomain.AdminListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		AbortWithError(c, ErrInvalidRequest)
		return
	}

	resp, err := s.orderSvc.AdminList(c.Request.Context(), req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"orders":     resp.Orders,
		"pagination": resp.PageInfo,
	})
}

func (s *Server) AdminGetOrder(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, orderdomain.ErrNotFound)
		return
	}

	order, err := s.orderSvc.AdminGet(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

func (s *Server) AdminUpdateOrderStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, orderdomain.ErrNotFound)
		return
	}

	var req orderdomain.StatusUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	order, err := s.orderSvc.UpdateStatus(c.Request.Context(), id, currentUser(c).ID, req)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

type updatePaymentRequest struct {
	PaymentStatus orderdomain.PaymentStatus `json:"payment_status"`
}

func (s *Server) AdminUpdateOrderPayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, orderdomain.ErrNotFound)
		return
	}

	var req updatePaymentRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	order, err := s.orderSvc.UpdatePayment(c.Request.Context(), id, currentUser(c).ID, req.PaymentStatus)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "order": order})
}

type updateNotesRequest struct {
	AdminNotes string `json:"admin_notes"`
}

func (s *Server) AdminUpdateOrderNotes(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, orderdomain.ErrNotFound)
		return
	}

	var req updateNotesRequest
	if err := bindJSON(c, &req); err != nil {
		AbortWithError(c, err)
		return
	}

	if err := s.orderSvc.UpdateNotes(c.Request.Context(), id, currentUser(c).ID, req.AdminNotes); err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Notes updated"})
}

func (s *Server) AdminOrderStats(c *gin.Context) {
	summary, err := s.orderSvc.StatsSummary(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"stats":           summary.Stats,
		"monthly_revenue": summary.MonthlyRevenue,
	})
}

func (s *Server) AdminOrderReceipt(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		AbortWithError(c, orderdomain.ErrNotFound)
		return
	}

	order, err := s.orderSvc.AdminGet(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	store := s.store.Get()
	symbol := store.CurrencySymbol

	data := pdf.ReceiptData{
		StoreName:       store.DefaultSettings["general_site_name"],
		StoreEmail:      store.DefaultSettings["general_contact_email"],
		OrderNumber:     order.OrderNumber,
		OrderDate:       order.CreatedAt.Format("02 Jan 2006"),
		PaymentMethod:   order.PaymentMethod,
		PaymentStatus:   string(order.PaymentStatus),
		Status:          string(order.Status),
		CustomerName:    order.CustomerName,
		CustomerEmail:   order.CustomerEmail,
		ShippingAddress: order.ShippingAddress,
		ShippingCity:    order.ShippingCity,
		ShippingState:   order.ShippingState,
		ShippingPostal:  order.ShippingPostalCode,
		ShippingCountry: order.ShippingCountry,
		CurrencySymbol:  symbol,
		Total:           fmt.Sprintf("%s%.2f", symbol, order.TotalAmount),
	}
	if data.StoreName == "" {
		data.StoreName = "Novayra"
	}
	for _, item := range order.Items {
		data.Items = append(data.Items, pdf.ReceiptItem{
			Description: item.ProductName,
			Qty:         item.Quantity,
			UnitPrice:   fmt.Sprintf("%s%.2f", symbol, item.ProductPrice),
			Amount:      fmt.Sprintf("%s%.2f", symbol, item.Subtotal),
		})
	}

	doc, err := s.pdfProvider.GenerateOrderReceipt(c.Request.Context(), data)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=receipt-%s.pdf", order.OrderNumber))
	if _, err := io.Copy(c.Writer, doc); err != nil {
		s.log.Warn("failed to stream receipt", zap.Error(err))
	}
}
