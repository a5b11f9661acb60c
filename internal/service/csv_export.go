package service

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/orderdesk/internal/constants"
	"github.com/orderdesk/internal/models"
)

const csvTimeLayout = "2006-01-02 15:04:05"

// csvHeader is the fixed export projection. Column order is part of the
// external contract; do not reorder.
var csvHeader = []string{
	"Order ID", "Agent ID", "Delivery User ID", "Product", "Period",
	"Payment Method", "Platform", "Contact Info", "Comments", "Status",
	"Created At", "Delivery Started At", "Completed At", "Delivery Comments",
}

// ExportCSV renders the requesting agent's orders as a CSV file: one header
// row plus one row per order, newest first. Unset timestamps and absent
// comments render as empty cells.
func (s *OrderService) ExportCSV(agentID int64) ([]byte, error) {
	orders, err := s.orderRepo.ListByAgent(agentID)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return nil, err
	}
	for i := range orders {
		if err := writer.Write(csvRow(&orders[i])); err != nil {
			return nil, err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func csvRow(order *models.Order) []string {
	deliveryUserID := ""
	if order.DeliveryUserID != nil {
		deliveryUserID = strconv.FormatInt(*order.DeliveryUserID, 10)
	}
	return []string{
		order.OrderNo,
		strconv.FormatInt(order.AgentID, 10),
		deliveryUserID,
		order.Product.Name,
		order.Period.Duration,
		order.PaymentMethod.Name,
		order.Platform.Name,
		order.ContactInfo,
		derefOrEmpty(order.Comments),
		constants.StatusDisplay[order.Status],
		formatCSVTime(&order.CreatedAt),
		formatCSVTime(order.DeliveryStartedAt),
		formatCSVTime(order.CompletedAt),
		derefOrEmpty(order.DeliveryComments),
	}
}

func formatCSVTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(csvTimeLayout)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
