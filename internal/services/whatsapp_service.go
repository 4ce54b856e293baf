// internal/services/whatsapp_service.go
package services

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/craveshop/crave-backend/internal/config"
	"github.com/craveshop/crave-backend/internal/models"
)

// WhatsAppService renders a persisted order into the notification text
// and the wa.me deep link handed to the storefront. The target number
// is injected so the service can be tested without ambient settings.
type WhatsAppService struct {
	number string
}

func NewWhatsAppService(cfg config.WhatsAppConfig) *WhatsAppService {
	return &WhatsAppService{number: cfg.Number}
}

func (s *WhatsAppService) Number() string {
	return s.number
}

// OrderText is a wire contract: the handoff target receives this literal
// text, so identical orders must always produce byte-identical output.
// Items render in the order they were submitted.
func (s *WhatsAppService) OrderText(order *models.Order) string {
	var b strings.Builder

	fmt.Fprintf(&b, "🛒 *New Order #%d*\n\n", order.ID)
	fmt.Fprintf(&b, "👤 *Customer:* %s\n", order.CustomerName)
	fmt.Fprintf(&b, "📧 *Email:* %s\n", order.CustomerEmail)
	fmt.Fprintf(&b, "📱 *Phone:* %s\n", order.CustomerPhone)
	fmt.Fprintf(&b, "📍 *Address:* %s\n\n", order.CustomerAddress)
	b.WriteString("🛍️ *Items:*\n")

	for _, item := range order.OrderItems {
		fmt.Fprintf(&b, ". %s x%s - %s\n",
			itemField(item, "name"), itemField(item, "quantity"), itemField(item, "price"))
	}

	fmt.Fprintf(&b, "\n💰 *Total Amount:* $%s\n", strconv.FormatFloat(order.TotalAmount, 'f', 2, 64))
	fmt.Fprintf(&b, "📅 *Order Date:* %s", order.CreatedAt.Format("2006-01-02 15:04"))

	return b.String()
}

// OrderLink builds the chat deep link with the order text prefilled.
func (s *WhatsAppService) OrderLink(order *models.Order) string {
	number := strings.ReplaceAll(s.number, "+", "")
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(s.OrderText(order))
}

// itemField renders a snapshot value the way it was submitted: strings
// pass through, whole numbers print without a decimal point.
func itemField(item map[string]interface{}, key string) string {
	switch v := item[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	default:
		return fmt.Sprint(v)
	}
}
