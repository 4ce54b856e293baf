// internal/services/order_service.go
package services

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gorm.io/gorm"

	"github.com/craveshop/crave-backend/internal/models"
	"github.com/craveshop/crave-backend/internal/utils"
)

type OrderService struct {
	db *gorm.DB
}

// CreateOrderRequest accepts the structural payload as submitted.
// Phone and total amount are typed loosely because clients send them
// both as JSON numbers and as strings; validation normalizes them.
type CreateOrderRequest struct {
	CustomerName    string            `json:"customer_name" validate:"required"`
	CustomerEmail   string            `json:"customer_email" validate:"required,email"`
	CustomerPhone   interface{}       `json:"customer_phone"`
	CustomerAddress string            `json:"customer_address" validate:"required"`
	TotalAmount     interface{}       `json:"total_amount"`
	OrderItems      models.OrderItems `json:"order_items"`
}

func NewOrderService(db *gorm.DB) *OrderService {
	return &OrderService{db: db}
}

// Validate applies every field rule and collects all failures instead
// of stopping at the first one.
func (s *OrderService) Validate(req *CreateOrderRequest) utils.FieldErrors {
	fieldErrors := utils.GetFieldErrors(utils.ValidateStruct(req))

	if phone := normalizeScalar(req.CustomerPhone); phone == "" {
		fieldErrors.Add("customer_phone", "This field is required.")
	} else if !utils.IsValidPhone(phone) {
		fieldErrors.Add("customer_phone", "Enter a valid phone number.")
	}

	if req.TotalAmount == nil {
		fieldErrors.Add("total_amount", "This field is required.")
	} else if total, err := parseAmount(req.TotalAmount); err != nil {
		fieldErrors.Add("total_amount", "A valid number is required.")
	} else if total <= 0 {
		fieldErrors.Add("total_amount", "Total amount must be greater than zero.")
	}

	if len(req.OrderItems) == 0 {
		fieldErrors.Add("order_items", "Order must contain at least one item.")
	} else {
		for _, item := range req.OrderItems {
			if !hasKeys(item, "name", "quantity", "price") {
				fieldErrors.Add("order_items", "Each item must have 'name', 'quantity', and 'price'.")
				break
			}
		}
	}

	return fieldErrors
}

// CreateOrder validates and persists in that strict sequence: nothing
// is written unless every rule passes, and the insert is a single
// atomic operation. Status is always forced to pending regardless of
// any client-supplied value.
func (s *OrderService) CreateOrder(req *CreateOrderRequest) (*models.Order, utils.FieldErrors, error) {
	if fieldErrors := s.Validate(req); len(fieldErrors) > 0 {
		return nil, fieldErrors, nil
	}

	total, _ := parseAmount(req.TotalAmount)

	order := &models.Order{
		CustomerName:    req.CustomerName,
		CustomerEmail:   req.CustomerEmail,
		CustomerPhone:   normalizeScalar(req.CustomerPhone),
		CustomerAddress: req.CustomerAddress,
		TotalAmount:     total,
		OrderItems:      req.OrderItems,
		Status:          models.OrderStatusPending,
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil, nil
}

func (s *OrderService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	query := s.db.Model(&models.Order{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	allowedSortFields := []string{"created_at", "total_amount", "customer_name", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// normalizeScalar turns a loosely-typed payload value into its string
// form. Whole JSON numbers print without a decimal point so a numeric
// phone survives the round trip.
func normalizeScalar(v interface{}) string {
	switch value := v.(type) {
	case nil:
		return ""
	case string:
		return value
	case json.Number:
		return value.String()
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		return strconv.Itoa(value)
	default:
		return fmt.Sprint(value)
	}
}

func parseAmount(v interface{}) (float64, error) {
	switch value := v.(type) {
	case float64:
		return value, nil
	case json.Number:
		return value.Float64()
	case string:
		return strconv.ParseFloat(value, 64)
	case int:
		return float64(value), nil
	default:
		return 0, fmt.Errorf("not a number: %v", v)
	}
}

func hasKeys(item map[string]interface{}, keys ...string) bool {
	for _, key := range keys {
		if _, ok := item[key]; !ok {
			return false
		}
	}
	return true
}
