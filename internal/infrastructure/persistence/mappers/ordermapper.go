package mappers

import (
	"encoding/json"
	"fmt"

	"wagate/internal/domain/order"
	vo "wagate/internal/domain/order/valueobjects"
	"wagate/internal/infrastructure/persistence/models"
)

func OrderToModel(o *order.Order) (*models.OrderModel, error) {
	items := make([]models.ItemJSON, 0, len(o.Items()))
	for _, item := range o.Items() {
		attrs := make([]models.AttributeJSON, 0, len(item.Attributes))
		for _, a := range item.Attributes {
			attrs = append(attrs, models.AttributeJSON{Key: a.Key, Value: a.Value})
		}
		items = append(items, models.ItemJSON{
			ProductID:  item.ProductID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			LineTotal:  item.LineTotal.Amount(),
			Attributes: attrs,
			Metadata:   item.Metadata,
		})
	}

	itemsJSON, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order items: %w", err)
	}

	notesJSON, err := json.Marshal(o.Notes())
	if err != nil {
		return nil, fmt.Errorf("failed to marshal order notes: %w", err)
	}

	billing := o.Billing()
	var msg *string
	if m, ok := o.WhatsAppMessage(); ok {
		msg = &m
	}

	return &models.OrderModel{
		ID:               o.ID(),
		OrderNumber:      o.OrderNumber(),
		Status:           o.Status().String(),
		Items:            itemsJSON,
		TotalAmount:      o.Total().Amount(),
		Currency:         o.Total().Currency(),
		BillingFirstName: billing.FirstName,
		BillingLastName:  billing.LastName,
		BillingEmail:     billing.Email,
		BillingPhone:     billing.Phone,
		BillingAddress:   billing.Address,
		BillingCity:      billing.City,
		BillingState:     billing.State,
		BillingPostcode:  billing.Postcode,
		PaymentMethod:    o.PaymentMethod(),
		WhatsAppMessage:  msg,
		Notes:            notesJSON,
		Version:          o.Version(),
		CreatedAt:        o.CreatedAt(),
		UpdatedAt:        o.UpdatedAt(),
	}, nil
}

func OrderToDomain(model *models.OrderModel) (*order.Order, error) {
	status := vo.Status(model.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid order status: %s", model.Status)
	}

	var itemsJSON []models.ItemJSON
	if len(model.Items) > 0 {
		if err := json.Unmarshal(model.Items, &itemsJSON); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order items: %w", err)
		}
	}

	items := make([]order.Item, 0, len(itemsJSON))
	for _, ij := range itemsJSON {
		attrs := make([]order.Attribute, 0, len(ij.Attributes))
		for _, a := range ij.Attributes {
			attrs = append(attrs, order.Attribute{Key: a.Key, Value: a.Value})
		}
		items = append(items, order.Item{
			ProductID:  ij.ProductID,
			Name:       ij.Name,
			Quantity:   ij.Quantity,
			LineTotal:  vo.NewMoney(ij.LineTotal, model.Currency),
			Attributes: attrs,
			Metadata:   ij.Metadata,
		})
	}

	var notes []string
	if len(model.Notes) > 0 {
		if err := json.Unmarshal(model.Notes, &notes); err != nil {
			return nil, fmt.Errorf("failed to unmarshal order notes: %w", err)
		}
	}

	return order.Reconstruct(order.ReconstructParams{
		ID:          model.ID,
		OrderNumber: model.OrderNumber,
		Status:      status,
		Items:       items,
		Total:       vo.NewMoney(model.TotalAmount, model.Currency),
		Billing: vo.BillingContact{
			FirstName: model.BillingFirstName,
			LastName:  model.BillingLastName,
			Email:     model.BillingEmail,
			Phone:     model.BillingPhone,
			Address:   model.BillingAddress,
			City:      model.BillingCity,
			State:     model.BillingState,
			Postcode:  model.BillingPostcode,
		},
		PaymentMethod:   model.PaymentMethod,
		WhatsAppMessage: model.WhatsAppMessage,
		Notes:           notes,
		Version:         model.Version,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}), nil
}
