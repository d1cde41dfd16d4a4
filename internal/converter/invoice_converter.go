package converter

import (
	"encoding/json"

	"medical-appointments-api/internal/delivery/dto"
	"medical-appointments-api/internal/domain/entity"
)

func InvoiceToResponse(invoice *entity.Invoice) *dto.InvoiceResponse {
	if invoice == nil {
		return nil
	}

	response := &dto.InvoiceResponse{
		ID:              invoice.ID,
		AppointmentID:   invoice.AppointmentID,
		PaymentMethodID: invoice.PaymentMethodID,
		Amount:          json.Number(invoice.Amount.StringFixed(2)),
		IssuedAt:        invoice.IssuedAt,
		Status:          string(invoice.Status),
		Notes:           invoice.Notes,
	}

	if invoice.PaymentMethod != nil {
		response.PaymentMethodName = invoice.PaymentMethod.Name
	}

	return response
}

func InvoicesToResponses(invoices []entity.Invoice) []dto.InvoiceResponse {
	responses := make([]dto.InvoiceResponse, len(invoices))
	for i, invoice := range invoices {
		responses[i] = *InvoiceToResponse(&invoice)
	}
	return responses
}

func PaymentMethodToResponse(method *entity.PaymentMethod) *dto.PaymentMethodResponse {
	if method == nil {
		return nil
	}

	return &dto.PaymentMethodResponse{
		ID:          method.ID,
		Name:        method.Name,
		Description: method.Description,
		Active:      method.Active,
	}
}

func PaymentMethodsToResponses(methods []entity.PaymentMethod) []dto.PaymentMethodResponse {
	responses := make([]dto.PaymentMethodResponse, len(methods))
	for i, method := range methods {
		responses[i] = *PaymentMethodToResponse(&method)
	}
	return responses
}
