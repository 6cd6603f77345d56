package client

import (
	"clientsolve/internal/application/client/usecases"
	"clientsolve/internal/domain/client"
)

type CreateClientRequest struct {
	CompanyName string `json:"company_name" binding:"required,max=200"`
	ContactName string `json:"contact_name" binding:"required,max=200"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Siret       string `json:"siret,omitempty"`
	IBAN        string `json:"iban,omitempty"`
	BIC         string `json:"bic,omitempty"`
}

func (r *CreateClientRequest) ToCommand() usecases.CreateClientCommand {
	return usecases.CreateClientCommand{
		CompanyName: r.CompanyName,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		Siret:       r.Siret,
		IBAN:        r.IBAN,
		BIC:         r.BIC,
	}
}

type UpdateClientRequest struct {
	CompanyName *string `json:"company_name,omitempty"`
	ContactName *string `json:"contact_name,omitempty"`
	Email       *string `json:"email,omitempty"`
	Phone       *string `json:"phone,omitempty"`
	Address     *string `json:"address,omitempty"`
	Siret       *string `json:"siret,omitempty"`
	IBAN        *string `json:"iban,omitempty"`
	BIC         *string `json:"bic,omitempty"`
}

func (r *UpdateClientRequest) ToCommand(clientID string) usecases.UpdateClientCommand {
	return usecases.UpdateClientCommand{
		ClientID:    clientID,
		CompanyName: r.CompanyName,
		ContactName: r.ContactName,
		Email:       r.Email,
		Phone:       r.Phone,
		Address:     r.Address,
		Siret:       r.Siret,
		IBAN:        r.IBAN,
		BIC:         r.BIC,
	}
}

type ClientResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"company_name"`
	ContactName string `json:"contact_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Address     string `json:"address,omitempty"`
	Siret       string `json:"siret,omitempty"`
	IBAN        string `json:"iban,omitempty"`
	BIC         string `json:"bic,omitempty"`
	Active      bool   `json:"active"`
}

func clientResponseFromEntity(entity *client.Client) ClientResponse {
	return ClientResponse{
		ID:          entity.ID(),
		CompanyName: entity.CompanyName(),
		ContactName: entity.ContactName(),
		Email:       entity.Email(),
		Phone:       entity.Phone(),
		Address:     entity.Address(),
		Siret:       entity.Siret(),
		IBAN:        entity.IBAN(),
		BIC:         entity.BIC(),
		Active:      entity.Active(),
	}
}

func clientResponsesFromEntities(entities []*client.Client) []ClientResponse {
	responses := make([]ClientResponse, 0, len(entities))
	for _, entity := range entities {
		responses = append(responses, clientResponseFromEntity(entity))
	}
	return responses
}
