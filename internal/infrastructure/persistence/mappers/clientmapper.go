// Package mappers converts between domain entities and persistence models.
package mappers

import (
	"clientsolve/internal/domain/client"
	"clientsolve/internal/infrastructure/persistence/models"
)

// ClientMapper handles the conversion between Client domain entities and
// persistence models.
type ClientMapper interface {
	ToModel(c *client.Client) *models.ClientModel
	ToDomain(model *models.ClientModel) (*client.Client, error)
}

type ClientMapperImpl struct{}

func NewClientMapper() ClientMapper {
	return &ClientMapperImpl{}
}

func (m *ClientMapperImpl) ToModel(c *client.Client) *models.ClientModel {
	return &models.ClientModel{
		ID:          c.ID(),
		CompanyName: c.CompanyName(),
		ContactName: c.ContactName(),
		Email:       c.Email(),
		Phone:       c.Phone(),
		Address:     c.Address(),
		Siret:       c.Siret(),
		IBAN:        c.IBAN(),
		BIC:         c.BIC(),
		Active:      c.Active(),
	}
}

func (m *ClientMapperImpl) ToDomain(model *models.ClientModel) (*client.Client, error) {
	return client.ReconstructClient(
		model.ID,
		model.CompanyName,
		model.ContactName,
		model.Email,
		model.Phone,
		model.Address,
		model.Siret,
		model.IBAN,
		model.BIC,
		model.Active,
	)
}
