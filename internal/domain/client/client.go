// Package client holds the client company aggregate: the billing identity a
// support contract and its tickets and user accounts hang off.
package client

import (
	"fmt"

	"clientsolve/internal/shared/id"
)

type Client struct {
	id          string
	companyName string
	contactName string
	email       string
	phone       string
	address     string
	siret       string
	iban        string
	bic         string
	active      bool
}

// NewClient creates a client company. Contact name and email are required;
// the record is always created active regardless of caller input.
func NewClient(companyName, contactName, email, phone, address, siret, iban, bic string) (*Client, error) {
	if len(contactName) == 0 {
		return nil, fmt.Errorf("contact name is required")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}

	return &Client{
		id:          id.MustGenerateWithPrefix(id.PrefixClient, id.DefaultLength),
		companyName: companyName,
		contactName: contactName,
		email:       email,
		phone:       phone,
		address:     address,
		siret:       siret,
		iban:        iban,
		bic:         bic,
		active:      true,
	}, nil
}

// ReconstructClient rebuilds a client from persisted state.
func ReconstructClient(clientID, companyName, contactName, email, phone, address, siret, iban, bic string, active bool) (*Client, error) {
	if len(clientID) == 0 {
		return nil, fmt.Errorf("client ID is required")
	}

	return &Client{
		id:          clientID,
		companyName: companyName,
		contactName: contactName,
		email:       email,
		phone:       phone,
		address:     address,
		siret:       siret,
		iban:        iban,
		bic:         bic,
		active:      active,
	}, nil
}

func (c *Client) ID() string {
	return c.id
}

func (c *Client) CompanyName() string {
	return c.companyName
}

func (c *Client) ContactName() string {
	return c.contactName
}

func (c *Client) Email() string {
	return c.email
}

func (c *Client) Phone() string {
	return c.phone
}

func (c *Client) Address() string {
	return c.address
}

func (c *Client) Siret() string {
	return c.siret
}

func (c *Client) IBAN() string {
	return c.iban
}

func (c *Client) BIC() string {
	return c.bic
}

func (c *Client) Active() bool {
	return c.active
}

// Update holds a partial update: nil fields are left untouched.
type Update struct {
	CompanyName *string
	ContactName *string
	Email       *string
	Phone       *string
	Address     *string
	Siret       *string
	IBAN        *string
	BIC         *string
}

// Apply merges the supplied fields into the client. Unset fields keep their
// current values.
func (c *Client) Apply(u Update) error {
	if u.ContactName != nil && len(*u.ContactName) == 0 {
		return fmt.Errorf("contact name cannot be empty")
	}
	if u.Email != nil && len(*u.Email) == 0 {
		return fmt.Errorf("email cannot be empty")
	}

	if u.CompanyName != nil {
		c.companyName = *u.CompanyName
	}
	if u.ContactName != nil {
		c.contactName = *u.ContactName
	}
	if u.Email != nil {
		c.email = *u.Email
	}
	if u.Phone != nil {
		c.phone = *u.Phone
	}
	if u.Address != nil {
		c.address = *u.Address
	}
	if u.Siret != nil {
		c.siret = *u.Siret
	}
	if u.IBAN != nil {
		c.iban = *u.IBAN
	}
	if u.BIC != nil {
		c.bic = *u.BIC
	}

	return nil
}

// ToggleActive flips the active flag.
func (c *Client) ToggleActive() {
	c.active = !c.active
}
