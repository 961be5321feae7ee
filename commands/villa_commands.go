package commands

import (
	"context"

	"villadash/constants"
	"villadash/models"
)

// VillaAPI is the part of the API client villa commands need.
type VillaAPI interface {
	CreateVilla(ctx context.Context, villa models.Villa) (*models.Villa, error)
	UpdateVilla(ctx context.Context, villa models.Villa) (*models.Villa, error)
	PatchVilla(ctx context.Context, id uint, fields map[string]interface{}) (*models.Villa, error)
	DeleteVilla(ctx context.Context, id uint) error
}

type CreateVillaCommand struct {
	villa  models.Villa
	api    VillaAPI
	Result *models.Villa
}

func NewCreateVillaCommand(villa models.Villa, api VillaAPI) *CreateVillaCommand {
	return &CreateVillaCommand{villa: villa, api: api}
}

func (c *CreateVillaCommand) Execute(ctx context.Context) error {
	created, err := c.api.CreateVilla(ctx, c.villa)
	if err != nil {
		return err
	}
	c.Result = created
	return nil
}

func (c *CreateVillaCommand) Touches() []string {
	return []string{constants.CacheVillas}
}

type UpdateVillaCommand struct {
	villa  models.Villa
	api    VillaAPI
	Result *models.Villa
}

func NewUpdateVillaCommand(villa models.Villa, api VillaAPI) *UpdateVillaCommand {
	return &UpdateVillaCommand{villa: villa, api: api}
}

func (c *UpdateVillaCommand) Execute(ctx context.Context) error {
	updated, err := c.api.UpdateVilla(ctx, c.villa)
	if err != nil {
		return err
	}
	c.Result = updated
	return nil
}

func (c *UpdateVillaCommand) Touches() []string {
	return []string{constants.CacheVillas}
}

// PatchVillaCommand updates selected fields, e.g. the image after an upload.
type PatchVillaCommand struct {
	id     uint
	fields map[string]interface{}
	api    VillaAPI
	Result *models.Villa
}

func NewPatchVillaCommand(id uint, fields map[string]interface{}, api VillaAPI) *PatchVillaCommand {
	return &PatchVillaCommand{id: id, fields: fields, api: api}
}

func (c *PatchVillaCommand) Execute(ctx context.Context) error {
	updated, err := c.api.PatchVilla(ctx, c.id, c.fields)
	if err != nil {
		return err
	}
	c.Result = updated
	return nil
}

func (c *PatchVillaCommand) Touches() []string {
	return []string{constants.CacheVillas}
}

// DeleteVillaCommand also invalidates bookings, which the API removes with the villa.
type DeleteVillaCommand struct {
	id  uint
	api VillaAPI
}

func NewDeleteVillaCommand(id uint, api VillaAPI) *DeleteVillaCommand {
	return &DeleteVillaCommand{id: id, api: api}
}

func (c *DeleteVillaCommand) Execute(ctx context.Context) error {
	return c.api.DeleteVilla(ctx, c.id)
}

func (c *DeleteVillaCommand) Touches() []string {
	return []string{constants.CacheVillas, constants.CacheBookings}
}
