package services

import (
	"context"

	"villadash/commands"
	"villadash/dto"
	"villadash/models"
	"villadash/services/notification"
	"villadash/validator"
)

// VillaService validates villa and special-day changes before sending them.
type VillaService struct {
	api interface {
		commands.VillaAPI
		commands.SpecialDayAPI
	}
	store     *DataStore
	notifier  notification.Service
	sessionID string
}

func NewVillaService(api interface {
	commands.VillaAPI
	commands.SpecialDayAPI
}, store *DataStore, notifier notification.Service, sessionID string) *VillaService {
	return &VillaService{api: api, store: store, notifier: notifier, sessionID: sessionID}
}

func (s *VillaService) Create(ctx context.Context, req dto.VillaRequest) (*models.Villa, error) {
	if err := validator.ValidateVilla(req); err != nil {
		return nil, err
	}
	cmd := commands.NewCreateVillaCommand(req.ToModel(0), s.api)
	if err := s.store.Execute(ctx, cmd); err != nil {
		return nil, err
	}
	s.toast(notification.ToastSuccess, "Villa created")
	return cmd.Result, nil
}

func (s *VillaService) Update(ctx context.Context, id uint, req dto.VillaRequest) (*models.Villa, error) {
	if err := validator.ValidateVilla(req); err != nil {
		return nil, err
	}
	cmd := commands.NewUpdateVillaCommand(req.ToModel(id), s.api)
	if err := s.store.Execute(ctx, cmd); err != nil {
		return nil, err
	}
	s.toast(notification.ToastSuccess, "Villa updated")
	return cmd.Result, nil
}

func (s *VillaService) Delete(ctx context.Context, id uint) error {
	if err := s.store.Execute(ctx, commands.NewDeleteVillaCommand(id, s.api)); err != nil {
		return err
	}
	s.toast(notification.ToastSuccess, "Villa deleted")
	return nil
}

func (s *VillaService) CreateSpecialDay(ctx context.Context, req dto.SpecialDayRequest) (*models.GlobalSpecialDay, error) {
	if err := validator.ValidateSpecialDay(req); err != nil {
		return nil, err
	}
	cmd := commands.NewCreateSpecialDayCommand(req, s.api)
	if err := s.store.Execute(ctx, cmd); err != nil {
		return nil, err
	}
	s.toast(notification.ToastSuccess, "Global special day created!")
	return cmd.Result, nil
}

func (s *VillaService) DeleteSpecialDay(ctx context.Context, id uint) error {
	return s.store.Execute(ctx, commands.NewDeleteSpecialDayCommand(id, s.api))
}

func (s *VillaService) toast(kind, message string) {
	if s.notifier != nil {
		_ = s.notifier.Notify(s.sessionID, notification.Toast{Type: kind, Message: message})
	}
}
