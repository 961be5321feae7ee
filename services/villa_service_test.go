package services

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"villadash/dto"
	"villadash/errors"
)

type stubUploader struct {
	folder string
	body   string
	err    error
}

func (u *stubUploader) Upload(ctx context.Context, file io.Reader, folder string) (string, error) {
	data, _ := io.ReadAll(file)
	u.folder, u.body = folder, string(data)
	if u.err != nil {
		return "", u.err
	}
	return "https://res.cloudinary.com/demo/villas/palm.jpg", nil
}

func TestUploadVillaImagePatchesVilla(t *testing.T) {
	api := newFakeAPI()
	store, _ := newTestStore(api)
	up := &stubUploader{}

	villa, err := NewMediaService(up, api, store).UploadVillaImage(context.Background(), 4, strings.NewReader("jpeg"))
	require.NoError(t, err)

	assert.Equal(t, "villas", up.folder)
	assert.Equal(t, "jpeg", up.body)
	assert.Equal(t, "https://res.cloudinary.com/demo/villas/palm.jpg", villa.Image)
	assert.Equal(t, villa.Image, api.patched[4]["image"])
}

func TestUploadVillaImageWithoutUploader(t *testing.T) {
	api := newFakeAPI()
	store, _ := newTestStore(api)

	_, err := NewMediaService(nil, api, store).UploadVillaImage(context.Background(), 4, strings.NewReader("x"))
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidOperation))
	assert.Zero(t, api.count("PatchVilla"))
}

func TestVillaServiceValidatesBeforeSending(t *testing.T) {
	api := newFakeAPI()
	store, _ := newTestStore(api)
	svc := NewVillaService(api, store, &recordingNotifier{}, "sid-1")

	_, err := svc.Create(context.Background(), dto.VillaRequest{Name: "Palm Villa"})
	assert.True(t, errors.HasCode(err, errors.ErrCodeValidation))
	assert.Zero(t, api.count("CreateVilla"))

	villa, err := svc.Create(context.Background(), dto.VillaRequest{
		Name: "Palm Villa", Location: "Goa", MaxGuests: 6, PricePerNight: 5000,
	})
	require.NoError(t, err)
	assert.Equal(t, uint(50), villa.ID)
	assert.Equal(t, "active", villa.Status)
	assert.Equal(t, 1, api.count("ListVillas"), "villa list refetched after the create")
}

func TestVillaServiceSpecialDay(t *testing.T) {
	api := newFakeAPI()
	store, _ := newTestStore(api)
	notifier := &recordingNotifier{}
	svc := NewVillaService(api, store, notifier, "sid-1")

	_, err := svc.CreateSpecialDay(context.Background(), dto.SpecialDayRequest{Name: "Bad", Day: 31, Month: 4})
	assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))

	day, err := svc.CreateSpecialDay(context.Background(), dto.SpecialDayRequest{Name: "Diwali", Day: 20, Month: 10})
	require.NoError(t, err)
	assert.Equal(t, "Diwali", day.Name)
	require.Len(t, notifier.toasts, 1)
	assert.Equal(t, "Global special day created!", notifier.toasts[0].Message)
}
