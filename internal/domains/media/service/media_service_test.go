package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"specialist-directory-backend/internal/domains/media/model"
)

type mockMediaRepo struct {
	mock.Mock
}

func (m *mockMediaRepo) Create(ctx context.Context, media *model.Media) (*model.Media, error) {
	args := m.Called(ctx, media)
	var created *model.Media
	if args.Get(0) != nil {
		created = args.Get(0).(*model.Media)
	}
	return created, args.Error(1)
}

func (m *mockMediaRepo) FindByID(ctx context.Context, id uuid.UUID) (*model.Media, error) {
	args := m.Called(ctx, id)
	var media *model.Media
	if args.Get(0) != nil {
		media = args.Get(0).(*model.Media)
	}
	return media, args.Error(1)
}

func (m *mockMediaRepo) DetachBySpecialistWithTx(ctx context.Context, tx pgx.Tx, specialistID uuid.UUID) error {
	args := m.Called(ctx, tx, specialistID)
	return args.Error(0)
}

func TestRegisterMedia(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns an id and persists the record", func(t *testing.T) {
		repo := new(mockMediaRepo)
		svc := NewMediaService(repo)

		specialistID := uuid.New()
		req := &model.RegisterMediaRequest{
			SpecialistID: &specialistID,
			FileName:     "logo.png",
			FileURL:      "https://cdn.example.com/logo.png",
			FileType:     "image/png",
			MediaType:    string(model.MediaTypeLogo),
		}

		repo.On("Create", ctx, mock.MatchedBy(func(m *model.Media) bool {
			return m.ID != uuid.Nil &&
				m.FileName == "logo.png" &&
				m.MediaType == model.MediaTypeLogo &&
				m.SpecialistID != nil && *m.SpecialistID == specialistID
		})).Return(&model.Media{FileName: "logo.png"}, nil).Once()

		media, err := svc.RegisterMedia(ctx, req)

		assert.NoError(t, err)
		assert.Equal(t, "logo.png", media.FileName)
		repo.AssertExpectations(t)
	})

	t.Run("propagates storage errors", func(t *testing.T) {
		repo := new(mockMediaRepo)
		svc := NewMediaService(repo)

		repo.On("Create", ctx, mock.Anything).Return(nil, errors.New("insert failed")).Once()

		media, err := svc.RegisterMedia(ctx, &model.RegisterMediaRequest{
			FileName: "doc.pdf", FileURL: "https://cdn.example.com/doc.pdf",
			FileType: "application/pdf", MediaType: string(model.MediaTypeDocument),
		})

		assert.Nil(t, media)
		assert.Error(t, err)
		repo.AssertExpectations(t)
	})
}

func TestGetMediaByID(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the record", func(t *testing.T) {
		repo := new(mockMediaRepo)
		svc := NewMediaService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(&model.Media{ID: id, FileName: "logo.png"}, nil).Once()

		media, err := svc.GetMediaByID(ctx, id)

		assert.NoError(t, err)
		assert.Equal(t, "logo.png", media.FileName)
		repo.AssertExpectations(t)
	})

	t.Run("returns not found for unknown id", func(t *testing.T) {
		repo := new(mockMediaRepo)
		svc := NewMediaService(repo)

		id := uuid.New()
		repo.On("FindByID", ctx, id).Return(nil, nil).Once()

		media, err := svc.GetMediaByID(ctx, id)

		assert.Nil(t, media)
		assert.ErrorIs(t, err, model.ErrMediaNotFound)
		repo.AssertExpectations(t)
	})
}
