package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog/log"

	mediarepo "specialist-directory-backend/internal/domains/media/repository"
	"specialist-directory-backend/internal/domains/specialist/model"
	"specialist-directory-backend/internal/domains/specialist/repository"
	"specialist-directory-backend/pkg/cache"
	"specialist-directory-backend/pkg/database"
)

const (
	aggregateCacheTTL = 5 * time.Minute
	listingCacheTTL   = time.Minute

	listingKeyPattern = "specialists:list:*"
)

// specialistService owns the specialist aggregate: the specialist row and
// its service offering collection form one consistency boundary, mutated
// only through this service and always inside a single transaction.
type specialistService struct {
	repo      repository.RepositoryInterface
	mediaRepo mediarepo.RepositoryInterface
	tx        database.TxManager
	cache     cache.Cache
}

func NewSpecialistService(
	repo repository.RepositoryInterface,
	mediaRepo mediarepo.RepositoryInterface,
	tx database.TxManager,
	cache cache.Cache,
) ServiceInterface {
	return &specialistService{
		repo:      repo,
		mediaRepo: mediaRepo,
		tx:        tx,
		cache:     cache,
	}
}

func aggregateCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("specialist:%s", id)
}

func listingCacheKey(q model.ListSpecialistsQuery) string {
	return fmt.Sprintf("specialists:list:p=%d:l=%d:st=%s:q=%s:sb=%s:so=%s",
		q.Page, q.Limit, q.Status, q.Search, q.SortBy, q.SortOrder)
}

func (s *specialistService) ListSpecialists(ctx context.Context, query model.ListSpecialistsQuery) (*model.ListResult, error) {
	key := listingCacheKey(query)

	var cached model.ListResult
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Msg("Listing cache read failed")
	} else if found {
		return &cached, nil
	}

	specialists, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, err
	}

	result := &model.ListResult{
		Specialists: specialists,
		Meta:        model.NewPageMeta(query.Page, query.Limit, total),
	}
	if result.Specialists == nil {
		result.Specialists = []*model.Specialist{}
	}

	if err := s.cache.Set(ctx, key, result, listingCacheTTL); err != nil {
		log.Warn().Err(err).Msg("Listing cache write failed")
	}

	return result, nil
}

// ListPublicSpecialists forces the published filter; this is the only
// visibility boundary between administrative and public consumers.
func (s *specialistService) ListPublicSpecialists(ctx context.Context, query model.ListSpecialistsQuery) (*model.ListResult, error) {
	query.Status = string(model.StatusPublished)
	return s.ListSpecialists(ctx, query)
}

func (s *specialistService) GetSpecialistByID(ctx context.Context, id uuid.UUID) (*model.Specialist, error) {
	key := aggregateCacheKey(id)

	var cached model.Specialist
	if found, err := s.cache.Get(ctx, key, &cached); err != nil {
		log.Warn().Err(err).Msg("Aggregate cache read failed")
	} else if found {
		return &cached, nil
	}

	specialist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if specialist == nil {
		return nil, model.ErrSpecialistNotFound
	}

	if err := s.cache.Set(ctx, key, specialist, aggregateCacheTTL); err != nil {
		log.Warn().Err(err).Msg("Aggregate cache write failed")
	}

	return specialist, nil
}

// CreateSpecialist persists a new specialist with its offerings as one unit
// of work. Status is always draft on creation, whatever the caller sent.
func (s *specialistService) CreateSpecialist(ctx context.Context, req *model.CreateSpecialistRequest) (*model.Specialist, error) {
	existing, err := s.repo.FindByEmail(ctx, req.ContactEmail)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrEmailAlreadyExists
	}

	specialist := &model.Specialist{
		ID:           uuid.New(),
		Name:         req.Name,
		Description:  req.Description,
		Status:       model.StatusDraft,
		ContactEmail: req.ContactEmail,
		ContactPhone: req.ContactPhone,
		WebsiteURL:   req.WebsiteURL,
		LogoID:       req.LogoID,
	}

	err = s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.CreateWithTx(ctx, tx, specialist); err != nil {
			return err
		}

		for _, input := range req.ServiceOfferings {
			offering := &model.ServiceOffering{
				ID:            uuid.New(),
				SpecialistID:  specialist.ID,
				ServiceName:   input.ServiceName,
				ServiceType:   input.ServiceType,
				Description:   input.Description,
				PlatformFeeID: input.PlatformFeeID,
			}
			if err := s.repo.CreateOfferingWithTx(ctx, tx, offering); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, specialist.ID)
	return s.reload(ctx, specialist.ID)
}

// UpdateSpecialist applies a sparse patch to the aggregate. Scalar fields
// merge field by field; when the patch carries a service_offerings list,
// the persisted collection is reconciled against it wholesale. Everything
// runs in one transaction against the snapshot read at the start.
func (s *specialistService) UpdateSpecialist(ctx context.Context, id uuid.UUID, req *model.UpdateSpecialistRequest) (*model.Specialist, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, model.ErrSpecialistNotFound
	}

	if req.ContactEmail != nil && *req.ContactEmail != current.ContactEmail {
		existing, err := s.repo.FindByEmail(ctx, *req.ContactEmail)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, model.ErrEmailAlreadyExists
		}
	}

	req.ApplyTo(current)

	var work offeringWorkList
	if req.ServiceOfferings != nil {
		work = diffOfferings(current.ServiceOfferings, req.ServiceOfferings)
	}

	currentByID := make(map[uuid.UUID]model.ServiceOffering, len(current.ServiceOfferings))
	for _, o := range current.ServiceOfferings {
		currentByID[o.ID] = o
	}

	err = s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.UpdateWithTx(ctx, tx, current); err != nil {
			return err
		}

		if req.ServiceOfferings == nil {
			return nil
		}

		if err := s.repo.DeleteOfferingsWithTx(ctx, tx, work.toDelete); err != nil {
			return err
		}

		for _, patch := range work.toUpdate {
			existing, ok := currentByID[*patch.ID]
			if !ok {
				// Unknown id: the scoped UPDATE below matches no row, so
				// the item is a no-op rather than a cross-aggregate write.
				existing = model.ServiceOffering{ID: *patch.ID, SpecialistID: id}
			}
			merged := patch.Merge(existing)
			merged.SpecialistID = id
			if err := s.repo.UpdateOfferingWithTx(ctx, tx, &merged); err != nil {
				return err
			}
		}

		for _, patch := range work.toCreate {
			offering := &model.ServiceOffering{
				ID:            uuid.New(),
				SpecialistID:  id,
				ServiceName:   patch.ServiceName,
				ServiceType:   patch.ServiceType,
				Description:   patch.Description,
				PlatformFeeID: patch.PlatformFeeID,
			}
			if err := s.repo.CreateOfferingWithTx(ctx, tx, offering); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return s.reload(ctx, id)
}

// PublishSpecialist sets the status to an explicit target. published_at is
// stamped on the first transition to published and never cleared; moving
// back to draft or republishing leaves it untouched.
func (s *specialistService) PublishSpecialist(ctx context.Context, id uuid.UUID, status model.SpecialistStatus) (*model.Specialist, error) {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, model.ErrSpecialistNotFound
	}

	current.Status = status
	if status == model.StatusPublished && current.PublishedAt == nil {
		now := time.Now()
		current.PublishedAt = &now
	}

	err = s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		return s.repo.UpdateWithTx(ctx, tx, current)
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, id)
	return s.reload(ctx, id)
}

// DeleteSpecialist removes the aggregate: offerings cascade, media rows are
// detached but kept.
func (s *specialistService) DeleteSpecialist(ctx context.Context, id uuid.UUID) error {
	current, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if current == nil {
		return model.ErrSpecialistNotFound
	}

	err = s.tx.WithTx(ctx, func(tx pgx.Tx) error {
		if err := s.repo.DeleteOfferingsBySpecialistWithTx(ctx, tx, id); err != nil {
			return err
		}
		if err := s.mediaRepo.DetachBySpecialistWithTx(ctx, tx, id); err != nil {
			return err
		}
		return s.repo.DeleteWithTx(ctx, tx, id)
	})
	if err != nil {
		return err
	}

	s.invalidate(ctx, id)
	return nil
}

// reload re-reads the aggregate so callers always observe post-mutation
// state, generated identifiers and timestamps included.
func (s *specialistService) reload(ctx context.Context, id uuid.UUID) (*model.Specialist, error) {
	specialist, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if specialist == nil {
		return nil, model.ErrSpecialistNotFound
	}

	if err := s.cache.Set(ctx, aggregateCacheKey(id), specialist, aggregateCacheTTL); err != nil {
		log.Warn().Err(err).Msg("Aggregate cache write failed")
	}

	return specialist, nil
}

// invalidate drops the cached aggregate and every cached listing page.
// Cache failures are logged, never surfaced: the database already holds
// the committed truth.
func (s *specialistService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, aggregateCacheKey(id)); err != nil {
		log.Warn().Err(err).Msg("Aggregate cache invalidation failed")
	}
	if err := s.cache.DeletePattern(ctx, listingKeyPattern); err != nil {
		log.Warn().Err(err).Msg("Listing cache invalidation failed")
	}
}
