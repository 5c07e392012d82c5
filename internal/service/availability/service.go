package availability

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	availabilityRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/availability"
	blockoutRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/blockout"
	"github.com/m04kA/SMC-SalonBooking/internal/service/availability/models"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

// Service сервис управления рабочим временем мастера
type Service struct {
	availabilityRepo AvailabilityRepository
	blockoutRepo     BlockoutRepository
	txManager        TransactionManager
	location         *time.Location
	logger           Logger
	timeProvider     TimeProvider
}

// NewService создает новый экземпляр сервиса доступности
func NewService(
	availabilityRepo AvailabilityRepository,
	blockoutRepo BlockoutRepository,
	txManager TransactionManager,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		availabilityRepo: availabilityRepo,
		blockoutRepo:     blockoutRepo,
		txManager:        txManager,
		location:         location,
		logger:           logger,
		timeProvider:     &RealTimeProvider{},
	}
}

// ListRules возвращает неделю мастера
func (s *Service) ListRules(ctx context.Context, identity domain.Identity) (*models.WeeklyAvailabilityResponse, error) {
	s.logger.Info("ListRules: fetching rules for professional=%s", identity.UserID)

	if err := checkProfessional(identity); err != nil {
		s.logger.Warn("ListRules: access denied for user=%s role=%s", identity.UserID, identity.Role)
		return nil, err
	}

	rules, err := s.availabilityRepo.GetByProfessional(ctx, identity.UserID)
	if err != nil {
		s.logger.Error("ListRules: repository error for professional=%s: %v", identity.UserID, err)
		return nil, fmt.Errorf("%w: ListRules - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainRules(identity.UserID, rules), nil
}

// ReplaceDay заменяет все интервалы дня недели. Пустой список закрывает день.
func (s *Service) ReplaceDay(ctx context.Context, req *models.ReplaceDayRequest) (*models.DayAvailability, error) {
	s.logger.Info("ReplaceDay: professional=%s weekday=%d ranges=%d", req.Identity.UserID, req.Weekday, len(req.Ranges))

	if err := checkProfessional(req.Identity); err != nil {
		s.logger.Warn("ReplaceDay: access denied for user=%s role=%s", req.Identity.UserID, req.Identity.Role)
		return nil, err
	}

	if req.Weekday < int(time.Sunday) || req.Weekday > int(time.Saturday) {
		return nil, fmt.Errorf("%w: weekday must be between 0 and 6", ErrInvalidInput)
	}
	weekday := time.Weekday(req.Weekday)

	ranges, err := parseRanges(req.Ranges)
	if err != nil {
		s.logger.Warn("ReplaceDay: invalid ranges for professional=%s: %v", req.Identity.UserID, err)
		return nil, err
	}

	var rules []*domain.AvailabilityRule
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		var txErr error
		rules, txErr = s.availabilityRepo.ReplaceDay(ctx, req.Identity.UserID, weekday, ranges)
		return txErr
	})
	if err != nil {
		if errors.Is(err, availabilityRepo.ErrOverlappingRules) {
			s.logger.Warn("ReplaceDay: overlapping rules for professional=%s weekday=%d", req.Identity.UserID, weekday)
			return nil, ErrOverlappingRanges
		}
		s.logger.Error("ReplaceDay: failed for professional=%s weekday=%d: %v", req.Identity.UserID, weekday, err)
		return nil, fmt.Errorf("%w: ReplaceDay - repository error: %w", ErrInternal, err)
	}

	day := models.FromDomainDay(weekday, rules)
	s.logger.Info("ReplaceDay: professional=%s weekday=%d now has %d ranges", req.Identity.UserID, weekday, len(day.Ranges))
	return &day, nil
}

// CreateBlockout закрывает дату для записи
func (s *Service) CreateBlockout(ctx context.Context, req *models.CreateBlockoutRequest) (*models.BlockoutResponse, error) {
	s.logger.Info("CreateBlockout: professional=%s date=%s", req.Identity.UserID, req.Date.Format(domain.DateFormat))

	if err := checkProfessional(req.Identity); err != nil {
		return nil, err
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	date := domain.DateOf(req.Date)
	today := domain.DateOf(s.timeProvider.Now().In(s.location))
	if date.Before(today) {
		return nil, fmt.Errorf("%w: date is in the past", ErrInvalidInput)
	}
	if req.Reason != nil && len(*req.Reason) > domain.MaxBlockoutReasonLength {
		return nil, fmt.Errorf("%w: reason exceeds %d characters", ErrInvalidInput, domain.MaxBlockoutReasonLength)
	}

	created, err := s.blockoutRepo.Create(ctx, &domain.Blockout{
		ProfessionalID: req.Identity.UserID,
		Date:           date,
		Reason:         req.Reason,
	})
	if err != nil {
		if errors.Is(err, blockoutRepo.ErrDuplicateBlockout) {
			s.logger.Warn("CreateBlockout: date=%s already blocked for professional=%s", date.Format(domain.DateFormat), req.Identity.UserID)
			return nil, ErrBlockoutExists
		}
		s.logger.Error("CreateBlockout: repository error for professional=%s: %v", req.Identity.UserID, err)
		return nil, fmt.Errorf("%w: CreateBlockout - repository error: %w", ErrInternal, err)
	}

	s.logger.Info("CreateBlockout: created blockout id=%d", created.ID)
	return models.FromDomainBlockout(created), nil
}

// ListBlockouts возвращает закрытые дни за период. Границы необязательны.
func (s *Service) ListBlockouts(ctx context.Context, req *models.ListBlockoutsRequest) (*models.BlockoutListResponse, error) {
	if err := checkProfessional(req.Identity); err != nil {
		return nil, err
	}

	var from, to time.Time
	if req.From != nil {
		from = domain.DateOf(*req.From)
	}
	if req.To != nil {
		to = domain.DateOf(*req.To)
	}
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return nil, fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
	}

	blockouts, err := s.blockoutRepo.GetByProfessional(ctx, req.Identity.UserID, from, to)
	if err != nil {
		s.logger.Error("ListBlockouts: repository error for professional=%s: %v", req.Identity.UserID, err)
		return nil, fmt.Errorf("%w: ListBlockouts - repository error: %w", ErrInternal, err)
	}

	return models.FromDomainBlockoutList(blockouts), nil
}

// DeleteBlockout снова открывает закрытый день
func (s *Service) DeleteBlockout(ctx context.Context, identity domain.Identity, id int64) error {
	s.logger.Info("DeleteBlockout: professional=%s id=%d", identity.UserID, id)

	if err := checkProfessional(identity); err != nil {
		return err
	}
	if id <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if err := s.blockoutRepo.Delete(ctx, identity.UserID, id); err != nil {
		if errors.Is(err, blockoutRepo.ErrBlockoutNotFound) {
			return ErrBlockoutNotFound
		}
		s.logger.Error("DeleteBlockout: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteBlockout - repository error: %w", ErrInternal, err)
	}

	return nil
}

func checkProfessional(identity domain.Identity) error {
	if identity.IsZero() {
		return ErrUnauthenticated
	}
	if !identity.IsProfessional() {
		return ErrAccessDenied
	}
	return nil
}

// parseRanges проверяет формат, порядок концов и отсутствие пересечений.
// Соседние интервалы (10:00-12:00, 12:00-14:00) допустимы.
func parseRanges(in []models.TimeRange) ([]domain.TimeRange, error) {
	ranges := make([]domain.TimeRange, 0, len(in))
	for _, r := range in {
		start, err := types.NewTimeStringFromString(r.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid start time %q", ErrInvalidInput, r.Start)
		}
		end, err := types.NewTimeStringFromString(r.End)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid end time %q", ErrInvalidInput, r.End)
		}
		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: start %s must be before end %s", ErrInvalidInput, start, end)
		}
		ranges = append(ranges, domain.TimeRange{Start: start, End: end})
	}

	sort.Slice(ranges, func(i, j int) bool {
		return ranges[i].Start.IsBefore(ranges[j].Start)
	})
	for i := 1; i < len(ranges); i++ {
		if ranges[i].Start.IsBefore(ranges[i-1].End) {
			return nil, ErrOverlappingRanges
		}
	}

	return ranges, nil
}
