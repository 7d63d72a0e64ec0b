package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingserrors "wanderbook/internal/bookings/errors"
	"wanderbook/internal/bookings/repository"
	"wanderbook/internal/bookings/validator"
	"wanderbook/pkg/config"
	apperrors "wanderbook/pkg/errors"
	"wanderbook/pkg/model"
	"wanderbook/pkg/sanitizer"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService interface {
	Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context) ([]*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error)
	Delete(ctx context.Context, id string) error
}

// Notifier hands a new booking to the confirmation pipeline without waiting
// for delivery.
type Notifier interface {
	Dispatch(booking *model.Booking)
}

type bookingService struct {
	repo      repository.BookingRepository
	validator *validator.BookingValidator
	notifier  Notifier
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	validator *validator.BookingValidator,
	notifier Notifier,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		validator: validator,
		notifier:  notifier,
		cfg:       cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, input *model.BookingInput) (*model.Booking, error) {
	s.sanitize(input)
	booking, err := s.build(input)
	if err != nil {
		return nil, err
	}

	// The submitted total is stored as sent. A mismatch is only reported.
	if sum := model.SnapshotTotal(booking.SelectedOptions); !sum.Equal(input.TotalPrice.Decimal) {
		s.cfg.Log.Warn("Booking total does not match selected options",
			"customer_email", booking.Email,
			"submitted_total", input.TotalPrice.Decimal.String(),
			"options_total", sum.String(),
		)
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		s.cfg.Log.Error("Failed to create booking", "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.cfg.Log.Info("Booking created successfully",
		"id", booking.ID,
		"travel_date", booking.TravelDate,
		"options", len(booking.SelectedOptions),
		"total_price", booking.TotalPrice,
	)

	if s.notifier != nil {
		s.notifier.Dispatch(booking)
	}
	return booking, nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.mapRepoError(err, id, "Failed to retrieve booking")
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context) ([]*model.Booking, error) {
	bookings, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings", "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}
	return bookings, nil
}

// UpdateStatus checks the id, then the status value, then existence. Any
// status may replace any other; replacing a decided booking is only logged.
func (s *bookingService) UpdateStatus(ctx context.Context, id string, status string) (*model.Booking, error) {
	if !primitive.IsValidObjectID(id) {
		return nil, apperrors.InvalidID("booking", id)
	}

	newStatus := model.BookingStatus(sanitizer.TrimAndNormalize(status))
	if !newStatus.IsValid() {
		return nil, apperrors.Validation("Invalid status value", map[string]any{
			"status":  status,
			"allowed": []model.BookingStatus{model.BookingPending, model.BookingApproved, model.BookingRejected},
		})
	}

	updatedAt := time.Now().UTC().Truncate(time.Millisecond)
	previous, err := s.repo.UpdateStatus(ctx, id, newStatus, updatedAt)
	if err != nil {
		return nil, s.mapRepoError(err, id, "Failed to update booking status")
	}

	if previous.Status.IsTerminal() && previous.Status != newStatus {
		s.cfg.Log.Warn("Decided booking status overwritten",
			"id", id,
			"previous_status", previous.Status,
			"new_status", newStatus,
		)
	}

	updated := *previous
	updated.Status = newStatus
	updated.UpdatedAt = updatedAt

	s.cfg.Log.Info("Booking status updated",
		"id", id,
		"previous_status", previous.Status,
		"status", newStatus,
	)
	return &updated, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return s.mapRepoError(err, id, "Failed to delete booking")
	}

	s.cfg.Log.Info("Booking deleted", "id", id)
	return nil
}

func (s *bookingService) sanitize(input *model.BookingInput) {
	input.CustomerName = sanitizer.NormalizeName(input.CustomerName)
	input.Email = sanitizer.NormalizeEmail(input.Email)
	// Phone numbers are stored as submitted unless a region is configured.
	if s.cfg.DefaultPhoneRegion != "" {
		input.PhoneNumber = sanitizer.NormalizePhone(input.PhoneNumber, s.cfg.DefaultPhoneRegion)
	} else {
		input.PhoneNumber = sanitizer.TrimAndNormalize(input.PhoneNumber)
	}
	input.TravelDate = sanitizer.TrimAndNormalize(input.TravelDate)
	if input.AdditionalNotes != nil {
		notes := sanitizer.NormalizeText(*input.AdditionalNotes)
		input.AdditionalNotes = &notes
	}
}

func (s *bookingService) build(input *model.BookingInput) (*model.Booking, error) {
	if err := s.validator.Validate(input); err != nil {
		return nil, s.validationError(err)
	}

	travelDate, err := validator.ParseTravelDate(input.TravelDate)
	if err != nil {
		return nil, s.validationError(err)
	}

	notes := ""
	if input.AdditionalNotes != nil {
		notes = *input.AdditionalNotes
	}

	total, _ := input.TotalPrice.Decimal.Float64()

	selected, err := snapshotSelections(input.SelectedOptions)
	if err != nil {
		return nil, s.validationError(err)
	}

	return &model.Booking{
		CustomerName:    input.CustomerName,
		Email:           input.Email,
		PhoneNumber:     input.PhoneNumber,
		TravelDate:      travelDate,
		AdditionalNotes: notes,
		SelectedOptions: selected,
		TotalPrice:      total,
		Status:          model.BookingPending,
	}, nil
}

// snapshotSelections copies the submitted selections under their normalized
// category names. Two keys that normalize to the same category are rejected
// so no selection is dropped.
func snapshotSelections(in map[string]model.OptionSnapshotInput) (map[string]model.OptionSnapshot, error) {
	selected := make(map[string]model.OptionSnapshot, len(in))
	submitted := make(map[string]string, len(in))
	for key, snap := range in {
		category := sanitizer.NormalizeCategoryName(key)
		if other, dup := submitted[category]; dup {
			return nil, validator.ValidationErrors{{
				Field:   "selectedOptions",
				Message: fmt.Sprintf("selections %q and %q are the same category", other, key),
			}}
		}
		submitted[category] = key
		price, _ := snap.Price.Decimal.Float64()
		selected[category] = model.OptionSnapshot{
			ID:    snap.ID,
			Name:  snap.Name,
			Price: price,
		}
	}
	return selected, nil
}

func (s *bookingService) validationError(err error) error {
	s.cfg.Log.Warn("Booking validation failed", "error", err)

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		message := "Invalid booking"
		if verrs.Missing() {
			message = "Missing required fields"
		}
		return apperrors.Validation(message, map[string]any{
			"fields": verrs,
		})
	}
	return apperrors.Validation("Invalid booking", map[string]any{
		"error": err.Error(),
	})
}

func (s *bookingService) mapRepoError(err error, id, message string) error {
	if errors.Is(err, bookingserrors.ErrInvalidID) {
		return apperrors.InvalidID("booking", id)
	}
	if errors.Is(err, bookingserrors.ErrNotFound) {
		return apperrors.NotFoundWithID("Booking", id)
	}
	s.cfg.Log.Error(message, "id", id, "error", err)
	return apperrors.Internal(message, fmt.Errorf("booking %s: %w", id, err))
}
