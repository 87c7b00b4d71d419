package service

import (
	"context"
	"time"

	"github.com/visualapp/storefront-api/internal/errors"
	"github.com/visualapp/storefront-api/internal/models"
	repository "github.com/visualapp/storefront-api/internal/repositories"
	"github.com/visualapp/storefront-api/internal/utils"
	"github.com/google/uuid"
)

const birthDateLayout = "2006-01-02"

type ChildService interface {
	CreateChild(ctx context.Context, userID uuid.UUID, req *models.CreateChildRequest) (*models.Child, error)
	GetChild(ctx context.Context, userID, childID uuid.UUID) (*models.Child, error)
	ListChildren(ctx context.Context, userID uuid.UUID) ([]models.Child, error)
	UpdateChild(ctx context.Context, userID, childID uuid.UUID, req *models.UpdateChildRequest) (*models.Child, error)
	DeleteChild(ctx context.Context, userID, childID uuid.UUID) error
}

type childService struct {
	repo repository.ChildRepository
}

func NewChildService(repo repository.ChildRepository) ChildService {
	return &childService{repo: repo}
}

func (s *childService) CreateChild(ctx context.Context, userID uuid.UUID, req *models.CreateChildRequest) (*models.Child, error) {

	birthDate, err := time.Parse(birthDateLayout, req.BirthDate)
	if err != nil {
		return nil, errors.ValidationError("Invalid birth date").WithError(err)
	}

	child := &models.Child{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          req.Name,
		BirthDate:     birthDate,
		Gender:        req.Gender,
		ClothingSize:  req.ClothingSize,
		ShoeSize:      req.ShoeSize,
		Height:        req.Height,
		Weight:        req.Weight,
		StylePrefs:    req.StylePrefs,
		OccasionPrefs: req.OccasionPrefs,
		ColorPrefs:    req.ColorPrefs,
		Notes:         sanitizeNotes(req.Notes),
		Avatar:        req.Avatar,
		Active:        true,
	}

	if err := s.repo.CreateChild(ctx, child); err != nil {
		return nil, errors.DatabaseError("Failed to create child profile").WithError(err)
	}

	return child, nil
}

func (s *childService) GetChild(ctx context.Context, userID, childID uuid.UUID) (*models.Child, error) {

	child, err := s.repo.GetActiveChild(ctx, childID, userID)
	if err != nil {
		return nil, errors.NotFoundError("Child not found").WithError(err)
	}

	return child, nil
}

func (s *childService) ListChildren(ctx context.Context, userID uuid.UUID) ([]models.Child, error) {

	children, err := s.repo.ListChildrenByUser(ctx, userID)
	if err != nil {
		return nil, errors.DatabaseError("Failed to list children").WithError(err)
	}

	if children == nil {
		children = []models.Child{}
	}

	return children, nil
}

func (s *childService) UpdateChild(ctx context.Context, userID, childID uuid.UUID, req *models.UpdateChildRequest) (*models.Child, error) {

	child, err := s.repo.GetActiveChild(ctx, childID, userID)
	if err != nil {
		return nil, errors.NotFoundError("Child not found").WithError(err)
	}

	if req.Name != nil {
		child.Name = *req.Name
	}
	if req.BirthDate != nil {
		birthDate, err := time.Parse(birthDateLayout, *req.BirthDate)
		if err != nil {
			return nil, errors.ValidationError("Invalid birth date").WithError(err)
		}
		child.BirthDate = birthDate
	}
	if req.Gender != nil {
		child.Gender = *req.Gender
	}
	if req.ClothingSize != nil {
		child.ClothingSize = *req.ClothingSize
	}
	if req.ShoeSize != nil {
		child.ShoeSize = req.ShoeSize
	}
	if req.Height != nil {
		child.Height = req.Height
	}
	if req.Weight != nil {
		child.Weight = req.Weight
	}
	if req.StylePrefs != nil {
		child.StylePrefs = req.StylePrefs
	}
	if req.OccasionPrefs != nil {
		child.OccasionPrefs = req.OccasionPrefs
	}
	if req.ColorPrefs != nil {
		child.ColorPrefs = req.ColorPrefs
	}
	if req.Notes != nil {
		child.Notes = sanitizeNotes(req.Notes)
	}
	if req.Avatar != nil {
		child.Avatar = req.Avatar
	}

	if err := s.repo.UpdateChild(ctx, child); err != nil {
		return nil, errors.DatabaseError("Failed to update child profile").WithError(err)
	}

	return child, nil
}

func (s *childService) DeleteChild(ctx context.Context, userID, childID uuid.UUID) error {

	if err := s.repo.DeactivateChild(ctx, childID, userID); err != nil {
		return errors.NotFoundError("Child not found").WithError(err)
	}

	return nil
}

// Notes are embedded verbatim in the oracle prompt later on, so markup is
// stripped on the way in.
func sanitizeNotes(notes *string) *string {
	if notes == nil {
		return nil
	}

	clean := utils.SanitizeText(*notes)
	if clean == "" {
		return nil
	}

	return &clean
}
