package catalog

import (
	"context"
	"errors"
	"fmt"

	courseRepo "github.com/teemx/GolfTee-BookingService/internal/infra/storage/course"
	"github.com/teemx/GolfTee-BookingService/internal/service/catalog/models"
)

// Service сервис каталога полей
type Service struct {
	courseRepo CourseRepository
	logger     Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(courseRepo CourseRepository, logger Logger) *Service {
	return &Service{
		courseRepo: courseRepo,
		logger:     logger,
	}
}

// List получает каталог активных полей с фильтрацией
func (s *Service) List(ctx context.Context, req *models.ListCoursesRequest) (*models.CourseListResponse, error) {
	s.logger.Info("List: fetching courses, city=%v, state=%v", req.City, req.State)

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		s.logger.Warn("List: minPrice > maxPrice")
		return nil, fmt.Errorf("%w: minPrice must not exceed maxPrice", ErrInvalidInput)
	}

	courses, err := s.courseRepo.List(ctx, req.ToDomainFilter())
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d courses", len(courses))
	return models.FromDomainCourseList(courses), nil
}

// GetByID получает поле по ID
// Неактивные поля не возвращаются
func (s *Service) GetByID(ctx context.Context, id int64) (*models.CourseResponse, error) {
	s.logger.Info("GetByID: fetching course id=%d", id)

	course, err := s.courseRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, courseRepo.ErrCourseNotFound) {
			s.logger.Warn("GetByID: course id=%d not found", id)
			return nil, ErrCourseNotFound
		}
		s.logger.Error("GetByID: repository error for course id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if !course.IsActive {
		s.logger.Warn("GetByID: course id=%d is inactive", id)
		return nil, ErrCourseNotFound
	}

	s.logger.Info("GetByID: successfully fetched course id=%d", id)
	return models.FromDomainCourse(course), nil
}
