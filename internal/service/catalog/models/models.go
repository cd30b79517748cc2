package models

import (
	"time"

	"github.com/teemx/GolfTee-BookingService/internal/domain"
)

// Request модели

// ListCoursesRequest запрос на получение каталога полей
type ListCoursesRequest struct {
	City     *string  `json:"city,omitempty"`
	State    *string  `json:"state,omitempty"`
	Holes    *int     `json:"holes,omitempty"`
	MinPrice *float64 `json:"minPrice,omitempty"` // По будничной цене
	MaxPrice *float64 `json:"maxPrice,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListCoursesRequest) ToDomainFilter() domain.CourseFilter {
	return domain.CourseFilter{
		City:     r.City,
		State:    r.State,
		Holes:    r.Holes,
		MinPrice: r.MinPrice,
		MaxPrice: r.MaxPrice,
	}
}

// Response модели

// CourseResponse ответ с данными поля
type CourseResponse struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Description  *string `json:"description,omitempty"`
	Address      *string `json:"address,omitempty"`
	City         string  `json:"city"`
	State        string  `json:"state"`
	PriceWeekday float64 `json:"priceWeekday"`
	PriceWeekend float64 `json:"priceWeekend"`
	Holes        int     `json:"holes"`
	Par          *int    `json:"par,omitempty"`
	Length       *int    `json:"length,omitempty"`
	Rating       float64 `json:"rating"`
	ReviewCount  int     `json:"reviewCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CourseListResponse ответ со списком полей
type CourseListResponse struct {
	Courses []CourseResponse `json:"courses"`
}

// Методы конвертации

// FromDomainCourse конвертирует domain модель в DTO
func FromDomainCourse(c *domain.Course) *CourseResponse {
	if c == nil {
		return nil
	}

	return &CourseResponse{
		ID:           c.ID,
		Name:         c.Name,
		Description:  c.Description,
		Address:      c.Address,
		City:         c.City,
		State:        c.State,
		PriceWeekday: c.PriceWeekday,
		PriceWeekend: c.PriceWeekend,
		Holes:        c.Holes,
		Par:          c.Par,
		Length:       c.Length,
		Rating:       c.Rating,
		ReviewCount:  c.ReviewCount,
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
}

// FromDomainCourseList конвертирует список domain моделей в DTO
func FromDomainCourseList(courses []*domain.Course) *CourseListResponse {
	if courses == nil {
		return &CourseListResponse{
			Courses: []CourseResponse{},
		}
	}

	resp := &CourseListResponse{
		Courses: make([]CourseResponse, len(courses)),
	}

	for i, course := range courses {
		if courseResp := FromDomainCourse(course); courseResp != nil {
			resp.Courses[i] = *courseResp
		}
	}

	return resp
}
