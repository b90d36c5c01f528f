package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
)

// RegisterStudent submits a self-registration for admin approval
func (c *Client) RegisterStudent(ctx context.Context, form dto.RegistrationForm) (*dto.MessageResponse, error) {
	var resp dto.MessageResponse
	if err := c.sendJSON(ctx, http.MethodPost, "/students/register", form, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetProfile returns the signed-in student's record
func (c *Client) GetProfile(ctx context.Context) (*models.Student, error) {
	var resp dataEnvelope[models.Student]
	if err := c.getJSON(ctx, "/students/profile", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// UpdateProfile changes the signed-in student's editable fields
func (c *Client) UpdateProfile(ctx context.Context, req dto.StudentProfileUpdateRequest) (*models.Student, error) {
	var resp dataEnvelope[models.Student]
	if err := c.sendJSON(ctx, http.MethodPut, "/students/profile", req, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}

// ListStudents returns every student. The endpoint answers with a bare array.
func (c *Client) ListStudents(ctx context.Context) ([]models.Student, error) {
	var students []models.Student
	if err := c.getJSON(ctx, "/students", nil, &students); err != nil {
		return nil, err
	}
	return students, nil
}

// GetStudent returns one student by record id
func (c *Client) GetStudent(ctx context.Context, id string) (*models.Student, error) {
	var student models.Student
	if err := c.getJSON(ctx, "/students/"+url.PathEscape(id), nil, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// CreateStudent adds a student record
func (c *Client) CreateStudent(ctx context.Context, req dto.StudentRequest) (*models.Student, error) {
	var student models.Student
	if err := c.sendJSON(ctx, http.MethodPost, "/students", req, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// UpdateStudent changes a student record
func (c *Client) UpdateStudent(ctx context.Context, id string, req dto.StudentRequest) (*models.Student, error) {
	var student models.Student
	if err := c.sendJSON(ctx, http.MethodPut, "/students/"+url.PathEscape(id), req, &student); err != nil {
		return nil, err
	}
	return &student, nil
}

// DeleteStudent removes a student record
func (c *Client) DeleteStudent(ctx context.Context, id string) error {
	return c.sendJSON(ctx, http.MethodDelete, "/students/"+url.PathEscape(id), nil, nil)
}
