package apiclient

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/yigit/ojtportal/internal/app/models"
	"github.com/yigit/ojtportal/internal/app/models/dto"
)

// Upload is a file attached to a submission
type Upload struct {
	Filename string
	Content  io.Reader
}

// SubmitRequirement posts a multipart form with nameOfDocs and, when given, submitted_file
func (c *Client) SubmitRequirement(ctx context.Context, nameOfDocs string, file *Upload) (*dto.SubmitRequirementResponse, error) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if err := mw.WriteField("nameOfDocs", nameOfDocs); err != nil {
		return nil, fmt.Errorf("write nameOfDocs: %w", err)
	}
	if file != nil {
		part, err := mw.CreateFormFile("submitted_file", file.Filename)
		if err != nil {
			return nil, fmt.Errorf("create file part: %w", err)
		}
		if _, err := io.Copy(part, file.Content); err != nil {
			return nil, fmt.Errorf("copy %s: %w", file.Filename, err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart body: %w", err)
	}

	var resp dto.SubmitRequirementResponse
	err := c.do(ctx, request{
		method:      http.MethodPost,
		path:        "/submissions",
		body:        &body,
		contentType: mw.FormDataContentType(),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// ListSubmissions returns what the signed-in student already submitted
func (c *Client) ListSubmissions(ctx context.Context) ([]models.SubmittedRequirement, error) {
	var resp dataEnvelope[[]models.SubmittedRequirement]
	if err := c.getJSON(ctx, "/submissions", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// ListAvailableRequirements returns the requirements a student can submit against
func (c *Client) ListAvailableRequirements(ctx context.Context) ([]models.AvailableRequirement, error) {
	var resp dataEnvelope[[]models.AvailableRequirement]
	if err := c.getJSON(ctx, "/submissions/available", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}
