// Package detection implements the damage detector against the model-serving backend.
package detection

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"time"

	"servicelocator/internal/domain/entity"
	domainerrors "servicelocator/internal/domain/errors"
	"servicelocator/internal/domain/service"

	"github.com/pkg/errors"
)

const formFieldFile = "file"

// prediction accepts both "part" and the raw detector class name "cls".
type prediction struct {
	X1         int    `json:"x1"`
	Y1         int    `json:"y1"`
	X2         int    `json:"x2"`
	Y2         int    `json:"y2"`
	Part       string `json:"part"`
	Cls        string `json:"cls"`
	DamageType string `json:"damage_type"`
	Severity   string `json:"severity"`
}

type predictResponse struct {
	Predictions []prediction `json:"predictions"`
	Error       string       `json:"error"`
}

type client struct {
	predictURL string
	httpClient *http.Client
}

// NewClient creates a DamageDetector posting images to predictURL.
func NewClient(predictURL string, timeout time.Duration, httpClient *http.Client) service.DamageDetector {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &client{
		predictURL: predictURL,
		httpClient: httpClient,
	}
}

// Predict uploads the image as the multipart "file" field.
func (c *client) Predict(ctx context.Context, upload *entity.ImageUpload) ([]entity.DamagePrediction, error) {
	body, contentType, err := encodeUpload(upload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.predictURL, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build predict request")
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.ErrDetectionFailed.WrapMessage(err.Error())
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domainerrors.ErrDetectionFailed.WithDetails(fmt.Sprintf("backend returned status %d", resp.StatusCode))
	}

	var decoded predictResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, domainerrors.ErrDetectionFailed.WrapMessage("invalid predict response: " + err.Error())
	}
	if decoded.Error != "" {
		return nil, domainerrors.ErrDetectionFailed.WithDetails(decoded.Error)
	}

	predictions := make([]entity.DamagePrediction, 0, len(decoded.Predictions))
	for _, p := range decoded.Predictions {
		part := p.Part
		if part == "" {
			part = p.Cls
		}
		predictions = append(predictions, entity.DamagePrediction{
			X1:         p.X1,
			Y1:         p.Y1,
			X2:         p.X2,
			Y2:         p.Y2,
			Part:       part,
			DamageType: p.DamageType,
			Severity:   p.Severity,
		})
	}

	return predictions, nil
}

func encodeUpload(upload *entity.ImageUpload) (io.Reader, string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	filename := upload.Filename
	if filename == "" {
		filename = "upload"
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, formFieldFile, filename))
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, "", errors.Wrap(err, "failed to create multipart part")
	}
	if _, err := part.Write(upload.Data); err != nil {
		return nil, "", errors.Wrap(err, "failed to write multipart body")
	}
	if err := writer.Close(); err != nil {
		return nil, "", errors.Wrap(err, "failed to close multipart writer")
	}

	return &buf, writer.FormDataContentType(), nil
}
