// Package visualization is the HTTP client for the chart-rendering service
// that turns a finished analysis record into an image artifact.
package visualization

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const apiTimeout = 15

// Render posts the record to the rendering service and returns the path of
// the produced image.
func Render(apiEndpoint string, apiKey string, request Request) (Response, error) {
	ctx, cancel := context.WithTimeout(context.Background(), apiTimeout*time.Second)
	defer cancel()

	body, err := json.Marshal(request)
	if err != nil {
		return Response{}, err
	}

	req, err := http.NewRequest(http.MethodPost, apiEndpoint, bytes.NewReader(body))
	if err != nil {
		return Response{}, err
	}
	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("api-key", apiKey)

	req = req.WithContext(ctx)
	client := http.Client{}

	resp, err := client.Do(req)
	if err != nil {
		return Response{}, err
	}
	defer resp.Body.Close()

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return Response{}, err
	}

	if resp.StatusCode == http.StatusInternalServerError {
		return Response{}, errors.New(fmt.Sprintf("internal server error 500: %s", string(respBytes)))
	}

	if resp.StatusCode != http.StatusOK {
		return Response{}, errors.New(string(respBytes))
	}

	var r Response
	if err := json.Unmarshal(respBytes, &r); err != nil {
		return Response{}, err
	}

	return r, nil
}
