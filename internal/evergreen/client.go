// Package evergreen is a small typed client for the Evergreen REST v2 API,
// covering the build and task surface this tool needs.
package evergreen

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	defaultTimeout   = time.Minute
	retryCount       = 3
	retryWaitTime    = 100 * time.Millisecond
	retryMaxWaitTime = 2 * time.Second
)

// Build is an Evergreen build as returned by GET /builds/{build_id}.
type Build struct {
	ID           string   `json:"_id"`
	ProjectID    string   `json:"project_id"`
	BuildVariant string   `json:"build_variant"`
	Status       string   `json:"status"`
	Tasks        []string `json:"tasks"`
}

// Task is an Evergreen task as returned by GET /builds/{build_id}/tasks.
type Task struct {
	ID          string `json:"task_id"`
	DisplayName string `json:"display_name"`
	BuildID     string `json:"build_id"`
	Status      string `json:"status"`
	Activated   bool   `json:"activated"`
}

// TaskConfig carries the mutable task fields accepted by
// PATCH /tasks/{task_id}. Nil fields are left untouched by the server.
type TaskConfig struct {
	Activated *bool  `json:"activated,omitempty"`
	Priority  *int64 `json:"priority,omitempty"`
}

// APIError is the error document Evergreen returns for non-2xx responses.
type APIError struct {
	StatusCode int    `json:"status"`
	Message    string `json:"error"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("evergreen api error: %s (status %d)", e.Message, e.StatusCode)
}

// Client talks to a single Evergreen deployment. Requests authenticate with
// the Api-User/Api-Key headers and retry transient failures internally, so
// callers see only the final outcome.
type Client struct {
	client *resty.Client
}

// NewClient builds a Client from loaded settings.
func NewClient(settings *Settings) *Client {
	client := resty.New().
		SetBaseURL(strings.TrimSuffix(settings.APIServerHost, "/")).
		SetTimeout(defaultTimeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("Api-User", settings.User).
		SetHeader("Api-Key", settings.APIKey).
		SetRetryCount(retryCount).
		SetRetryWaitTime(retryWaitTime).
		SetRetryMaxWaitTime(retryMaxWaitTime)

	client.AddRetryCondition(retryCondition)

	return &Client{client: client}
}

// retryCondition determines if a request should be retried.
func retryCondition(r *resty.Response, err error) bool {
	if err != nil {
		return true
	}
	if r == nil {
		return false
	}
	code := r.StatusCode()
	return code >= 500 || code == 429 || code == 408
}

// BuildByID fetches a single build.
func (c *Client) BuildByID(ctx context.Context, buildID string) (*Build, error) {
	var build Build

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&build).
		SetError(&APIError{}).
		Get(fmt.Sprintf("/rest/v2/builds/%s", buildID))
	if err != nil {
		return nil, fmt.Errorf("failed to get build %s: %w", buildID, err)
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}

	return &build, nil
}

// TasksForBuild fetches the tasks belonging to a build, in the order the
// service returns them.
func (c *Client) TasksForBuild(ctx context.Context, buildID string) ([]Task, error) {
	var tasks []Task

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&tasks).
		SetError(&APIError{}).
		Get(fmt.Sprintf("/rest/v2/builds/%s/tasks", buildID))
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks for build %s: %w", buildID, err)
	}
	if err := responseError(resp); err != nil {
		return nil, err
	}

	return tasks, nil
}

// ConfigureTask patches the mutable fields of a task.
func (c *Client) ConfigureTask(ctx context.Context, taskID string, config TaskConfig) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(config).
		SetError(&APIError{}).
		Patch(fmt.Sprintf("/rest/v2/tasks/%s", taskID))
	if err != nil {
		return fmt.Errorf("failed to configure task %s: %w", taskID, err)
	}
	if err := responseError(resp); err != nil {
		return err
	}

	return nil
}

// responseError converts a non-2xx response into an error.
func responseError(resp *resty.Response) error {
	if resp.StatusCode() < 400 {
		return nil
	}

	if apiErr, ok := resp.Error().(*APIError); ok && apiErr != nil && apiErr.Message != "" {
		if apiErr.StatusCode == 0 {
			apiErr.StatusCode = resp.StatusCode()
		}
		return apiErr
	}
	return fmt.Errorf("evergreen api error: %s (status %d)", resp.String(), resp.StatusCode())
}
