// Package verify walks a running mock server through the same request
// sequence the OFW client performs, so an operator can confirm a fixture
// directory replays end to end before pointing the real client at it.
package verify

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/ofwtools/ofw-mock-server/internal/logger"
)

type Runner struct {
	baseURL   string
	authToken string
	client    *http.Client
	log       logger.Logger
}

func NewRunner(baseURL, authToken string, log logger.Logger) *Runner {
	return &Runner{
		baseURL:   baseURL,
		authToken: authToken,
		client:    &http.Client{Timeout: 10 * time.Second},
		log:       log,
	}
}

func (r *Runner) request(ctx context.Context, method, path string, params url.Values, authed bool) (int, map[string]interface{}, error) {
	u := r.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, u, nil)
	if err != nil {
		return 0, nil, err
	}
	if authed {
		req.Header.Set("Authorization", "Bearer "+r.authToken)
		req.Header.Set("ofw-client", "WebApplication")
		req.Header.Set("ofw-version", "1.0.0")
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return 0, nil, errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	var decoded map[string]interface{}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &decoded); err != nil {
			return resp.StatusCode, nil, errors.Wrapf(err, "decode %s response", path)
		}
	}
	return resp.StatusCode, decoded, nil
}

// Run executes the verification sequence and fails on the first broken step.
func (r *Runner) Run(ctx context.Context) error {
	// Health
	status, _, err := r.request(ctx, http.MethodGet, "/health", nil, false)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.Errorf("health check returned %d", status)
	}
	r.log.Infof("PASS health")

	// LocalStorage bootstrap
	status, body, err := r.request(ctx, http.MethodGet, "/ofw/appv2/localstorage.json", nil, false)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.Errorf("localstorage returned %d", status)
	}
	if _, ok := body["auth"]; !ok {
		return errors.New("localstorage response missing auth token")
	}
	r.log.Infof("PASS localstorage")

	// The gate must reject an unauthenticated request.
	status, _, err = r.request(ctx, http.MethodGet, "/pub/v1/messageFolders", nil, false)
	if err != nil {
		return err
	}
	if status != http.StatusUnauthorized {
		return errors.Errorf("expected 401 without credentials, got %d", status)
	}
	r.log.Infof("PASS auth required")

	// Folders
	status, body, err = r.request(ctx, http.MethodGet, "/pub/v1/messageFolders",
		url.Values{"includeFolderCounts": {"true"}}, true)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.Errorf("folders returned %d", status)
	}
	systemFolders, _ := body["systemFolders"].([]interface{})
	if len(systemFolders) == 0 {
		return errors.New("folders response has no systemFolders")
	}
	firstFolder, _ := systemFolders[0].(map[string]interface{})
	folderID, _ := firstFolder["id"].(float64)
	r.log.Infof("PASS folders (%d system folders)", len(systemFolders))

	// Messages in the first folder
	status, body, err = r.request(ctx, http.MethodGet, "/pub/v3/messages", url.Values{
		"folders":       {fmt.Sprintf("%d", int(folderID))},
		"page":          {"1"},
		"size":          {"10"},
		"sort":          {"date"},
		"sortDirection": {"desc"},
	}, true)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.Errorf("messages returned %d", status)
	}
	data, _ := body["data"].([]interface{})
	r.log.Infof("PASS messages (%d in page)", len(data))

	// Single message, when the folder had any.
	if len(data) > 0 {
		firstMsg, _ := data[0].(map[string]interface{})
		if msgID, ok := firstMsg["id"].(float64); ok {
			status, body, err = r.request(ctx, http.MethodGet,
				fmt.Sprintf("/pub/v3/messages/%d", int(msgID)), nil, true)
			if err != nil {
				return err
			}
			if status == http.StatusOK {
				bodyText, _ := body["body"].(string)
				r.log.Infof("PASS single message (body length %d)", len(bodyText))
			} else {
				// Matches captured behavior: a listed message may not be in
				// the fixture set, which is not a server fault.
				r.log.Warnf("single message %d returned %d", int(msgID), status)
			}
		}
	}

	// Reload
	status, _, err = r.request(ctx, http.MethodPost, "/reload", nil, false)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return errors.Errorf("reload returned %d", status)
	}
	r.log.Infof("PASS reload")

	r.log.Infof("All checks passed")
	return nil
}
