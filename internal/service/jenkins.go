package service

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	apperrors "team-lifecycle-backend/internal/errors"
	"team-lifecycle-backend/internal/logger"
)

// JenkinsConfig locates the teardown job
type JenkinsConfig struct {
	BaseURL string
	Job     string
	User    string
	Token   string
}

// Configured reports whether a teardown job has been set up
func (c JenkinsConfig) Configured() bool {
	return c.BaseURL != "" && c.Job != ""
}

// JenkinsService reclaims team resources by triggering a parameterized Jenkins job
type JenkinsService struct {
	cfg        JenkinsConfig
	httpClient *http.Client
}

// NewJenkinsService creates a new Jenkins service
func NewJenkinsService(cfg JenkinsConfig) *JenkinsService {
	return &JenkinsService{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// buildJenkinsURL constructs the trigger URL for the configured job
func (s *JenkinsService) buildJenkinsURL() string {
	return fmt.Sprintf("%s/job/%s/buildWithParameters", strings.TrimRight(s.cfg.BaseURL, "/"), url.PathEscape(s.cfg.Job))
}

// Reclaim triggers the teardown job for one team's resource range
func (s *JenkinsService) Reclaim(ctx context.Context, r ReclaimRequest) error {
	log := logger.WithContext(ctx).WithFields(map[string]interface{}{
		"job":  s.cfg.Job,
		"team": r.TeamNumber,
	})

	if !s.cfg.Configured() {
		return apperrors.ErrJenkinsNotConfigured
	}

	formData := url.Values{}
	formData.Set("TEAM_NUMBER", strconv.Itoa(r.TeamNumber))
	formData.Set("IP_BASE", r.IPBase)
	formData.Set("RANGE_START", strconv.Itoa(r.RangeStart))
	formData.Set("RANGE_END", strconv.Itoa(r.RangeEnd))

	fullURL := s.buildJenkinsURL()
	log.Infof("Jenkins teardown request: url=%s range=%d-%d", fullURL, r.RangeStart, r.RangeEnd)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fullURL, strings.NewReader(formData.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	if s.cfg.User != "" {
		// Basic Auth with the API token as password
		cred := base64.StdEncoding.EncodeToString([]byte(s.cfg.User + ":" + s.cfg.Token))
		req.Header.Set("Authorization", "Basic "+cred)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Errorf("Jenkins teardown request failed: %v", err)
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 400 {
		body, _ := io.ReadAll(resp.Body)
		log.Errorf("Jenkins teardown failed: status=%d, body=%s", resp.StatusCode, string(body))
		return fmt.Errorf("jenkins teardown failed: status=%d body=%s", resp.StatusCode, string(body))
	}

	log.Info("Triggered Jenkins teardown")
	return nil
}
