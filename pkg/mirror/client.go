package mirror

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lunar-sanctum/sanctum-sdk-go/pkg/shared"
)

type Config struct {
	Network    string
	BaseURL    string
	HTTPClient *http.Client
	APIKey     string
	Headers    map[string]string
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	apiKey     string
	headers    map[string]string
}

// NewClient creates a mirror node client for the given network. BaseURL
// overrides the public endpoint for that network.
func NewClient(config Config) (*Client, error) {
	network, err := shared.NormalizeNetwork(config.Network)
	if err != nil {
		return nil, err
	}

	baseURL := strings.TrimRight(strings.TrimSpace(config.BaseURL), "/")
	if baseURL == "" {
		baseURL = shared.MirrorBaseURL(network)
	}
	parsedBaseURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid mirror base URL: %w", err)
	}
	if parsedBaseURL.Scheme != "http" && parsedBaseURL.Scheme != "https" {
		return nil, fmt.Errorf("invalid mirror base URL: scheme must be http or https")
	}
	if strings.TrimSpace(parsedBaseURL.Host) == "" {
		return nil, fmt.Errorf("invalid mirror base URL: host is required")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}

	headers := make(map[string]string, len(config.Headers))
	for key, value := range config.Headers {
		headers[key] = value
	}

	return &Client{
		baseURL:    strings.TrimRight(parsedBaseURL.String(), "/"),
		httpClient: httpClient,
		apiKey:     strings.TrimSpace(config.APIKey),
		headers:    headers,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// GetContractResult returns the result of one contract call, looked up by
// transaction ID or EVM transaction hash. A nil result means the mirror node
// has no record of it.
func (c *Client) GetContractResult(ctx context.Context, transactionIDOrHash string) (*ContractResult, error) {
	normalized := NormalizeTransactionID(transactionIDOrHash)
	if normalized == "" {
		return nil, fmt.Errorf("transaction ID or hash is required")
	}

	var result ContractResult
	path := fmt.Sprintf("/api/v1/contracts/results/%s", url.PathEscape(normalized))
	found, err := c.getJSON(ctx, path, &result)
	if err != nil || !found {
		return nil, err
	}
	return &result, nil
}

// GetContractResults lists the calls made to a contract, following
// pagination links until exhausted or MaxPages pages have been read.
func (c *Client) GetContractResults(
	ctx context.Context,
	contractID string,
	options ContractResultsQueryOptions,
) ([]ContractResult, error) {
	normalized := strings.TrimSpace(contractID)
	if normalized == "" {
		return nil, fmt.Errorf("contract ID is required")
	}

	values := url.Values{}
	if options.Limit > 0 {
		values.Set("limit", fmt.Sprintf("%d", options.Limit))
	}
	if options.Order != "" {
		values.Set("order", options.Order)
	}
	if options.Timestamp != "" {
		values.Set("timestamp", options.Timestamp)
	}
	if options.From != "" {
		values.Set("from", options.From)
	}

	endpoint := fmt.Sprintf("/api/v1/contracts/%s/results", url.PathEscape(normalized))
	if encoded := values.Encode(); encoded != "" {
		endpoint = fmt.Sprintf("%s?%s", endpoint, encoded)
	}

	results := make([]ContractResult, 0)
	next := endpoint
	for pages := 0; next != ""; pages++ {
		if options.MaxPages > 0 && pages >= options.MaxPages {
			break
		}

		var page contractResultsResponse
		found, err := c.getJSON(ctx, next, &page)
		if err != nil {
			return nil, err
		}
		if !found {
			break
		}

		results = append(results, page.Results...)
		next = page.Links.Next
	}

	return results, nil
}

// NormalizeTransactionID converts an SDK style transaction ID
// (0.0.1234@1700000000.123456789) into the dashed form used in mirror node
// paths. Hashes and already dashed IDs are returned trimmed.
func NormalizeTransactionID(transactionID string) string {
	trimmed := strings.TrimSpace(transactionID)
	account, validStart, found := strings.Cut(trimmed, "@")
	if !found {
		return trimmed
	}
	return account + "-" + strings.Replace(validStart, ".", "-", 1)
}

func (c *Client) getJSON(ctx context.Context, pathOrURL string, target any) (bool, error) {
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, c.resolveURL(pathOrURL), nil)
	if err != nil {
		return false, fmt.Errorf("failed to create request: %w", err)
	}

	request.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		request.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.apiKey))
	}
	for key, value := range c.headers {
		request.Header.Set(key, value)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return false, fmt.Errorf("mirror node request failed: %w", err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return false, fmt.Errorf("failed to read mirror node response: %w", err)
	}

	if response.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return false, fmt.Errorf(
			"mirror node request failed with status %d: %s",
			response.StatusCode,
			strings.TrimSpace(string(body)),
		)
	}

	if err := json.Unmarshal(body, target); err != nil {
		return false, fmt.Errorf("failed to decode mirror node response: %w", err)
	}
	return true, nil
}

func (c *Client) resolveURL(pathOrURL string) string {
	if strings.HasPrefix(pathOrURL, "http://") || strings.HasPrefix(pathOrURL, "https://") {
		return pathOrURL
	}

	path := pathOrURL
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return c.baseURL + path
}
