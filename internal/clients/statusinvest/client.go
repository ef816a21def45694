package statusinvest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog"
)

// Browser-like user agent; the endpoint rejects default Go clients.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// fiiCategoryType selects the FII category on the advanced-search endpoint.
const fiiCategoryType = 2

// Config holds client configuration.
type Config struct {
	SearchURL string
	CacheDir  string
	CacheTTL  time.Duration
}

// Client fetches FII data from Status Invest. Successful payloads are cached
// on disk (one file per logical query) and reused until the TTL expires.
type Client struct {
	client *http.Client
	cfg    Config
	cache  *diskCache
	log    zerolog.Logger
}

// NewClient creates a new Status Invest client.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		cfg:   cfg,
		cache: newDiskCache(cfg.CacheDir, cfg.CacheTTL),
		log:   log.With().Str("client", "statusinvest").Logger(),
	}
}

// FetchFunds returns the raw FII universe from the advanced-search endpoint.
// Any transport, status or payload-shape problem is returned as an error;
// the caller decides on the fallback.
func (c *Client) FetchFunds() ([]RawFund, error) {
	cacheKey := fmt.Sprintf("search_%d", fiiCategoryType)

	var cached searchResponse
	if c.cache.load(cacheKey, &cached) && len(cached.List) > 0 {
		c.log.Debug().Int("funds", len(cached.List)).Msg("Serving search payload from cache")
		return cached.List, nil
	}

	payload := map[string]interface{}{
		"search": map[string]interface{}{
			"Segment":      "",
			"CategoryType": "",
			"Search":       "",
			"Order":        map[string]interface{}{"Field": "name", "Ascending": true},
			"Pagination":   map[string]interface{}{"Page": 1, "PageSize": 200},
		},
		"CategoryType": fiiCategoryType,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search payload: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, c.cfg.SearchURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build search request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search request returned status %d", resp.StatusCode)
	}

	var decoded searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("unexpected search payload shape: %w", err)
	}

	if len(decoded.List) == 0 {
		return nil, fmt.Errorf("search payload contained no funds")
	}

	if err := c.cache.save(cacheKey, decoded); err != nil {
		c.log.Warn().Err(err).Msg("Failed to cache search payload")
	}

	c.log.Info().Int("funds", len(decoded.List)).Msg("Fetched fund universe")
	return decoded.List, nil
}

// FetchFundDetail scrapes the detail page of a single fund.
func (c *Client) FetchFundDetail(ticker string) (*FundDetail, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	cacheKey := fmt.Sprintf("detail_%s", ticker)

	var cached FundDetail
	if c.cache.load(cacheKey, &cached) && cached.Ticker != "" {
		return &cached, nil
	}

	url := fmt.Sprintf("https://statusinvest.com.br/fundos-imobiliarios/%s", strings.ToLower(ticker))

	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build detail request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("detail request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("detail request returned status %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse detail page: %w", err)
	}

	detail := parseFundDetail(ticker, doc)

	if err := c.cache.save(cacheKey, detail); err != nil {
		c.log.Warn().Err(err).Msg("Failed to cache fund detail")
	}

	return detail, nil
}

// parseFundDetail extracts the indicator strip values from the detail page.
func parseFundDetail(ticker string, doc *goquery.Document) *FundDetail {
	detail := &FundDetail{
		Ticker: ticker,
		Name:   strings.TrimSpace(doc.Find("h1 small").First().Text()),
	}

	doc.Find("div.top-info div.info").Each(func(_ int, s *goquery.Selection) {
		label := strings.ToLower(strings.TrimSpace(s.Find("h3.title").Text()))
		value := parseBRNumber(s.Find("strong.value").First().Text())

		switch {
		case strings.Contains(label, "valor atual"):
			detail.Price = value
		case strings.Contains(label, "dividend yield"):
			detail.DY12M = value
		case strings.Contains(label, "p/vp"):
			detail.PVP = value
		case strings.Contains(label, "ltimo rendimento"):
			detail.LastDividend = value
		case strings.Contains(label, "vac"):
			detail.VacancyRate = value
		case strings.Contains(label, "taxa"):
			detail.ManagementFee = value
		case strings.Contains(label, "patrim"):
			detail.NetWorth = value
		}
	})

	detail.Segment = strings.TrimSpace(doc.Find("div.fund-segment strong").First().Text())

	return detail
}

// parseBRNumber parses Brazilian-formatted numbers ("1.234,56", "R$ 10,50",
// "8,21%") into a float64. Returns 0 on unparseable input.
func parseBRNumber(raw string) float64 {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSuffix(s, "%")
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
