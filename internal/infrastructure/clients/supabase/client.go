// Package supabase is a small query client for the hosted PostgREST API the
// remote backend exposes. It covers what the read and seed paths need:
// column selection with nested child tables, equality and membership
// filters, single-row reads, timestamp ordering and conflict-aware batch
// upserts.
package supabase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNoRows is returned by single-row reads that matched nothing.
var ErrNoRows = errors.New("supabase: no rows in result set")

// Client talks to one Supabase project.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client for the given project URL and API key.
func NewClient(projectURL, apiKey string) (*Client, error) {
	if projectURL == "" || apiKey == "" {
		return nil, fmt.Errorf("supabase: project URL and API key are required")
	}
	return &Client{
		baseURL: strings.TrimRight(projectURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// From starts a query against a table or view.
func (c *Client) From(table string) *Query {
	return &Query{client: c, table: table, selection: "*"}
}

type filter struct {
	column string
	value  string
}

// Query accumulates the parts of one PostgREST request.
type Query struct {
	client    *Client
	table     string
	selection string
	filters   []filter
	order     string
	single    bool
}

// Select sets the selected columns. Child tables are selected with the
// embedded form, e.g. "place_features(feature)".
func (q *Query) Select(columns ...string) *Query {
	if len(columns) > 0 {
		q.selection = strings.Join(columns, ",")
	}
	return q
}

// Eq adds an equality filter on a column.
func (q *Query) Eq(column, value string) *Query {
	q.filters = append(q.filters, filter{column: column, value: "eq." + value})
	return q
}

// In adds a membership filter on a column.
func (q *Query) In(column string, values []string) *Query {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = `"` + v + `"`
	}
	q.filters = append(q.filters, filter{column: column, value: "in.(" + strings.Join(quoted, ",") + ")"})
	return q
}

// Order sorts the result by a column.
func (q *Query) Order(column string, ascending bool) *Query {
	direction := "desc"
	if ascending {
		direction = "asc"
	}
	q.order = column + "." + direction
	return q
}

// Single marks the query as expecting exactly one row. A query that matches
// no rows fails with ErrNoRows.
func (q *Query) Single() *Query {
	q.single = true
	return q
}

// Get executes the query and decodes the response into out.
func (q *Query) Get(ctx context.Context, out interface{}) error {
	endpoint, err := q.endpoint()
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	q.client.authorize(req)
	if q.single {
		req.Header.Set("Accept", "application/vnd.pgrst.object+json")
	}

	resp, err := q.client.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		// PGRST116: single-row request matched zero rows
		if q.single && (resp.StatusCode == http.StatusNotAcceptable || strings.Contains(string(body), "PGRST116")) {
			return ErrNoRows
		}
		return fmt.Errorf("supabase: %s returned status %d: %s", q.table, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// UpsertOptions control conflict handling for batch writes.
type UpsertOptions struct {
	// OnConflict is the comma-separated conflict target column list
	OnConflict string

	// IgnoreDuplicates drops conflicting rows instead of merging them
	IgnoreDuplicates bool
}

// Upsert writes rows (a slice of row values) into the table.
func (c *Client) Upsert(ctx context.Context, table string, rows interface{}, opts UpsertOptions) error {
	endpoint, err := url.Parse(fmt.Sprintf("%s/rest/v1/%s", c.baseURL, table))
	if err != nil {
		return err
	}
	if opts.OnConflict != "" {
		query := endpoint.Query()
		query.Set("on_conflict", opts.OnConflict)
		endpoint.RawQuery = query.Encode()
	}

	payload, err := json.Marshal(rows)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	c.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resolution := "resolution=merge-duplicates"
	if opts.IgnoreDuplicates {
		resolution = "resolution=ignore-duplicates"
	}
	req.Header.Set("Prefer", resolution+",return=minimal")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("supabase: upsert into %s returned status %d: %s", table, resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return nil
}

func (q *Query) endpoint() (string, error) {
	parsed, err := url.Parse(fmt.Sprintf("%s/rest/v1/%s", q.client.baseURL, q.table))
	if err != nil {
		return "", err
	}

	query := parsed.Query()
	query.Set("select", q.selection)
	for _, f := range q.filters {
		query.Set(f.column, f.value)
	}
	if q.order != "" {
		query.Set("order", q.order)
	}
	parsed.RawQuery = query.Encode()
	return parsed.String(), nil
}

func (c *Client) authorize(req *http.Request) {
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
}
