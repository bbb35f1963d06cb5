package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/Roma7-7-7/dtek-notifier/internal/schedule"
)

const (
	ajaxPath         = "/ua/ajax"
	homeNumMethod    = "getHomeNum"
	updateFactLayout = "02.01.2006, 15:04:05"
	requestTimeout   = 30 * time.Second
)

type (
	Clock interface {
		Now() time.Time
	}

	DTEKProvider struct {
		pageURL string
		ajaxURL string
		city    string
		street  string
		loc     *time.Location
		clock   Clock

		client   *http.Client
		loadPage func(ctx context.Context, pageURL string) ([]byte, error)
		postAjax func(ctx context.Context, ajaxURL, csrfToken string, form url.Values) ([]byte, error)
	}
)

// NewDTEKProvider creates a provider for a single address.
// The ajax endpoint is resolved against the origin of pageURL.
func NewDTEKProvider(pageURL, city, street string, loc *time.Location, clock Clock) (*DTEKProvider, error) {
	u, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse shutdowns page url=%s: %w", pageURL, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("shutdowns page url=%s must be absolute", pageURL)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	p := &DTEKProvider{
		pageURL: pageURL,
		ajaxURL: (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: ajaxPath}).String(),
		city:    city,
		street:  street,
		loc:     loc,
		clock:   clock,
		client: &http.Client{
			Jar:     jar,
			Timeout: requestTimeout,
		},
	}
	p.loadPage = p.get
	p.postAjax = p.post
	return p, nil
}

// Schedule loads the shutdowns page for a session and csrf token, then asks the ajax endpoint for the address schedule.
func (p *DTEKProvider) Schedule(ctx context.Context) (*schedule.Payload, error) {
	html, err := p.loadPage(ctx, p.pageURL)
	if err != nil {
		return nil, fmt.Errorf("get schedule: load page: %w", err)
	}

	token, err := csrfToken(html)
	if err != nil {
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	body, err := p.postAjax(ctx, p.ajaxURL, token, p.homeNumForm())
	if err != nil {
		return nil, fmt.Errorf("get schedule: post ajax: %w", err)
	}

	var res schedule.Payload
	if err := json.Unmarshal(body, &res); err != nil {
		return nil, fmt.Errorf("get schedule: decode response: %w", err)
	}
	if !res.Result {
		return nil, fmt.Errorf("get schedule: %w", ErrUnexpectedResponse)
	}

	return &res, nil
}

func (p *DTEKProvider) homeNumForm() url.Values {
	form := url.Values{}
	form.Set("method", homeNumMethod)
	form.Set("data[0][name]", "city")
	form.Set("data[0][value]", p.city)
	form.Set("data[1][name]", "street")
	form.Set("data[1][value]", p.street)
	form.Set("data[2][name]", "updateFact")
	form.Set("data[2][value]", p.clock.Now().In(p.loc).Format(updateFactLayout))
	return form
}

func csrfToken(html []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("parse page: %w", err)
	}

	token, ok := doc.Find(`meta[name="csrf-token"]`).First().Attr("content")
	if !ok || strings.TrimSpace(token) == "" {
		return "", ErrCSRFTokenNotFound
	}
	return token, nil
}

func (p *DTEKProvider) get(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request for page=%s: %w", pageURL, err)
	}
	return p.do(req)
}

func (p *DTEKProvider) post(ctx context.Context, ajaxURL, csrfToken string, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ajaxURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("create request for url=%s: %w", ajaxURL, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	req.Header.Set("X-Requested-With", "XMLHttpRequest")
	req.Header.Set("X-CSRF-Token", csrfToken)
	return p.do(req)
}

func (p *DTEKProvider) do(req *http.Request) ([]byte, error) {
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s %s: status=%s", req.Method, req.URL, resp.Status)
	}

	res, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", req.Method, req.URL, err)
	}
	return res, nil
}
