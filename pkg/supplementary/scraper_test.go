package supplementary

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"english-drill/pkg/domain"
	"english-drill/pkg/httpclient"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// listingServer serves practice listings and records every page index requested.
type listingServer struct {
	mu        sync.Mutex
	requested map[string][]string
	failPages map[string]bool
}

func newListingServer(failPages ...string) *listingServer {
	fail := make(map[string]bool)
	for _, p := range failPages {
		fail[p] = true
	}
	return &listingServer{requested: make(map[string][]string), failPages: fail}
}

func (l *listingServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	page := r.URL.Query().Get("s")

	l.mu.Lock()
	l.requested[r.URL.Path] = append(l.requested[r.URL.Path], page)
	l.mu.Unlock()

	if l.failPages[r.URL.Path+"?"+page] {
		w.WriteHeader(http.StatusBadGateway)
		return
	}

	fmt.Fprintf(w, `<div class="content-item-v2">
<a href="/toefl/tag/x">Tag</a><b>%s page %s</b><a href="%s/%s">Start</a>
</div>`, r.URL.Path, page, r.URL.Path, page)
}

func (l *listingServer) pages(path string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.requested[path]...)
}

func newTestScraper(server *httptest.Server, pages int) *Scraper {
	reading := domain.Category{
		Name:        "reading",
		URLTemplate: server.URL + "/toefl/read/new-index?s={}",
		BaseURL:     server.URL,
		Pages:       pages,
	}
	listening := domain.Category{
		Name:        "listening",
		URLTemplate: server.URL + "/toefl/listening/new-index?s={}",
		BaseURL:     server.URL,
		Pages:       pages,
	}
	return NewScraper(httpclient.NewClient(httpclient.BrowserClient), reading, listening)
}

func TestScraper_FetchReading_AllPages(t *testing.T) {
	ls := newListingServer()
	server := httptest.NewServer(ls)
	defer server.Close()

	records := newTestScraper(server, 12).FetchReading(context.Background())

	require.Len(t, records, 12)
	assert.Equal(t, domain.ContentRecord{
		Episode: "",
		Title:   "/toefl/read/new-index page 0",
		PageURL: server.URL + "/toefl/read/new-index/0",
	}, records[0])
	assert.Equal(t, server.URL+"/toefl/read/new-index/11", records[11].PageURL)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11"}, ls.pages("/toefl/read/new-index"))
	assert.Empty(t, ls.pages("/toefl/listening/new-index"))
}

func TestScraper_FetchListening_FailuresDoNotStopTheWalk(t *testing.T) {
	ls := newListingServer("/toefl/listening/new-index?0", "/toefl/listening/new-index?5", "/toefl/listening/new-index?11")
	server := httptest.NewServer(ls)
	defer server.Close()

	records := newTestScraper(server, 12).FetchListening(context.Background())

	assert.Len(t, ls.pages("/toefl/listening/new-index"), 12, "every page is requested exactly once")
	assert.Len(t, records, 9)
	for _, r := range records {
		assert.Empty(t, r.Episode)
	}
}

func TestScraper_FetchCategory_UnreachableHost(t *testing.T) {
	scraper := NewScraper(httpclient.NewClient(httpclient.BrowserClient), domain.Category{}, domain.Category{})

	records := scraper.FetchCategory(context.Background(), domain.Category{
		Name:        "reading",
		URLTemplate: "http://127.0.0.1:1/toefl/read/new-index?s={}",
		Pages:       3,
	})
	assert.Empty(t, records)
}

func TestPageURLs(t *testing.T) {
	urls := PageURLs(domain.Category{URLTemplate: "https://test618.com/toefl/read/new-index?s={}", Pages: 3})
	assert.Equal(t, []string{
		"https://test618.com/toefl/read/new-index?s=0",
		"https://test618.com/toefl/read/new-index?s=1",
		"https://test618.com/toefl/read/new-index?s=2",
	}, urls)

	assert.Empty(t, PageURLs(domain.Category{URLTemplate: "x?s={}", Pages: 0}))
}
