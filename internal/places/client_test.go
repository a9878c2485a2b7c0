package places

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"MoodEat/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(apiKey string) *Client {
	return NewClient(config.PlacesConf{
		APIKey:         apiKey,
		Language:       "zh-TW",
		TimeoutSeconds: 5,
	})
}

func swapBase(t *testing.T, base string) {
	t.Helper()
	old := nearbySearchBase
	nearbySearchBase = base
	t.Cleanup(func() { nearbySearchBase = old })
}

func TestNearbySearchBuildsQuery(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"status":"OK","results":[{"place_id":"p1","name":"拉麵店","rating":4.5}]}`))
	}))
	defer srv.Close()
	swapBase(t, srv.URL)

	res, err := testClient("test-key").NearbySearch(context.Background(), NearbyQuery{
		Lat:      25.0117,
		Lng:      121.4651,
		Radius:   1500,
		Keyword:  "拉麵",
		Type:     "restaurant",
		MaxPrice: 2,
		OpenNow:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, "test-key", got.Get("key"))
	assert.Equal(t, "25.011700,121.465100", got.Get("location"))
	assert.Equal(t, "1500", got.Get("radius"))
	assert.Equal(t, "拉麵", got.Get("keyword"))
	assert.Equal(t, "restaurant", got.Get("type"))
	assert.Equal(t, "zh-TW", got.Get("language"))
	assert.Equal(t, "2", got.Get("maxprice"))
	assert.Equal(t, "true", got.Get("opennow"))

	require.Len(t, res.Places, 1)
	assert.Equal(t, "p1", res.Places[0].PlaceID)
	assert.Equal(t, 4.5, res.Places[0].Rating)
}

func TestNearbySearchOptionalParamsOmitted(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	}))
	defer srv.Close()
	swapBase(t, srv.URL)

	res, err := testClient("test-key").NearbySearch(context.Background(), NearbyQuery{
		Lat: 25.0, Lng: 121.4, Radius: 1000,
	})
	require.NoError(t, err)
	assert.Empty(t, res.Places)

	assert.False(t, got.Has("maxprice"))
	assert.False(t, got.Has("opennow"))
	assert.False(t, got.Has("keyword"))
}

func TestNearbySearchPageToken(t *testing.T) {
	var got url.Values
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.URL.Query()
		w.Write([]byte(`{"status":"OK","results":[],"next_page_token":"tok-2"}`))
	}))
	defer srv.Close()
	swapBase(t, srv.URL)

	res, err := testClient("test-key").NearbySearch(context.Background(), NearbyQuery{PageToken: "tok-1"})
	require.NoError(t, err)

	assert.Equal(t, "tok-1", got.Get("pagetoken"))
	assert.False(t, got.Has("location"), "page token requests must not repeat the original parameters")
	assert.Equal(t, "tok-2", res.NextPageToken)
}

func TestNearbySearchErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "provider status error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"bad key"}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`not json`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()
			swapBase(t, srv.URL)

			_, err := testClient("test-key").NearbySearch(context.Background(), NearbyQuery{Lat: 1, Lng: 1, Radius: 100})
			assert.Error(t, err)
		})
	}
}

func TestUnconfiguredClient(t *testing.T) {
	c := testClient("")
	assert.False(t, c.Configured())

	_, err := c.NearbySearch(context.Background(), NearbyQuery{Lat: 1, Lng: 1, Radius: 100})
	assert.Error(t, err)
}

func TestPhotoURL(t *testing.T) {
	c := testClient("test-key")

	u := c.PhotoURL("ref-123")
	parsed, err := url.Parse(u)
	require.NoError(t, err)
	q := parsed.Query()
	assert.Equal(t, "ref-123", q.Get("photoreference"))
	assert.Equal(t, "800", q.Get("maxwidth"))
	assert.Equal(t, "test-key", q.Get("key"))

	assert.Empty(t, c.PhotoURL(""))
	assert.Empty(t, testClient("").PhotoURL("ref-123"))
}
