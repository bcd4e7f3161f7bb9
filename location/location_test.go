// Copyright 2026 The LocProof Authors
// SPDX-License-Identifier: Apache-2.0

package location

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPInfoClient(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    Coordinate
		wantErr bool
	}{
		{
			name:   "ok",
			status: http.StatusOK,
			body:   `{"ip":"203.0.113.7","city":"Skagen","loc":"57.64911,10.40744"}`,
			want:   Coordinate{Lat: 57.64911, Lon: 10.40744},
		},
		{
			name:   "ok with spaces",
			status: http.StatusOK,
			body:   `{"loc":" -34.90111 , -56.16453 "}`,
			want:   Coordinate{Lat: -34.90111, Lon: -56.16453},
		},
		{name: "missing loc", status: http.StatusOK, body: `{"ip":"203.0.113.7"}`, wantErr: true},
		{name: "malformed loc", status: http.StatusOK, body: `{"loc":"57.64911"}`, wantErr: true},
		{name: "non numeric loc", status: http.StatusOK, body: `{"loc":"north,south"}`, wantErr: true},
		{name: "not json", status: http.StatusOK, body: `<html>`, wantErr: true},
		{name: "rate limited", status: http.StatusTooManyRequests, body: ``, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewIPInfoClient(srv.Client())
			client.baseURL = srv.URL

			got, err := client.CurrentLocation(context.Background())
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("coordinate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIPAPIClient(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    Coordinate
		wantErr bool
	}{
		{
			name: "ok",
			body: `{"status":"success","country":"Denmark","lat":57.64911,"lon":10.40744}`,
			want: Coordinate{Lat: 57.64911, Lon: 10.40744},
		},
		{
			name:    "fail status",
			body:    `{"status":"fail","message":"private range"}`,
			wantErr: true,
		},
		{name: "not json", body: `oops`, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			client := NewIPAPIClient(srv.Client())
			client.baseURL = srv.URL

			got, err := client.CurrentLocation(context.Background())
			if tc.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

type scriptedProvider struct {
	coords []Coordinate
	errs   []error
	calls  int
}

func (p *scriptedProvider) CurrentLocation(context.Context) (Coordinate, error) {
	i := p.calls
	p.calls++

	if p.errs[i] != nil {
		return Coordinate{}, p.errs[i]
	}

	return p.coords[i], nil
}

func TestFallback(t *testing.T) {
	montevideo := Coordinate{Lat: -34.90111, Lon: -56.16453}

	t.Run("first provider wins", func(t *testing.T) {
		second := &scriptedProvider{}
		got, err := Fallback{Static(montevideo), second}.CurrentLocation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, montevideo, got)
		assert.Equal(t, 0, second.calls)
	})

	t.Run("falls through on error", func(t *testing.T) {
		first := &scriptedProvider{coords: []Coordinate{{}}, errs: []error{errors.New("down")}}
		got, err := Fallback{first, Static(montevideo)}.CurrentLocation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, montevideo, got)
	})

	t.Run("all fail", func(t *testing.T) {
		boom := errors.New("down")
		first := &scriptedProvider{coords: []Coordinate{{}}, errs: []error{boom}}
		_, err := Fallback{first}.CurrentLocation(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("empty", func(t *testing.T) {
		_, err := Fallback{}.CurrentLocation(context.Background())
		require.ErrorIs(t, err, ErrNoProviders)
	})
}

func TestWithRetry(t *testing.T) {
	skagen := Coordinate{Lat: 57.64911, Lon: 10.40744}

	t.Run("succeeds after transient failures", func(t *testing.T) {
		p := &scriptedProvider{
			coords: []Coordinate{{}, {}, skagen},
			errs:   []error{errors.New("timeout"), errors.New("timeout"), nil},
		}

		got, err := WithRetry(p, 3).CurrentLocation(context.Background())
		require.NoError(t, err)
		assert.Equal(t, skagen, got)
		assert.Equal(t, 3, p.calls)
	})

	t.Run("gives up after max attempts", func(t *testing.T) {
		boom := errors.New("down")
		p := &scriptedProvider{
			coords: []Coordinate{{}, {}},
			errs:   []error{boom, boom},
		}

		_, err := WithRetry(p, 2).CurrentLocation(context.Background())
		require.ErrorIs(t, err, boom)
		assert.Equal(t, 2, p.calls)
	})

	t.Run("one attempt means no wrapper", func(t *testing.T) {
		p := Static(skagen)
		assert.Equal(t, p, WithRetry(p, 1))
	})
}
