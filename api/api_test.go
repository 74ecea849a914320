package api_test

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DE-labtory/coinmatch/api"
	kitlog "github.com/go-kit/kit/log"
)

func newServer(t *testing.T) *httptest.Server {
	s := httptest.NewServer(api.NewApiHandler(kitlog.NewNopLogger()))
	t.Cleanup(s.Close)
	return s
}

func TestHealthz(t *testing.T) {
	s := newServer(t)

	resp, err := http.Get(s.URL + "/healthz")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	b, _ := ioutil.ReadAll(resp.Body)
	if string(b) != "up" {
		t.Fatalf("expected up, got %s", b)
	}
}

func TestValueInCents(t *testing.T) {
	s := newServer(t)

	tests := []struct {
		coin     string
		status   int
		expected string
	}{
		{coin: "penny", status: http.StatusOK, expected: `{"coin":"Penny","cents":1}`},
		{coin: "quarter:alaska", status: http.StatusOK, expected: `{"coin":"Quarter(Alaska)","cents":25}`},
		{coin: "doubloon", status: http.StatusBadRequest},
	}

	for i, test := range tests {
		resp, err := http.Get(s.URL + "/coins/" + test.coin + "/value")
		if err != nil {
			t.Fatal(err)
		}
		b, _ := ioutil.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != test.status {
			t.Fatalf("test[%d] failed: expected status %d, got %d (%s)", i, test.status, resp.StatusCode, b)
		}
		if test.expected != "" && strings.TrimSpace(string(b)) != test.expected {
			t.Fatalf("test[%d] failed: expected %s, got %s", i, test.expected, b)
		}
	}
}

func TestPlusOne(t *testing.T) {
	s := newServer(t)

	tests := []struct {
		body     string
		status   int
		expected string
	}{
		{body: `{"value":5}`, status: http.StatusOK, expected: `{"value":6}`},
		{body: `{"value":null}`, status: http.StatusOK, expected: `{"value":null}`},
		{body: `{}`, status: http.StatusOK, expected: `{"value":null}`},
		{body: `{"value":2147483647}`, status: http.StatusOK, expected: `{"value":null}`},
		{body: `{"value":"five"}`, status: http.StatusBadRequest},
	}

	for i, test := range tests {
		resp, err := http.Post(s.URL+"/plus-one", "application/json", strings.NewReader(test.body))
		if err != nil {
			t.Fatal(err)
		}
		b, _ := ioutil.ReadAll(resp.Body)
		resp.Body.Close()

		if resp.StatusCode != test.status {
			t.Fatalf("test[%d] failed: expected status %d, got %d (%s)", i, test.status, resp.StatusCode, b)
		}
		if test.expected != "" && strings.TrimSpace(string(b)) != test.expected {
			t.Fatalf("test[%d] failed: expected %s, got %s", i, test.expected, b)
		}
	}
}

func TestSort(t *testing.T) {
	s := newServer(t)

	resp, err := http.Post(s.URL+"/sort", "application/json",
		strings.NewReader(`{"coins":["penny","quarter:alaska","dime"]}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.StatusCode)
	}

	tally := struct {
		ID       string         `json:"id"`
		Cents    uint64         `json:"cents"`
		Count    int            `json:"count"`
		Quarters map[string]int `json:"quarters"`
	}{}
	if err := json.NewDecoder(resp.Body).Decode(&tally); err != nil {
		t.Fatal(err)
	}
	if tally.Cents != 36 || tally.Count != 2 || tally.Quarters["Alaska"] != 1 || tally.ID == "" {
		t.Fatalf("unexpected tally: %+v", tally)
	}
}

func TestSort_BadRequest(t *testing.T) {
	s := newServer(t)

	for i, body := range []string{`{"coins":[]}`, `{"coins":["penny","button"]}`, `not json`} {
		resp, err := http.Post(s.URL+"/sort", "application/json", strings.NewReader(body))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()

		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("test[%d] failed: expected status 400, got %d", i, resp.StatusCode)
		}
	}
}
