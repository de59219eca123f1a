package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCommand runs a command with the given args and captures output.
func executeCommand(args ...string) (string, error) {
	root := NewRootCmd()
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(new(bytes.Buffer))
	root.SetArgs(args)
	err := root.Execute()
	return buf.String(), err
}

func TestRootHelp(t *testing.T) {
	if _, err := executeCommand("--help"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGlobalFlags(t *testing.T) {
	root := NewRootCmd()
	f := root.PersistentFlags().Lookup("format")
	if f == nil || f.DefValue != "text" {
		t.Fatalf("expected --format default 'text', got %+v", f)
	}
	if root.PersistentFlags().Lookup("price-table") == nil {
		t.Fatal("expected --price-table flag to exist")
	}
}

func TestAsk_Local(t *testing.T) {
	out, err := executeCommand("ask", "hi")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if strings.TrimSpace(out) != "👋 Hello! How can I help you with your real estate queries today?" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestAsk_LocalJSONWithDetails(t *testing.T) {
	out, err := executeCommand("--format", "json", "ask", "what", "is", "the", "price", "--location", "Worli, Mumbai", "--sqft", "1000")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	var res askResult
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode %q: %v", out, err)
	}
	if res.Intent != "property_valuation" || res.Prediction == nil || *res.Prediction != 48000000 {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestAsk_Remote(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-access-token") != "tok" {
			t.Errorf("token not forwarded")
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"reply": "remote says hi", "prediction": nil})
	}))
	defer ts.Close()

	out, err := executeCommand("ask", "hi", "--server", ts.URL, "--token", "tok")
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if strings.TrimSpace(out) != "remote says hi" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEstimate(t *testing.T) {
	out, err := executeCommand("estimate", "--location", "Worli, Mumbai", "--sqft", "1000")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if strings.TrimSpace(out) != "₹4,80,00,000\t48000000" {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestEstimate_InvalidInputFails(t *testing.T) {
	if _, err := executeCommand("estimate", "--location", "Pune"); err == nil {
		t.Fatal("expected error without --sqft")
	}
	if _, err := executeCommand("estimate"); err == nil {
		t.Fatal("expected error without any details")
	}
}

func TestCities(t *testing.T) {
	out, err := executeCommand("cities")
	if err != nil {
		t.Fatalf("cities: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 9 {
		t.Fatalf("expected header + 8 cities, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[1], "mumbai") || !strings.HasPrefix(lines[8], "kolkata") {
		t.Fatalf("unexpected order:\n%s", out)
	}
}

func TestCities_CustomTable(t *testing.T) {
	p := filepath.Join(t.TempDir(), "prices.yaml")
	doc := "cities:\n  - city: goa\n    base_price_per_sqft: 9000\n    areas:\n      - {area: panaji, price_per_sqft: 12000}\n"
	if err := os.WriteFile(p, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}
	out, err := executeCommand("--price-table", p, "estimate", "--location", "Panaji, Goa", "--sqft", "100")
	if err != nil {
		t.Fatalf("estimate: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(out), "\t1200000") {
		t.Fatalf("custom table not used: %q", out)
	}
}

func TestBatch_PreservesOrder(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.jsonl")
	out := filepath.Join(dir, "out.jsonl")
	lines := []string{
		`{"message":"hi"}`,
		`{"message":"5"}`,
		``,
		`not json`,
		`{"message":"price","propertyDetails":{"location":"Pune","squareFootage":0}}`,
		`{"message":"Mumbai","propertyDetails":{"location":"Pune","squareFootage":100}}`,
	}
	if err := os.WriteFile(in, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := executeCommand("batch", "--in", in, "--out", out, "--workers", "3"); err != nil {
		t.Fatalf("batch: %v", err)
	}
	b, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	var got []batchResult
	for _, l := range strings.Split(strings.TrimSpace(string(b)), "\n") {
		var r batchResult
		if err := json.Unmarshal([]byte(l), &r); err != nil {
			t.Fatalf("decode %q: %v", l, err)
		}
		got = append(got, r)
	}
	if len(got) != 5 {
		t.Fatalf("expected 5 results, got %d", len(got))
	}
	wantLines := []int{1, 2, 4, 5, 6}
	for i, r := range got {
		if r.Line != wantLines[i] {
			t.Fatalf("result %d has line %d, want %d", i, r.Line, wantLines[i])
		}
	}
	if got[0].Intent != "greeting" || got[1].Intent != "menu_selection" {
		t.Fatalf("unexpected intents: %+v", got[:2])
	}
	if got[2].Error == "" || got[3].Error == "" {
		t.Fatalf("expected decode and validation errors: %+v", got[2:4])
	}
	if got[4].Prediction == nil || *got[4].Prediction != 800000 || got[4].Intent != "city_investment" {
		t.Fatalf("unexpected last result: %+v", got[4])
	}
}
