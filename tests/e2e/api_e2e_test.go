//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestAPI_SurveyClassifyExportFlow(t *testing.T) {
	baseURL := strings.TrimRight(envOr("E2E_BASE_URL", "http://localhost:8080"), "/")
	surface := envOr("E2E_SURFACE", "e2e-nauvis")
	client := &http.Client{Timeout: 20 * time.Second}

	t.Run("survey rejects non-integer coordinates", func(t *testing.T) {
		status, body := mustJSON(t, client, http.MethodPut, baseURL+"/api/surfaces/"+surface, map[string]any{
			"chunks": []map[string]any{{"x": 0.5, "y": 0}},
		})
		if status != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d body=%s", status, string(body))
		}
	})

	t.Run("survey classify plan export", func(t *testing.T) {
		surveyReq := map[string]any{
			"chunks": []map[string]any{
				{"x": 0, "y": 0, "seed": true},
				{"x": 1, "y": 0},
				{"x": 2, "y": 0},
				{"x": 3, "y": 0},
			},
			"tags": map[string]any{
				"player": []map[string]any{
					{"position": map[string]any{"x": 16, "y": 16}, "text": "base"},
				},
			},
		}
		status, body := mustJSON(t, client, http.MethodPut, baseURL+"/api/surfaces/"+surface, surveyReq)
		if status != http.StatusOK {
			t.Fatalf("survey status=%d body=%s", status, string(body))
		}

		status, body = mustJSON(t, client, http.MethodPost, baseURL+"/api/surfaces/"+surface+"/classify", map[string]any{
			"horizon": 2,
		})
		if status != http.StatusCreated {
			t.Fatalf("classify status=%d body=%s", status, string(body))
		}
		var run map[string]any
		if err := json.Unmarshal(body, &run); err != nil {
			t.Fatalf("unmarshal classify response: %v body=%s", err, string(body))
		}
		runID, _ := run["run_id"].(string)
		if runID == "" {
			t.Fatalf("expected run_id in classify response, got=%v", run)
		}
		if len(asSlice(run["included"])) != 2 {
			t.Fatalf("expected 2 included chunks at horizon 2, got=%v", run["included"])
		}

		status, body = mustJSON(t, client, http.MethodGet, baseURL+"/api/runs/"+runID+"/render-plan", nil)
		if status != http.StatusOK {
			t.Fatalf("render plan status=%d body=%s", status, string(body))
		}
		var plan map[string]any
		if err := json.Unmarshal(body, &plan); err != nil {
			t.Fatalf("unmarshal render plan: %v body=%s", err, string(body))
		}
		jobs := asSlice(plan["jobs"])
		if len(jobs) != 2 {
			t.Fatalf("expected 2 render jobs, got=%v", plan["jobs"])
		}

		for _, job := range jobs {
			j := asMap(job)
			x := int(j["x"].(float64))
			y := int(j["y"].(float64))
			uploadURL := baseURL + "/api/surfaces/" + surface + "/chunks/" +
				strconv.Itoa(x) + "/" + strconv.Itoa(y) + "/image"
			status, body, err := doRaw(client, http.MethodPost, uploadURL, "image/png", []byte{0x89, 'P', 'N', 'G'})
			if err != nil {
				t.Fatalf("upload chunk image: %v", err)
			}
			if status != http.StatusCreated {
				t.Fatalf("upload status=%d body=%s", status, string(body))
			}
		}

		status, body = mustJSON(t, client, http.MethodPost, baseURL+"/api/export", map[string]any{
			"surfaces": []string{surface},
		})
		if status != http.StatusOK {
			t.Fatalf("export status=%d body=%s", status, string(body))
		}
		var exp map[string]any
		if err := json.Unmarshal(body, &exp); err != nil {
			t.Fatalf("unmarshal export response: %v body=%s", err, string(body))
		}
		if exp["key"] != "map-info.json" {
			t.Fatalf("expected map-info.json key, got=%v", exp["key"])
		}
		descriptor := asMap(exp["descriptor"])
		if _, ok := asMap(descriptor["surfaces"])[surface]; !ok {
			t.Fatalf("expected %s in descriptor, got=%v", surface, descriptor)
		}
	})
}

func mustJSON(t *testing.T, client *http.Client, method, url string, body map[string]any) (int, []byte) {
	t.Helper()
	var payload []byte
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal request: %v", err)
		}
		payload = b
	}
	status, respBody, err := doRaw(client, method, url, "application/json", payload)
	if err != nil {
		t.Fatalf("%s %s request failed: %v", method, url, err)
	}
	return status, respBody
}

func doRaw(client *http.Client, method, url, contentType string, payload []byte) (int, []byte, error) {
	var lastStatus int
	var lastBody []byte
	var lastErr error
	for attempt := 0; attempt < 3; attempt++ {
		var body io.Reader
		if len(payload) > 0 {
			body = bytes.NewReader(payload)
		}
		req, err := http.NewRequest(method, url, body)
		if err != nil {
			return 0, nil, err
		}
		if len(payload) > 0 {
			req.Header.Set("Content-Type", contentType)
		}
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		respBody, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		lastStatus, lastBody, lastErr = resp.StatusCode, respBody, nil
		if resp.StatusCode >= 500 {
			time.Sleep(time.Duration(attempt+1) * 200 * time.Millisecond)
			continue
		}
		return resp.StatusCode, respBody, nil
	}
	if lastErr != nil {
		return 0, nil, lastErr
	}
	return lastStatus, lastBody, nil
}

func envOr(k, def string) string {
	v := strings.TrimSpace(os.Getenv(k))
	if v == "" {
		return def
	}
	return v
}

func asMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func asSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	return nil
}
