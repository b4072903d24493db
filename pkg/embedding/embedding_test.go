package embedding

import (
	"encoding/json"
	"math"
	"testing"
)

func TestEmbeddingRequestWireFormat(t *testing.T) {
	req := EmbeddingRequest{
		Model: "text-embedding-004",
		Content: EmbeddingRequestContent{
			Parts: []EmbeddingRequestContentPart{{Text: "pricing pressure in logistics"}},
		},
		TaskType: "RETRIEVAL_QUERY",
	}

	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	// The endpoint is picky: task_type is snake_case, content.parts nested.
	got := string(data)
	want := `{"model":"text-embedding-004","content":{"parts":[{"text":"pricing pressure in logistics"}]},"task_type":"RETRIEVAL_QUERY"}`
	if got != want {
		t.Errorf("request body = %s, want %s", got, want)
	}
}

func TestEmbeddingResponseParsesValues(t *testing.T) {
	body := `{"embedding":{"values":[0.25,-0.5,0.125]}}`

	var resp EmbeddingResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(resp.Embedding.Values) != 3 {
		t.Fatalf("values length = %d, want 3", len(resp.Embedding.Values))
	}
	if resp.Embedding.Values[1] != -0.5 {
		t.Errorf("values[1] = %f, want -0.5", resp.Embedding.Values[1])
	}
}

func TestNormalizeVector(t *testing.T) {
	normalized := normalizeVector([]float32{3, 4})

	var magnitude float64
	for _, v := range normalized {
		magnitude += float64(v) * float64(v)
	}
	if math.Abs(math.Sqrt(magnitude)-1) > 1e-6 {
		t.Errorf("magnitude = %f, want 1", math.Sqrt(magnitude))
	}

	// Zero vectors pass through untouched rather than dividing by zero.
	zero := normalizeVector([]float32{0, 0})
	if zero[0] != 0 || zero[1] != 0 {
		t.Errorf("zero vector changed: %v", zero)
	}
}
