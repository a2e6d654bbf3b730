package sdg

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// guidePrompt is the generation prompt, with a slot for the transcript.
// The guide follows the SOAP structure the small group leaders use.
const guidePrompt = `Based on the following sermon transcript, create a small group leader discussion guide suitable for a 20-40 minute discussion.

The guide should follow the SOAP structure (Scripture, Observation, Application, Prayer) and include the following elements:
1. Scripture:
    a. a brief summary of the sermon passage (focus more on summarizing the sermon's passage than the sermon itself) (2-3 sentences)
    b. Key themes and scripture references mentioned
2. Observation:
    a. 5-7 thoughtful discussion questions that:
        - Help participants reflect on the sermon's passage
        - Connect the sermon and its passage to personal application
        - Encourage deeper theological exploration
        - Foster group conversation
        - Aid in answering the following questions each week (but can phrase differently as needed for the particular sermon passage):
            1. What do we learn about God?
            2. What do we learn about humanity?
            3. What is God inviting us to believe or obey in this passage?
3. Application:
    a. A practical application challenge for the week
4. Prayer:
    a. Suggested closing prayer points

Lay out the guide in a clear, easy-to-read structure that a small group leader can follow. Please do not include any reference to the AI or the tool used to generate the guide. Also do not reference the prompt itself in the guide (e.g. "This guide is intended for a 20-40 minute discussion", etc.)

Please note that the sermon transcript may include some announcements at the beginning and an invitation to respond at the end; focus on the main sermon content.

The output must be in Markdown format.

BEGIN SERMON TRANSCRIPT.

%s

END SERMON TRANSCRIPT.
Please provide a well-structured discussion guide.`

// GuidePrompt builds the discussion guide prompt for a transcript.
func GuidePrompt(transcript string) string {
	return fmt.Sprintf(guidePrompt, transcript)
}

// geminiBase is the generateContent endpoint, parameterized by model name.
const geminiBase = `https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent`

// generateTimeout bounds a single generation call.
const generateTimeout = 2 * time.Minute

// A Generator produces discussion guides from transcripts with the Gemini
// API.
type Generator struct {
	APIKey  string
	Model   string       // "" for DefaultModel
	HTTP    *http.Client // nil for a default client with generateTimeout
	BaseURL string       // format string taking a model name; "" for production
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GenerateGuide submits the guide prompt for transcript and returns the
// generated guide as markdown.
func (g *Generator) GenerateGuide(ctx context.Context, transcript string) (string, error) {
	if g.APIKey == "" {
		return "", errors.New("no Gemini API key configured")
	}
	model := g.Model
	if model == "" {
		model = DefaultModel
	}
	base := g.BaseURL
	if base == "" {
		base = geminiBase
	}

	body, err := json.Marshal(geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: GuidePrompt(transcript)}}}},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf(base, model), bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.APIKey)

	cli := g.HTTP
	if cli == nil {
		cli = &http.Client{Timeout: generateTimeout}
	}
	rsp, err := cli.Do(req)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.ReadFrom(rsp.Body)
	rsp.Body.Close()
	if rsp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("generate request failed: %s", rsp.Status)
	}

	var out geminiResponse
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		return "", fmt.Errorf("decoding generate response: %w", err)
	}
	if len(out.Candidates) == 0 || len(out.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("generate response contains no candidates")
	}
	guide := out.Candidates[0].Content.Parts[0].Text
	if guide == "" {
		return "", errors.New("generate response contains no text")
	}
	return guide, nil
}
