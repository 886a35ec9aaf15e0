package caption

import (
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/andrerfcsantos/deepgram-go-captions/converters"
	"github.com/andrerfcsantos/deepgram-go-captions/renderers"
	interfacesv1 "github.com/deepgram/deepgram-go-sdk/pkg/api/listen/v1/rest/interfaces"
)

// ErrNotUTF8 reports input that is not valid UTF-8 text.
var ErrNotUTF8 = errors.New("content is not valid UTF-8")

// Parse decodes raw file content into a Deepgram prerecorded response.
// The content must be UTF-8 text holding a valid JSON document; the
// response's internal structure is left to the captioning library.
func Parse(data []byte) (*interfacesv1.PreRecordedResponse, error) {
	if !utf8.Valid(data) {
		return nil, ErrNotUTF8
	}

	var resp interfacesv1.PreRecordedResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("parsing response JSON: %w", err)
	}
	return &resp, nil
}

// Renderer renders a transcription response into caption text. The batch
// loop only sees this boundary, so the concrete captioning library can be
// swapped without touching it.
type Renderer interface {
	Render(resp *interfacesv1.PreRecordedResponse) (string, error)
}

// DeepgramRenderer produces SRT captions with the deepgram-go-captions
// library. Cue segmentation and timing are owned by that library.
type DeepgramRenderer struct{}

func NewDeepgramRenderer() DeepgramRenderer {
	return DeepgramRenderer{}
}

func (DeepgramRenderer) Render(resp *interfacesv1.PreRecordedResponse) (string, error) {
	conv := converters.NewDeepgramConverter(resp)
	srt, err := renderers.SRT(conv)
	if err != nil {
		return "", fmt.Errorf("rendering SRT captions: %w", err)
	}
	return srt, nil
}
