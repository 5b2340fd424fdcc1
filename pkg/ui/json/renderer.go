// Package json writes command results as indented JSON documents
package json

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/spotlight-manager/pkg/errors"
)

// Renderer encodes one document per call
type Renderer struct {
	encoder *json.Encoder
}

func New(output io.Writer) (*Renderer, error) {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &Renderer{encoder: encoder}, nil
}

// RenderResult encodes the view of a known result, or result itself
func (r *Renderer) RenderResult(result interface{}) error {
	return r.encoder.Encode(toView(result))
}

type errorView struct {
	Error   string                 `json:"error"`
	Code    errors.ErrorCode       `json:"code,omitempty"`
	Hint    string                 `json:"hint,omitempty"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// RenderError encodes err with the code, hint and details of a
// SpotlightError
func (r *Renderer) RenderError(err error) error {
	view := errorView{Error: err.Error(), Hint: errors.Hint(err)}
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		view.Code = code
	}
	for k, v := range errors.GetErrorDetails(err) {
		if k == errors.DetailHint {
			continue
		}
		if view.Details == nil {
			view.Details = map[string]interface{}{}
		}
		view.Details[k] = v
	}
	return r.encoder.Encode(view)
}

func (r *Renderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
