package intelligence

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const classifyPrompt = "Analyze the provided image and determine if the item is 'Organic Waste' or " +
	"'Inorganic Waste'. Provide your response as a JSON object with the format: " +
	`{"item_type": "CLASSIFICATION_HERE", "prediction": "your prediction in percentage", ` +
	`"penalty": "true if prediction is less than 90%", "items": ["array of items you analyzed"], ` +
	`"mixture": "mixture prediction in %"}. Do not wrap the output in a code block and do not ` +
	"include any other text. If the image is unsupported return a message saying unsupported image."

// ErrUnparseableReply is returned when the model reply is not valid JSON.
// The raw reply is preserved alongside it in Classification.Raw.
var ErrUnparseableReply = fmt.Errorf("failed to parse model reply as JSON")

// Classification is the parsed model verdict for one waste image.
type Classification struct {
	ItemType   string   `json:"item_type"`
	Prediction string   `json:"prediction"`
	Penalty    string   `json:"penalty"`
	Items      []string `json:"items"`
	Mixture    string   `json:"mixture"`
	Raw        string   `json:"-"`
}

// WasteClassifier classifies waste images as organic or inorganic.
type WasteClassifier struct {
	Client *GeminiClient
	Logger *zap.Logger
}

// Classify decodes the base64 image, asks the model for a verdict, and parses
// its JSON reply.
func (c *WasteClassifier) Classify(ctx context.Context, imageBase64 string) (*Classification, error) {
	if imageBase64 == "" {
		return nil, fmt.Errorf("imageData is required")
	}

	// Clients sometimes send a data URI; keep only the payload.
	if idx := strings.Index(imageBase64, ","); idx != -1 && strings.HasPrefix(imageBase64, "data:") {
		imageBase64 = imageBase64[idx+1:]
	}
	image, err := base64.StdEncoding.DecodeString(imageBase64)
	if err != nil {
		return nil, fmt.Errorf("imageData is not valid base64: %w", err)
	}

	reply, err := c.Client.GenerateWithImage(ctx, classifyPrompt, "jpeg", image)
	if err != nil {
		return nil, err
	}

	var result Classification
	if err := json.Unmarshal([]byte(strings.TrimSpace(reply)), &result); err != nil {
		c.Logger.Warn("Classify: model reply was not valid JSON", zap.String("reply", reply))
		return &Classification{Raw: reply}, ErrUnparseableReply
	}
	result.Raw = reply
	return &result, nil
}
