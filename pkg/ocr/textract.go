package ocr

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/service/textract"
	"github.com/aws/aws-sdk-go-v2/service/textract/types"
)

// TextractAPI is the subset of the Textract client used by the provider.
type TextractAPI interface {
	DetectDocumentText(ctx context.Context, params *textract.DetectDocumentTextInput, optFns ...func(*textract.Options)) (*textract.DetectDocumentTextOutput, error)
}

// TextractProvider implements Provider using AWS Textract.
type TextractProvider struct {
	Client TextractAPI
}

// NewTextractProvider creates a new TextractProvider.
func NewTextractProvider(client TextractAPI) *TextractProvider {
	return &TextractProvider{Client: client}
}

// Make sure we conform to the interface
var _ Provider = (*TextractProvider)(nil)

// DetectText runs Textract document text detection and maps WORD blocks to
// tokens. Textract already reports normalized bounding boxes and 0-100
// confidences, so the mapping is direct.
func (p *TextractProvider) DetectText(ctx context.Context, image []byte) ([]Token, error) {
	input := &textract.DetectDocumentTextInput{
		Document: &types.Document{Bytes: image},
	}

	result, err := p.Client.DetectDocumentText(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("textract detection failed: %w", err)
	}

	var tokens []Token
	for _, block := range result.Blocks {
		if block.BlockType != types.BlockTypeWord || block.Text == nil {
			continue
		}

		token := Token{Text: *block.Text}
		if block.Confidence != nil {
			token.Confidence = float64(*block.Confidence)
		}
		if block.Geometry != nil && block.Geometry.BoundingBox != nil {
			bb := block.Geometry.BoundingBox
			token.Box = BoundingBox{
				Left:   float64(bb.Left),
				Top:    float64(bb.Top),
				Width:  float64(bb.Width),
				Height: float64(bb.Height),
			}
		}
		tokens = append(tokens, token)
	}

	return tokens, nil
}
