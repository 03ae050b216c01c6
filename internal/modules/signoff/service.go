package signoff

import (
	"context"
	"fmt"
	"strings"

	"weddingdesk/internal/domain"
	"weddingdesk/internal/modules/event"
)

// Default canvas dimensions, matching the signature pad aspect ratio.
const (
	CanvasWidth  = 400
	CanvasHeight = 200
)

// EventSigner merges the finished payload into the supplier's record.
type EventSigner interface {
	SignOffSupplier(ctx context.Context, ownerID, eventID, supplierID int64, req event.SignOffRequest) (*domain.EventSupplier, error)
}

// CaptureRequest is the raw signing submission: pen strokes in canvas
// coordinates plus the confirmation fields.
type CaptureRequest struct {
	Date    string    `json:"date" binding:"required"`
	Name    string    `json:"name" binding:"required"`
	Strokes [][]Point `json:"strokes"`
	Hours   string    `json:"hours"`
	Amount  string    `json:"amount"`
}

type Service struct {
	events EventSigner
}

func NewService(events EventSigner) *Service {
	return &Service{events: events}
}

// Capture rasterizes the strokes and records the sign-off. An empty canvas
// never blocks submission: the signature falls back to a textual label
// carrying the signer's name.
func (s *Service) Capture(ctx context.Context, ownerID, eventID, supplierID int64, req CaptureRequest) (*domain.EventSupplier, error) {
	signature, err := renderSignature(req.Strokes, req.Name)
	if err != nil {
		return nil, err
	}

	return s.events.SignOffSupplier(ctx, ownerID, eventID, supplierID, event.SignOffRequest{
		Date:      req.Date,
		Name:      req.Name,
		Signature: signature,
		Hours:     req.Hours,
		Amount:    req.Amount,
	})
}

func renderSignature(strokes [][]Point, name string) (string, error) {
	canvas := NewCanvas(CanvasWidth, CanvasHeight)
	for _, stroke := range strokes {
		canvas.Stroke(stroke)
	}
	if canvas.Empty() {
		return TextFallback(name), nil
	}
	return canvas.DataURL()
}

// TextFallback is the signature value recorded when no strokes were drawn.
func TextFallback(name string) string {
	return fmt.Sprintf("Signed by: %s", strings.TrimSpace(name))
}
