package signoff

import (
	"context"
	"strings"
	"testing"

	"weddingdesk/internal/domain"
	"weddingdesk/internal/modules/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCanvas_StartsEmptyAndWhite(t *testing.T) {
	c := NewCanvas(CanvasWidth, CanvasHeight)
	assert.True(t, c.Empty())

	r, g, b, _ := c.img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0xffff), g)
	assert.Equal(t, uint32(0xffff), b)
}

func TestCanvas_StrokeMarksInk(t *testing.T) {
	c := NewCanvas(CanvasWidth, CanvasHeight)
	c.Stroke([]Point{{X: 10, Y: 10}, {X: 60, Y: 40}})

	assert.False(t, c.Empty())
	r, _, _, _ := c.img.At(10, 10).RGBA()
	assert.NotEqual(t, uint32(0xffff), r, "start of the stroke is inked")
}

func TestCanvas_SinglePointDrawsDot(t *testing.T) {
	c := NewCanvas(CanvasWidth, CanvasHeight)
	c.Stroke([]Point{{X: 5, Y: 5}})
	assert.False(t, c.Empty())
}

func TestCanvas_OutOfBoundsPointsAreClipped(t *testing.T) {
	c := NewCanvas(CanvasWidth, CanvasHeight)
	c.Stroke([]Point{{X: -50, Y: -50}})
	assert.True(t, c.Empty(), "fully clipped stroke leaves no ink")
}

func TestCanvas_ClearResets(t *testing.T) {
	c := NewCanvas(CanvasWidth, CanvasHeight)
	c.Stroke([]Point{{X: 10, Y: 10}, {X: 20, Y: 20}})
	c.Clear()

	assert.True(t, c.Empty())
	r, _, _, _ := c.img.At(10, 10).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestCanvas_DataURLIsPNG(t *testing.T) {
	c := NewCanvas(CanvasWidth, CanvasHeight)
	c.Stroke([]Point{{X: 10, Y: 10}, {X: 100, Y: 80}})

	url, err := c.DataURL()
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "data:image/png;base64,"))
	assert.Greater(t, len(url), len("data:image/png;base64,"))
}

type MockEventSigner struct {
	mock.Mock
}

func (m *MockEventSigner) SignOffSupplier(ctx context.Context, ownerID, eventID, supplierID int64, req event.SignOffRequest) (*domain.EventSupplier, error) {
	args := m.Called(ctx, ownerID, eventID, supplierID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EventSupplier), args.Error(1)
}

func TestCapture_EmptyCanvasFallsBackToText(t *testing.T) {
	signer := new(MockEventSigner)
	signer.On("SignOffSupplier", mock.Anything, int64(7), int64(5), int64(31),
		mock.MatchedBy(func(req event.SignOffRequest) bool {
			return req.Signature == "Signed by: Amit Levi"
		})).Return(&domain.EventSupplier{ID: 31, HasSigned: true}, nil)

	svc := NewService(signer)
	sup, err := svc.Capture(context.Background(), 7, 5, 31, CaptureRequest{
		Date: "2026-06-15",
		Name: "Amit Levi",
	})

	require.NoError(t, err)
	assert.True(t, sup.HasSigned)
	signer.AssertExpectations(t)
}

func TestCapture_DrawnSignatureBecomesDataURL(t *testing.T) {
	signer := new(MockEventSigner)
	signer.On("SignOffSupplier", mock.Anything, int64(7), int64(5), int64(31),
		mock.MatchedBy(func(req event.SignOffRequest) bool {
			return strings.HasPrefix(req.Signature, "data:image/png;base64,")
		})).Return(&domain.EventSupplier{ID: 31, HasSigned: true}, nil)

	svc := NewService(signer)
	_, err := svc.Capture(context.Background(), 7, 5, 31, CaptureRequest{
		Date:    "2026-06-15",
		Name:    "Amit Levi",
		Strokes: [][]Point{{{X: 10, Y: 10}, {X: 120, Y: 90}}},
		Amount:  "1,500",
	})

	require.NoError(t, err)
	signer.AssertExpectations(t)
}
