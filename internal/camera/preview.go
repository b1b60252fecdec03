package camera

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/jpeg"
	"io"
	"sync"
	"time"

	"photocapture/internal/logger"
)

// previewQuality is the JPEG quality of frames pushed to viewers. Captured
// stills are encoded separately at full quality.
const previewQuality = 70

// FrameSink receives encoded preview frames.
type FrameSink interface {
	PublishFrame(frame []byte)
}

// Surface is the preview surface a stream is bound to. It plays the bound
// stream, remembers the latest frame and forwards previews to the sink.
type Surface struct {
	stream   Stream
	frame    image.Image
	cancel   context.CancelFunc
	sink     FrameSink
	interval time.Duration
	logger   *logger.Logger
	mu       sync.RWMutex
}

func NewSurface(sink FrameSink, interval time.Duration, logger *logger.Logger) *Surface {
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	return &Surface{
		sink:     sink,
		interval: interval,
		logger:   logger,
	}
}

// Bind attaches stream, reads its first frame and starts playback. The
// previously bound stream stops playing but is not closed; it is returned
// to the caller.
func (s *Surface) Bind(stream Stream) Stream {
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	previous := s.stream
	if s.cancel != nil {
		s.cancel()
	}
	s.stream = stream
	s.frame = nil
	s.cancel = cancel
	s.mu.Unlock()

	if err := s.advance(stream); err != nil {
		s.logger.Warning("Preview: first frame unavailable: %v", err)
	}
	go s.play(ctx, stream)

	return previous
}

// Bound reports whether a stream is currently attached.
func (s *Surface) Bound() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stream != nil
}

// CurrentFrame returns the most recent frame of the bound stream.
func (s *Surface) CurrentFrame() (image.Image, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.frame, s.frame != nil
}

// VideoSize returns the pixel size of the current frame, or 0x0 when there
// is none.
func (s *Surface) VideoSize() (width, height int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.frame == nil {
		return 0, 0
	}
	b := s.frame.Bounds()
	return b.Dx(), b.Dy()
}

// Stop ends playback and closes the bound stream.
func (s *Surface) Stop() error {
	s.mu.Lock()
	stream := s.stream
	if s.cancel != nil {
		s.cancel()
	}
	s.stream = nil
	s.frame = nil
	s.cancel = nil
	s.mu.Unlock()

	if stream == nil {
		return nil
	}
	return stream.Close()
}

func (s *Surface) play(ctx context.Context, stream Stream) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		if err := s.advance(stream); err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, io.EOF) {
				s.logger.Warning("Preview: stream ended")
				return
			}
			s.logger.Warning("Preview: frame read failed: %v", err)
		}
	}
}

// advance reads one frame from stream and publishes it, as long as stream
// is still the bound one.
func (s *Surface) advance(stream Stream) error {
	frame, err := stream.Read()
	if err != nil {
		return err
	}

	s.mu.Lock()
	if s.stream != stream {
		s.mu.Unlock()
		return nil
	}
	s.frame = frame
	s.mu.Unlock()

	if s.sink == nil {
		return nil
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, frame, &jpeg.Options{Quality: previewQuality}); err != nil {
		return err
	}
	s.sink.PublishFrame(buf.Bytes())
	return nil
}
