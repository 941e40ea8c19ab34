package driven

import "context"

// AudioPlayer plays a pronunciation recording.
type AudioPlayer interface {
	// Play starts playback of the audio resource at url and returns without
	// waiting for it to finish. Errors returned here mean playback could not
	// start; failures after start are reported by the implementation.
	Play(ctx context.Context, url string) error
}
