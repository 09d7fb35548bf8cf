package generator

import (
	"context"
	"errors"
	"io"
	"iter"
	"time"
)

// EndPayload is the data carried by the terminal end event.
const EndPayload = "done"

// StreamRun generates the title, then streams the content prompt fragment by fragment.
// Nothing runs until the sequence is ranged over. The last event is always either end
// or error; if the consumer stops early the content stream is closed.
func (a *Agent) StreamRun(ctx context.Context, topic string) iter.Seq[Event] {
	return func(yield func(Event) bool) {
		topic, err := ValidateTopic(topic)
		if err != nil {
			yield(errorEvent(err))
			return
		}

		start := time.Now()
		title, err := a.title(ctx, topic)
		if err != nil {
			a.logger.Error().Err(err).Str("step", "title_creation").Msg("stream failed")
			yield(errorEvent(err))
			return
		}
		if !yield(Event{Name: EventTitle, Data: title}) {
			return
		}

		stream, err := a.llm.CompleteStream(ctx, a.model, ContentPrompt(topic, title))
		if err != nil {
			a.logger.Error().Err(err).Str("step", "content_generation").Msg("stream failed")
			yield(errorEvent(err))
			return
		}
		defer stream.Close()

		fragments := 0
		for {
			frag, err := stream.Recv()
			if errors.Is(err, io.EOF) {
				a.logger.Info().Str("topic", topic).Int("fragments", fragments).Dur("elapsed", time.Since(start)).Msg("stream done")
				yield(Event{Name: EventEnd, Data: EndPayload})
				return
			}
			if err != nil {
				a.logger.Error().Err(err).Int("fragments", fragments).Msg("stream failed")
				yield(errorEvent(err))
				return
			}
			fragments++
			if !yield(Event{Name: EventData, Data: frag}) {
				a.logger.Warn().Int("fragments", fragments).Msg("stream consumer went away")
				return
			}
		}
	}
}

func errorEvent(err error) Event {
	return Event{Name: EventError, Data: err.Error()}
}
