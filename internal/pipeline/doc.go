// Package pipeline serializes and paces every call made to the music catalog.
//
// A Pipeline turns any number of concurrent callers into strictly one-at-a-time
// execution against the catalog:
//
//  1. Each Submit appends a ticket to an ordered log
//  2. A ticket's network call starts only after every earlier ticket settled
//  3. After each response the pipeline honours Retry-After (plus a margin)
//     and then waits a fixed pacing interval
//  4. 429 responses are retried inside the same ticket, up to a bound
//  5. Any other failure disables the pipeline for good
//
// # Basic Usage
//
//	p := pipeline.New(client, pipeline.DefaultConfig(), pipeline.WithLogger(logger))
//
//	resp, err := p.Submit(ctx, &http.Request{Path: "artists/" + id + "/related-artists"})
//	if errors.Is(err, pipeline.ErrDisabled) {
//	    // an earlier call failed; nothing more will be sent
//	}
//
// # Circuit Breaker
//
// The disabled flag is one-way. Once set, Submit fails immediately with
// ErrDisabled and tickets still waiting in the queue settle with ErrDisabled
// without being dispatched. Create a new Pipeline to start over.
package pipeline
