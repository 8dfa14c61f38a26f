// Package resultio provides a gzip-aware result encoder for the CLI
// adapter, adapted from the corpus's Food & Beverage delivery demo: when
// the configured output path ends in .gz, the encoded payload is written
// through a gzip.Writer instead of directly to the underlying writer.
package resultio

import (
	"compress/gzip"
	"context"
	"errors"
	"io"
	"strings"

	"github.com/nextmv-io/sdk/run"
	"github.com/nextmv-io/sdk/run/encode"
)

// GenericEncoder returns a run.Encoder that hands the final Solution to
// enc, gzipping the stream when the runner config's output path carries a
// .gz suffix. Only the last value on solutions is kept: this core emits
// exactly one solution per solve call, never an improving stream.
func GenericEncoder[Solution, Options any](enc encode.Encoder) run.Encoder[Solution, Options] {
	return &genericEncoder[Solution, Options]{encoder: enc}
}

type genericEncoder[Solution, Options any] struct {
	encoder encode.Encoder
}

func (g *genericEncoder[Solution, Options]) Encode(
	_ context.Context,
	solutions <-chan Solution,
	writer any,
	runnerCfg any,
	_ Options,
) (err error) {
	closer, ok := writer.(io.Closer)
	if ok {
		defer func() {
			closeErr := closer.Close()
			if err == nil {
				err = closeErr
			}
		}()
	}

	ioWriter, ok := writer.(io.Writer)
	if !ok {
		return errors.New("resultio: writer is not compatible with the configured output")
	}

	if pather, ok := runnerCfg.(run.OutputPather); ok && strings.HasSuffix(pather.OutputPath(), ".gz") {
		gz := gzip.NewWriter(ioWriter)
		defer func() {
			closeErr := gz.Close()
			if err == nil {
				err = closeErr
			}
		}()
		ioWriter = gz
	}

	var last Solution
	found := false
	for solution := range solutions {
		last = solution
		found = true
	}
	if !found {
		return nil
	}

	return g.encoder.Encode(ioWriter, last)
}

// ContentType satisfies run.ContentTyper by delegating to the wrapped
// encoder when it implements the interface.
func (g *genericEncoder[Solution, Options]) ContentType() string {
	contentTyper, ok := g.encoder.(run.ContentTyper)
	if !ok {
		return "application/json"
	}
	return contentTyper.ContentType()
}
