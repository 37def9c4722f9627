package main

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.atomizer.io/stream"
	"go.devnw.com/event"
)

// Batch loads and scans a set of zone files for one target. Files are
// processed concurrently but their matches are merged in the order the
// files were given.
type Batch struct {
	logger  Logger
	pub     *event.Publisher
	loader  Loader
	scanner *Scanner

	// FailFast aborts the run on the first zone that fails to load
	// instead of skipping it.
	FailFast bool
}

// NewBatch returns a Batch. pub may be nil in which case no events are
// published.
func NewBatch(
	logger Logger,
	pub *event.Publisher,
	loader Loader,
	scanner *Scanner,
) (*Batch, error) {
	err := checkNil(logger, loader, scanner)
	if err != nil {
		return nil, err
	}

	return &Batch{
		logger:  logger,
		pub:     pub,
		loader:  loader,
		scanner: scanner,
	}, nil
}

// Report is the outcome of a run.
type Report struct {
	Run      string
	Files    int
	Results  Results
	Failures []error
}

// Err joins the failures of the run, nil when every zone loaded.
func (r *Report) Err() error {
	return errors.Join(r.Failures...)
}

type job struct {
	index int
	file  string
}

type outcome struct {
	index   int
	file    string
	matches []Match
	err     error
}

// Run scans files for target. Zones that fail to load are recorded in
// the report and skipped unless FailFast is set, in which case the first
// failure in file order is returned. Canceling ctx fails the whole run.
func (b *Batch) Run(
	ctx context.Context,
	files []string,
	target Target,
) (*Report, error) {
	if len(files) == 0 {
		return nil, &Error{Category: INPUT, Msg: "no zone files provided"}
	}

	if !target.IsValid() {
		return nil, &Error{Category: INPUT, Msg: "no target address provided"}
	}

	report := &Report{
		Run:   uuid.New().String(),
		Files: len(files),
	}

	b.logger.Infow("starting run",
		"run", report.Run,
		"target", target.Canonical(),
		"type", target.RecordType().String(),
		"files", len(files),
	)

	in := make(chan job)
	s := stream.Scaler[job, outcome]{
		Wait: time.Millisecond,
		Life: time.Millisecond * 100,
		Fn:   b.process(report.Run, target),
	}

	out, err := s.Exec(ctx, in)
	if err != nil {
		return nil, err
	}

	go func() {
		defer close(in)

		for i, f := range files {
			select {
			case <-ctx.Done():
				return
			case in <- job{index: i, file: f}:
			}
		}
	}()

	outcomes := make([]*outcome, len(files))
	for received := 0; received < len(files); {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case o, ok := <-out:
			if !ok {
				return nil, errors.New("scan stream closed before all zones were processed")
			}

			outcomes[o.index] = &o
			received++
		}
	}

	// A canceled run never reports partial results.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, o := range outcomes {
		if o.err != nil {
			if b.FailFast {
				return nil, o.err
			}

			report.Failures = append(report.Failures, o.err)
			continue
		}

		report.Results = Merge(report.Results, o.matches...)
	}

	b.logger.Infow("finished run",
		"run", report.Run,
		"matches", len(report.Results),
		"failures", len(report.Failures),
	)

	return report, nil
}

func (b *Batch) process(
	run string,
	target Target,
) stream.InterceptFunc[job, outcome] {
	return func(ctx context.Context, j job) (outcome, bool) {
		domain := DomainFromFile(j.file)

		b.logger.Infow("loading zone", "run", run, "domain", domain, "file", j.file)

		z, err := b.loader.Load(ctx, domain, j.file)
		if err != nil {
			b.logger.Errorw("skipping zone",
				"run", run,
				"file", j.file,
				"error", err,
			)

			b.publish(ctx, &Event{
				Msg:   err.Error(),
				Run:   run,
				Stage: SKIPPED,
				File:  j.file,
			})

			if b.pub != nil {
				b.pub.ErrorFunc(ctx, func() error {
					return err
				})
			}

			return outcome{index: j.index, file: j.file, err: err}, true
		}

		names := len(z.Names())
		b.publish(ctx, &Event{
			Run:    run,
			Stage:  LOADED,
			File:   j.file,
			Domain: z.Domain(),
			Names:  names,
		})

		matches, err := b.scanner.Scan(ctx, z, target)
		if err != nil {
			return outcome{index: j.index, file: j.file, err: err}, true
		}

		b.publish(ctx, &Event{
			Run:     run,
			Stage:   SCANNED,
			File:    j.file,
			Domain:  z.Domain(),
			Names:   names,
			Matches: len(matches),
		})

		return outcome{index: j.index, file: j.file, matches: matches}, true
	}
}

func (b *Batch) publish(ctx context.Context, e *Event) {
	if b.pub == nil {
		return
	}

	b.pub.EventFunc(ctx, func() event.Event {
		return e
	})
}
