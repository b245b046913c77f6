package record

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/voltlab/voltseries/internal/options"
)

// Result holds the aligned column sequences produced by Parse.
//
// Times and Values always have equal length. Uncerts may be shorter when
// some retained lines carried no third field, and empty when none did.
type Result struct {
	Times   []float64
	Values  []float64
	Uncerts []float64
}

// HasUncertainties reports whether at least one retained line supplied a
// parseable third field.
func (r Result) HasUncertainties() bool {
	return len(r.Uncerts) > 0
}

type parser struct {
	logger        zerolog.Logger
	commentPrefix string
}

// Option configures Parse.
type Option = options.Option[*parser]

// WithLogger routes per-line diagnostics to the given logger instead of the
// default stderr logger.
func WithLogger(logger zerolog.Logger) Option {
	return options.NoError(func(p *parser) {
		p.logger = logger
	})
}

// WithCommentPrefix changes the prefix that marks a line as a comment.
// The default is "#". The prefix must be non-empty.
func WithCommentPrefix(prefix string) Option {
	return options.New(func(p *parser) error {
		if prefix == "" {
			return fmt.Errorf("comment prefix must not be empty")
		}
		p.commentPrefix = prefix

		return nil
	})
}

// Parse reads tab-separated observations from r and returns the accumulated
// column sequences.
//
// Recovery is per line: a line whose time or value field is missing or not a
// number is dropped with a diagnostic naming the zero-based line index and
// the cause, and parsing continues. A line whose third field is present but
// not a number is dropped entirely as well. A line with no third field keeps
// its time and value; its uncertainty is simply not recorded.
//
// Parse fails only when reading from r fails.
func Parse(r io.Reader, opts ...Option) (Result, error) {
	p := &parser{
		logger:        zerolog.New(os.Stderr).With().Timestamp().Logger(),
		commentPrefix: "#",
	}
	if err := options.Apply(p, opts...); err != nil {
		return Result{}, err
	}

	var res Result
	scanner := bufio.NewScanner(r)
	for line := -1; scanner.Scan(); {
		line++
		raw := scanner.Text()
		// Comment detection looks at the raw line, before any trimming.
		if strings.HasPrefix(raw, p.commentPrefix) {
			continue
		}

		fields := strings.Split(strings.TrimSpace(raw), "\t")
		if len(fields) < 2 {
			p.drop(line, "fewer than two fields")
			continue
		}

		t, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			p.drop(line, fmt.Sprintf("bad time field %q", fields[0]))
			continue
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			p.drop(line, fmt.Sprintf("bad value field %q", fields[1]))
			continue
		}

		if len(fields) > 2 {
			u, err := strconv.ParseFloat(fields[2], 64)
			if err != nil {
				// The whole line goes, time and value included.
				p.drop(line, fmt.Sprintf("bad uncertainty field %q", fields[2]))
				continue
			}
			res.Uncerts = append(res.Uncerts, u)
		}

		res.Times = append(res.Times, t)
		res.Values = append(res.Values, v)
	}
	if err := scanner.Err(); err != nil {
		return Result{}, fmt.Errorf("read input: %w", err)
	}

	return res, nil
}

func (p *parser) drop(line int, reason string) {
	p.logger.Warn().Int("line", line).Str("reason", reason).Msg("dropping line")
}
